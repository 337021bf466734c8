package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
	"travelling/pkg/filters"
)

type AttractionRepository interface {
	Create(ctx context.Context, attraction *db_models.Attraction) error
	FindAll(ctx context.Context, where filters.Where) ([]db_models.Attraction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Attraction, error)
	FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]db_models.Attraction, error)
	FindByLocation(ctx context.Context, location string) (*db_models.Attraction, error)
	// Update writes the editable columns. A non-nil categories slice replaces
	// the attraction's categories.
	Update(ctx context.Context, attraction *db_models.Attraction, categories []db_models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (a *attractionRepository) preloaded(ctx context.Context) *gorm.DB {
	return a.db.WithContext(ctx).
		Preload("Categories").
		Preload("Ratings").
		Preload("Agency").
		Preload("Agency.User")
}

func (a *attractionRepository) Create(ctx context.Context, attraction *db_models.Attraction) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Categories.*").Create(attraction).Error
	})
}

func (a *attractionRepository) FindAll(ctx context.Context, where filters.Where) ([]db_models.Attraction, error) {
	query, err := where.Apply(a.preloaded(ctx).Model(&db_models.Attraction{}), attractionColumns)
	if err != nil {
		return nil, err
	}

	var attractions []db_models.Attraction
	if err := query.Order("attractions.created_at").Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

func (a *attractionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := a.preloaded(ctx).First(&attraction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (a *attractionRepository) FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := a.preloaded(ctx).
		Where("agency_id = ?", agencyID).
		Order("created_at").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (a *attractionRepository) FindByLocation(ctx context.Context, location string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := a.db.WithContext(ctx).
		Where("location = ?", location).
		First(&attraction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (a *attractionRepository) Update(ctx context.Context, attraction *db_models.Attraction, categories []db_models.Category) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(attraction).
			Select("name", "banner", "date", "location", "found_in_attraction", "not_found_in_attraction",
				"description", "pricing", "what_to_take", "general_medias").
			Updates(attraction).Error
		if err != nil {
			return err
		}

		if categories != nil {
			if err := tx.Model(attraction).Association("Categories").Replace(categories); err != nil {
				return err
			}
			attraction.Categories = categories
		}
		return nil
	})
}

// Delete removes the attraction with its ratings, contracts, category links
// and the travelling stops pointing at it.
func (a *attractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteAttractions(tx, []uuid.UUID{id})
	})
}
