package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
	"travelling/pkg/filters"
)

type EstablishmentRepository interface {
	Create(ctx context.Context, establishment *db_models.Establishment) error
	FindAll(ctx context.Context, where filters.Where) ([]db_models.Establishment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Establishment, error)
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]db_models.Establishment, error)
	FindByLocation(ctx context.Context, location string) (*db_models.Establishment, error)
	// Update writes the editable columns. A non-nil categories slice replaces
	// the establishment's categories.
	Update(ctx context.Context, establishment *db_models.Establishment, categories []db_models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type establishmentRepository struct {
	db *gorm.DB
}

func NewEstablishmentRepository(db *gorm.DB) EstablishmentRepository {
	return &establishmentRepository{db: db}
}

func (e *establishmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return e.db.WithContext(ctx).
		Preload("Categories").
		Preload("Ratings").
		Preload("Business").
		Preload("Business.User")
}

func (e *establishmentRepository) Create(ctx context.Context, establishment *db_models.Establishment) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Categories.*").Create(establishment).Error
	})
}

func (e *establishmentRepository) FindAll(ctx context.Context, where filters.Where) ([]db_models.Establishment, error) {
	query, err := where.Apply(e.preloaded(ctx).Model(&db_models.Establishment{}), establishmentColumns)
	if err != nil {
		return nil, err
	}

	var establishments []db_models.Establishment
	if err := query.Order("establishments.created_at").Find(&establishments).Error; err != nil {
		return nil, err
	}
	return establishments, nil
}

func (e *establishmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Establishment, error) {
	var establishment db_models.Establishment
	err := e.preloaded(ctx).First(&establishment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &establishment, nil
}

func (e *establishmentRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]db_models.Establishment, error) {
	var establishments []db_models.Establishment
	err := e.preloaded(ctx).
		Where("business_id = ?", businessID).
		Order("created_at").
		Find(&establishments).Error
	if err != nil {
		return nil, err
	}
	return establishments, nil
}

func (e *establishmentRepository) FindByLocation(ctx context.Context, location string) (*db_models.Establishment, error) {
	var establishment db_models.Establishment
	err := e.db.WithContext(ctx).
		Where("location = ?", location).
		First(&establishment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &establishment, nil
}

func (e *establishmentRepository) Update(ctx context.Context, establishment *db_models.Establishment, categories []db_models.Category) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(establishment).
			Select("name", "description", "banner", "open_hours", "close_hours", "min_price", "max_price",
				"location", "open_days", "found_in_establishment", "other_information", "phone",
				"general_medias", "menu_of_services_media").
			Updates(establishment).Error
		if err != nil {
			return err
		}

		if categories != nil {
			if err := tx.Model(establishment).Association("Categories").Replace(categories); err != nil {
				return err
			}
			establishment.Categories = categories
		}
		return nil
	})
}

// Delete removes the establishment with its ratings, category links and the
// travelling stops pointing at it.
func (e *establishmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteEstablishments(tx, []uuid.UUID{id})
	})
}
