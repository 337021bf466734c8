package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

type TouristRepository interface {
	FindAll(ctx context.Context) ([]db_models.Tourist, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tourist, error)
	// Update writes the tourist and its user in one transaction. A non-nil
	// categories slice replaces the favourite categories.
	Update(ctx context.Context, tourist *db_models.Tourist, categories []db_models.Category) error
	// Delete removes the tourist with its travellings, ratings and contracts,
	// then its user. Averages of the entities it rated are recomputed.
	Delete(ctx context.Context, tourist *db_models.Tourist) error
}

type touristRepository struct {
	db *gorm.DB
}

func NewTouristRepository(db *gorm.DB) TouristRepository {
	return &touristRepository{db: db}
}

func (t *touristRepository) FindAll(ctx context.Context) ([]db_models.Tourist, error) {
	var tourists []db_models.Tourist
	err := t.db.WithContext(ctx).
		Preload("User").
		Preload("FavoriteCategories").
		Order("created_at").
		Find(&tourists).Error
	if err != nil {
		return nil, err
	}
	return tourists, nil
}

func (t *touristRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tourist, error) {
	var tourist db_models.Tourist
	err := t.db.WithContext(ctx).
		Preload("User").
		Preload("FavoriteCategories").
		First(&tourist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tourist, nil
}

func (t *touristRepository) Update(ctx context.Context, tourist *db_models.Tourist, categories []db_models.Category) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tourist.User != nil {
			if err := tx.Model(tourist.User).
				Select("name", "email", "phone", "password_hash").
				Updates(tourist.User).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(tourist).
			Select("lastname", "age").
			Updates(tourist).Error; err != nil {
			return err
		}

		if categories != nil {
			if err := tx.Model(tourist).Association("FavoriteCategories").Replace(categories); err != nil {
				return err
			}
			tourist.FavoriteCategories = categories
		}
		return nil
	})
}

func (t *touristRepository) Delete(ctx context.Context, tourist *db_models.Tourist) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		travellingIDs, err := idsOf(tx, &db_models.Travelling{}, "tourist_id", tourist.ID)
		if err != nil {
			return err
		}
		if err := deleteTravellings(tx, travellingIDs); err != nil {
			return err
		}
		if err := deleteTouristRatings(tx, tourist.ID); err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.Contract{}, "tourist_id = ?", tourist.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tourist_favorite_categories WHERE tourist_id = ?", tourist.ID).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.Tourist{}, "id = ?", tourist.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&db_models.User{}, "id = ?", tourist.UserID).Error
	})
}
