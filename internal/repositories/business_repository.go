package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

type BusinessRepository interface {
	FindAll(ctx context.Context) ([]db_models.Business, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Business, error)
	// Delete removes the business, its establishments and its user.
	Delete(ctx context.Context, business *db_models.Business) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (b *businessRepository) FindAll(ctx context.Context) ([]db_models.Business, error) {
	var businesses []db_models.Business
	if err := b.db.WithContext(ctx).Preload("User").Order("created_at").Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

func (b *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Business, error) {
	var business db_models.Business
	err := b.db.WithContext(ctx).
		Preload("User").
		Preload("Establishments").
		First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (b *businessRepository) Delete(ctx context.Context, business *db_models.Business) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		establishmentIDs, err := idsOf(tx, &db_models.Establishment{}, "business_id", business.ID)
		if err != nil {
			return err
		}
		if err := deleteEstablishments(tx, establishmentIDs); err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.Business{}, "id = ?", business.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&db_models.User{}, "id = ?", business.UserID).Error
	})
}
