package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

type TravellingRepository interface {
	// Create inserts the travelling and its locals in one transaction.
	Create(ctx context.Context, travelling *db_models.Travelling) error
	FindAll(ctx context.Context) ([]db_models.Travelling, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Travelling, error)
	FindByTitle(ctx context.Context, title string) (*db_models.Travelling, error)
	FindByTourist(ctx context.Context, touristID uuid.UUID) ([]db_models.Travelling, error)
	// Update writes the title and, when locals is non-nil, replaces every
	// local of the travelling in the same transaction.
	Update(ctx context.Context, travelling *db_models.Travelling, locals []db_models.LocalReference) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type travellingRepository struct {
	db *gorm.DB
}

func NewTravellingRepository(db *gorm.DB) TravellingRepository {
	return &travellingRepository{db: db}
}

func (t *travellingRepository) preloaded(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).
		Preload("Locals", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}

func (t *travellingRepository) Create(ctx context.Context, travelling *db_models.Travelling) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Tourist").Create(travelling).Error
	})
}

func (t *travellingRepository) FindAll(ctx context.Context) ([]db_models.Travelling, error) {
	var travellings []db_models.Travelling
	if err := t.preloaded(ctx).Order("created_at").Find(&travellings).Error; err != nil {
		return nil, err
	}
	return travellings, nil
}

func (t *travellingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Travelling, error) {
	return t.first(t.preloaded(ctx).Where("id = ?", id))
}

func (t *travellingRepository) FindByTitle(ctx context.Context, title string) (*db_models.Travelling, error) {
	return t.first(t.db.WithContext(ctx).Where("title = ?", title))
}

func (t *travellingRepository) first(query *gorm.DB) (*db_models.Travelling, error) {
	var travelling db_models.Travelling
	if err := query.First(&travelling).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &travelling, nil
}

func (t *travellingRepository) FindByTourist(ctx context.Context, touristID uuid.UUID) ([]db_models.Travelling, error) {
	var travellings []db_models.Travelling
	err := t.preloaded(ctx).
		Where("tourist_id = ?", touristID).
		Order("created_at").
		Find(&travellings).Error
	if err != nil {
		return nil, err
	}
	return travellings, nil
}

func (t *travellingRepository) Update(ctx context.Context, travelling *db_models.Travelling, locals []db_models.LocalReference) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(travelling).Omit("Locals", "Tourist").Update("title", travelling.Title).Error; err != nil {
			return err
		}
		if locals == nil {
			return nil
		}

		if err := tx.Unscoped().Delete(&db_models.LocalReference{}, "travelling_id = ?", travelling.ID).Error; err != nil {
			return err
		}
		for i := range locals {
			locals[i].TravellingID = travelling.ID
		}
		if len(locals) > 0 {
			if err := tx.Create(&locals).Error; err != nil {
				return err
			}
		}
		travelling.Locals = locals
		return nil
	})
}

func (t *travellingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteTravellings(tx, []uuid.UUID{id})
	})
}
