package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

type AgencyRepository interface {
	FindAll(ctx context.Context) ([]db_models.Agency, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Agency, error)
	// Delete removes the agency, its attractions with everything hanging off
	// them, and its user.
	Delete(ctx context.Context, agency *db_models.Agency) error
}

type agencyRepository struct {
	db *gorm.DB
}

func NewAgencyRepository(db *gorm.DB) AgencyRepository {
	return &agencyRepository{db: db}
}

func (a *agencyRepository) FindAll(ctx context.Context) ([]db_models.Agency, error) {
	var agencies []db_models.Agency
	if err := a.db.WithContext(ctx).Preload("User").Order("created_at").Find(&agencies).Error; err != nil {
		return nil, err
	}
	return agencies, nil
}

func (a *agencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Agency, error) {
	var agency db_models.Agency
	err := a.db.WithContext(ctx).
		Preload("User").
		Preload("Attractions").
		First(&agency, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agency, nil
}

func (a *agencyRepository) Delete(ctx context.Context, agency *db_models.Agency) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attractionIDs, err := idsOf(tx, &db_models.Attraction{}, "agency_id", agency.ID)
		if err != nil {
			return err
		}
		if err := deleteAttractions(tx, attractionIDs); err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.Contract{}, "agency_id = ?", agency.ID).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&db_models.Agency{}, "id = ?", agency.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&db_models.User{}, "id = ?", agency.UserID).Error
	})
}
