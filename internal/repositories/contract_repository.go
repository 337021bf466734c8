package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

type ContractRepository interface {
	Create(ctx context.Context, contract *db_models.Contract) error
	FindAll(ctx context.Context) ([]db_models.Contract, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Contract, error)
	FindByTourist(ctx context.Context, touristID uuid.UUID) ([]db_models.Contract, error)
	FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]db_models.Contract, error)
	FindExisting(ctx context.Context, attractionID, agencyID, touristID uuid.UUID) (*db_models.Contract, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ContractStatus) error
	MarkDeleted(ctx context.Context, id uuid.UUID) error
	ForceDelete(ctx context.Context, id uuid.UUID) error
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (c *contractRepository) preloaded(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx).
		Preload("Agency").Preload("Agency.User").
		Preload("Tourist").Preload("Tourist.User").
		Preload("Attraction")
}

func (c *contractRepository) Create(ctx context.Context, contract *db_models.Contract) error {
	return c.db.WithContext(ctx).
		Omit("Tourist", "Agency", "Attraction").
		Create(contract).Error
}

func (c *contractRepository) FindAll(ctx context.Context) ([]db_models.Contract, error) {
	return c.find(c.preloaded(ctx))
}

func (c *contractRepository) FindByTourist(ctx context.Context, touristID uuid.UUID) ([]db_models.Contract, error) {
	return c.find(c.preloaded(ctx).Where("tourist_id = ?", touristID))
}

func (c *contractRepository) FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]db_models.Contract, error) {
	return c.find(c.preloaded(ctx).Where("agency_id = ?", agencyID))
}

func (c *contractRepository) find(query *gorm.DB) ([]db_models.Contract, error) {
	var contracts []db_models.Contract
	if err := query.Order("created_at").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (c *contractRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Contract, error) {
	var contract db_models.Contract
	err := c.preloaded(ctx).First(&contract, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

func (c *contractRepository) FindExisting(ctx context.Context, attractionID, agencyID, touristID uuid.UUID) (*db_models.Contract, error) {
	var contract db_models.Contract
	err := c.db.WithContext(ctx).
		Where("attraction_id = ? AND agency_id = ? AND tourist_id = ?", attractionID, agencyID, touristID).
		First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

func (c *contractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ContractStatus) error {
	return c.db.WithContext(ctx).Model(&db_models.Contract{}).Where("id = ?", id).Update("status", status).Error
}

func (c *contractRepository) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).Model(&db_models.Contract{}).Where("id = ?", id).Update("deleted", true).Error
}

func (c *contractRepository) ForceDelete(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).Unscoped().Delete(&db_models.Contract{}, "id = ?", id).Error
}
