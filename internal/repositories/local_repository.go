package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

// LocalRepository resolves the attraction and establishment rows referenced
// by travelling stops.
type LocalRepository interface {
	Exists(ctx context.Context, localType db_models.LocalType, id uuid.UUID) (bool, error)
	FindAttractions(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Attraction, error)
	FindEstablishments(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Establishment, error)
}

type localRepository struct {
	db *gorm.DB
}

func NewLocalRepository(db *gorm.DB) LocalRepository {
	return &localRepository{db: db}
}

func (l *localRepository) Exists(ctx context.Context, localType db_models.LocalType, id uuid.UUID) (bool, error) {
	var model interface{}
	switch localType {
	case db_models.LocalAttraction:
		model = &db_models.Attraction{}
	case db_models.LocalEstablishment:
		model = &db_models.Establishment{}
	default:
		return false, nil
	}

	var count int64
	if err := l.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *localRepository) FindAttractions(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Attraction, error) {
	out := make(map[uuid.UUID]db_models.Attraction, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []db_models.Attraction
	if err := l.db.WithContext(ctx).Preload("Categories").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r
	}
	return out, nil
}

func (l *localRepository) FindEstablishments(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]db_models.Establishment, error) {
	out := make(map[uuid.UUID]db_models.Establishment, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []db_models.Establishment
	if err := l.db.WithContext(ctx).Preload("Categories").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r
	}
	return out, nil
}
