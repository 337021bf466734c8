package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

// RatingRepository works on one of the two rating tables, chosen by the
// target it was built for.
type RatingRepository interface {
	Target() db_models.RatingTarget
	FindAll(ctx context.Context) ([]db_models.Rating, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Rating, error)
	FindByTarget(ctx context.Context, targetID uuid.UUID) ([]db_models.Rating, error)
	FindByTourist(ctx context.Context, touristID uuid.UUID) ([]db_models.Rating, error)
	FindByTouristAndTarget(ctx context.Context, touristID, targetID uuid.UUID) (*db_models.Rating, error)
	TargetExists(ctx context.Context, targetID uuid.UUID) (bool, error)
	Create(ctx context.Context, rating *db_models.Rating) error
	UpdateValue(ctx context.Context, id uuid.UUID, value float64) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SetAverage writes the cached average_rating of the rated entity.
	SetAverage(ctx context.Context, targetID uuid.UUID, average float64) error
	// Transaction runs fn with a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(repo RatingRepository) error) error
}

type ratingTable struct {
	table        string
	targetColumn string
	row          func() interface{}
	newRow       func(r *db_models.Rating) interface{}
	parent       func() interface{}
}

var ratingTables = map[db_models.RatingTarget]ratingTable{
	db_models.RatingTargetAttraction: {
		table:        "rating_to_attractions",
		targetColumn: "attraction_id",
		row:          func() interface{} { return &db_models.RatingToAttraction{} },
		newRow: func(r *db_models.Rating) interface{} {
			return &db_models.RatingToAttraction{Value: r.Value, TouristID: r.TouristID, AttractionID: r.TargetID}
		},
		parent: func() interface{} { return &db_models.Attraction{} },
	},
	db_models.RatingTargetEstablishment: {
		table:        "rating_to_establishments",
		targetColumn: "establishment_id",
		row:          func() interface{} { return &db_models.RatingToEstablishment{} },
		newRow: func(r *db_models.Rating) interface{} {
			return &db_models.RatingToEstablishment{Value: r.Value, TouristID: r.TouristID, EstablishmentID: r.TargetID}
		},
		parent: func() interface{} { return &db_models.Establishment{} },
	},
}

type ratingRepository struct {
	db     *gorm.DB
	target db_models.RatingTarget
	t      ratingTable
}

func NewRatingRepository(db *gorm.DB, target db_models.RatingTarget) (RatingRepository, error) {
	t, ok := ratingTables[target]
	if !ok {
		return nil, fmt.Errorf("unknown rating target %q", target)
	}
	return &ratingRepository{db: db, target: target, t: t}, nil
}

func (r *ratingRepository) Target() db_models.RatingTarget {
	return r.target
}

func (r *ratingRepository) rows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(r.t.table).
		Select("id, value, tourist_id, " + r.t.targetColumn + " AS target_id, created_at, updated_at").
		Where("deleted_at IS NULL")
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]db_models.Rating, error) {
	var ratings []db_models.Rating
	if err := r.rows(ctx).Order("created_at").Scan(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Rating, error) {
	return r.first(r.rows(ctx).Where("id = ?", id))
}

func (r *ratingRepository) FindByTarget(ctx context.Context, targetID uuid.UUID) ([]db_models.Rating, error) {
	var ratings []db_models.Rating
	err := r.rows(ctx).
		Where(r.t.targetColumn+" = ?", targetID).
		Order("created_at").
		Scan(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) FindByTourist(ctx context.Context, touristID uuid.UUID) ([]db_models.Rating, error) {
	var ratings []db_models.Rating
	err := r.rows(ctx).
		Where("tourist_id = ?", touristID).
		Order("created_at").
		Scan(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) FindByTouristAndTarget(ctx context.Context, touristID, targetID uuid.UUID) (*db_models.Rating, error) {
	return r.first(r.rows(ctx).Where("tourist_id = ? AND "+r.t.targetColumn+" = ?", touristID, targetID))
}

func (r *ratingRepository) first(query *gorm.DB) (*db_models.Rating, error) {
	var ratings []db_models.Rating
	if err := query.Limit(1).Scan(&ratings).Error; err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, nil
	}
	return &ratings[0], nil
}

func (r *ratingRepository) TargetExists(ctx context.Context, targetID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(r.t.parent()).Where("id = ?", targetID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *db_models.Rating) error {
	row := r.t.newRow(rating)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}

	var base *db_models.BaseModel
	switch v := row.(type) {
	case *db_models.RatingToAttraction:
		base = &v.BaseModel
	case *db_models.RatingToEstablishment:
		base = &v.BaseModel
	}
	rating.ID = base.ID
	rating.CreatedAt = base.CreatedAt
	rating.UpdatedAt = base.UpdatedAt
	return nil
}

func (r *ratingRepository) UpdateValue(ctx context.Context, id uuid.UUID, value float64) error {
	res := r.db.WithContext(ctx).Model(r.t.row()).Where("id = ?", id).Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(r.t.row(), "id = ?", id).Error
}

func (r *ratingRepository) SetAverage(ctx context.Context, targetID uuid.UUID, average float64) error {
	res := r.db.WithContext(ctx).Model(r.t.parent()).Where("id = ?", targetID).Update("average_rating", average)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) Transaction(ctx context.Context, fn func(repo RatingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ratingRepository{db: tx, target: r.target, t: r.t})
	})
}

// IsUniqueViolation reports whether err came from a unique index.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
