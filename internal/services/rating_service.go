package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
	"travelling/internal/models/response_models"
	"travelling/internal/repositories"
	"travelling/pkg/utils"
)

type RatingServiceInterface interface {
	Create(ctx context.Context, actor Actor, touristID, targetID uuid.UUID, value float64) (*response_models.RatingResponse, error)
	Update(ctx context.Context, actor Actor, touristID, targetID uuid.UUID, value float64) (*response_models.RatingResponse, error)
	Delete(ctx context.Context, actor Actor, touristID, targetID uuid.UUID) error
	FindAll(ctx context.Context) ([]response_models.RatingResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.RatingResponse, error)
	FindByTarget(ctx context.Context, targetID uuid.UUID) ([]response_models.RatingResponse, error)
}

// RatingService keeps a target's cached average in step with its ratings.
// Recomputes run inside the write transaction but are not serialised
// against concurrent writers on the same target.
type RatingService struct {
	ratingRepo  repositories.RatingRepository
	touristRepo repositories.TouristRepository
	logger      *zap.Logger
}

type AttractionRatingService struct{ RatingServiceInterface }

type EstablishmentRatingService struct{ RatingServiceInterface }

func NewRatingService(ratingRepo repositories.RatingRepository, touristRepo repositories.TouristRepository, logger *zap.Logger) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		touristRepo: touristRepo,
		logger:      logger.With(zap.String("target", string(ratingRepo.Target()))),
	}
}

func NewAttractionRatingService(ratingRepo repositories.RatingRepository, touristRepo repositories.TouristRepository, logger *zap.Logger) *AttractionRatingService {
	return &AttractionRatingService{NewRatingService(ratingRepo, touristRepo, logger)}
}

func NewEstablishmentRatingService(ratingRepo repositories.RatingRepository, touristRepo repositories.TouristRepository, logger *zap.Logger) *EstablishmentRatingService {
	return &EstablishmentRatingService{NewRatingService(ratingRepo, touristRepo, logger)}
}

func ratingValues(ratings []db_models.Rating) []float64 {
	values := make([]float64, 0, len(ratings)+1)
	for _, r := range ratings {
		values = append(values, r.Value)
	}
	return values
}

// averageAfterCreate averages the ratings that existed before the insert
// plus the new value.
func averageAfterCreate(existing []db_models.Rating, value float64) float64 {
	return utils.CalculateAverage(append(ratingValues(existing), value))
}

// averageAfterEdit drops the editing tourist's previous rating and counts
// the new value instead.
func averageAfterEdit(all []db_models.Rating, touristID uuid.UUID, value float64) float64 {
	values := make([]float64, 0, len(all)+1)
	for _, r := range all {
		if r.TouristID != touristID {
			values = append(values, r.Value)
		}
	}
	return utils.CalculateAverage(append(values, value))
}

func averageAfterDelete(remaining []db_models.Rating) float64 {
	return utils.CalculateAverage(ratingValues(remaining))
}

func (s *RatingService) notFoundTarget() error {
	if s.ratingRepo.Target() == db_models.RatingTargetEstablishment {
		return utils.ErrEstablishmentNotFound
	}
	return utils.ErrAttractionNotFound
}

// checkParties verifies the tourist exists, belongs to the actor and that the
// rated entity exists.
func (s *RatingService) checkParties(ctx context.Context, actor Actor, touristID, targetID uuid.UUID) error {
	tourist, err := s.touristRepo.FindByID(ctx, touristID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if tourist == nil {
		return utils.ErrTouristNotFound
	}
	if !actor.Owns(tourist.UserID) {
		return utils.ErrForbidden
	}

	exists, err := s.ratingRepo.TargetExists(ctx, targetID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !exists {
		return s.notFoundTarget()
	}
	return nil
}

// txError keeps sentinel errors raised inside a transaction and hides the rest.
func (s *RatingService) txError(op string, err error) error {
	for _, sentinel := range []error{utils.ErrRatingAlreadyExists, utils.ErrRatingNotFound} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	if repositories.IsUniqueViolation(err) {
		return utils.ErrRatingAlreadyExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.notFoundTarget()
	}
	s.logger.Error(op, zap.Error(err))
	return utils.ErrDatabaseError
}

func (s *RatingService) Create(ctx context.Context, actor Actor, touristID, targetID uuid.UUID, value float64) (*response_models.RatingResponse, error) {
	if value < 0 || value > 5 {
		return nil, utils.ErrInvalidRating
	}
	if err := s.checkParties(ctx, actor, touristID, targetID); err != nil {
		return nil, err
	}

	rating := &db_models.Rating{Value: value, TouristID: touristID, TargetID: targetID}
	err := s.ratingRepo.Transaction(ctx, func(repo repositories.RatingRepository) error {
		existing, err := repo.FindByTouristAndTarget(ctx, touristID, targetID)
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.ErrRatingAlreadyExists
		}

		ratings, err := repo.FindByTarget(ctx, targetID)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, rating); err != nil {
			return err
		}
		return repo.SetAverage(ctx, targetID, averageAfterCreate(ratings, value))
	})
	if err != nil {
		return nil, s.txError("create rating", err)
	}

	resp := response_models.NewRatingResponse(*rating, s.ratingRepo.Target())
	return &resp, nil
}

func (s *RatingService) Update(ctx context.Context, actor Actor, touristID, targetID uuid.UUID, value float64) (*response_models.RatingResponse, error) {
	if value < 0 || value > 5 {
		return nil, utils.ErrInvalidRating
	}
	if err := s.checkParties(ctx, actor, touristID, targetID); err != nil {
		return nil, err
	}

	var updated db_models.Rating
	err := s.ratingRepo.Transaction(ctx, func(repo repositories.RatingRepository) error {
		existing, err := repo.FindByTouristAndTarget(ctx, touristID, targetID)
		if err != nil {
			return err
		}
		if existing == nil {
			return utils.ErrRatingNotFound
		}

		ratings, err := repo.FindByTarget(ctx, targetID)
		if err != nil {
			return err
		}
		if err := repo.UpdateValue(ctx, existing.ID, value); err != nil {
			return err
		}
		updated = *existing
		updated.Value = value
		return repo.SetAverage(ctx, targetID, averageAfterEdit(ratings, touristID, value))
	})
	if err != nil {
		return nil, s.txError("update rating", err)
	}

	resp := response_models.NewRatingResponse(updated, s.ratingRepo.Target())
	return &resp, nil
}

func (s *RatingService) Delete(ctx context.Context, actor Actor, touristID, targetID uuid.UUID) error {
	if err := s.checkParties(ctx, actor, touristID, targetID); err != nil {
		return err
	}

	err := s.ratingRepo.Transaction(ctx, func(repo repositories.RatingRepository) error {
		existing, err := repo.FindByTouristAndTarget(ctx, touristID, targetID)
		if err != nil {
			return err
		}
		if existing == nil {
			return utils.ErrRatingNotFound
		}

		if err := repo.Delete(ctx, existing.ID); err != nil {
			return err
		}
		remaining, err := repo.FindByTarget(ctx, targetID)
		if err != nil {
			return err
		}
		return repo.SetAverage(ctx, targetID, averageAfterDelete(remaining))
	})
	if err != nil {
		return s.txError("delete rating", err)
	}
	return nil
}

func (s *RatingService) responses(ratings []db_models.Rating) []response_models.RatingResponse {
	out := make([]response_models.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, response_models.NewRatingResponse(r, s.ratingRepo.Target()))
	}
	return out
}

func (s *RatingService) FindAll(ctx context.Context) ([]response_models.RatingResponse, error) {
	ratings, err := s.ratingRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.responses(ratings), nil
}

func (s *RatingService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.RatingResponse, error) {
	rating, err := s.ratingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rating == nil {
		return nil, utils.ErrRatingNotFound
	}
	resp := response_models.NewRatingResponse(*rating, s.ratingRepo.Target())
	return &resp, nil
}

func (s *RatingService) FindByTarget(ctx context.Context, targetID uuid.UUID) ([]response_models.RatingResponse, error) {
	exists, err := s.ratingRepo.TargetExists(ctx, targetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !exists {
		return nil, s.notFoundTarget()
	}

	ratings, err := s.ratingRepo.FindByTarget(ctx, targetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.responses(ratings), nil
}
