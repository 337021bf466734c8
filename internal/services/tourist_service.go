package services

import (
	"context"

	"github.com/google/uuid"

	"travelling/internal/models/db_models"
	"travelling/internal/models/request_models"
	"travelling/internal/models/response_models"
	"travelling/internal/repositories"
	"travelling/pkg/utils"
)

type TouristServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateTouristRequest) (*response_models.TouristResponse, error)
	FindAll(ctx context.Context) ([]response_models.TouristResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.TouristResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateTouristRequest) (*response_models.TouristResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type TouristService struct {
	touristRepo  repositories.TouristRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewTouristService(
	touristRepo repositories.TouristRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepositoryInterface,
) TouristServiceInterface {
	return &TouristService{touristRepo: touristRepo, userRepo: userRepo, categoryRepo: categoryRepo}
}

// loadCategories loads every id in raw, failing when one does not exist.
func loadCategories(ctx context.Context, repo repositories.CategoryRepositoryInterface, raw []string) ([]db_models.Category, error) {
	ids, err := parseIDs(raw)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	categories, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(categories) != len(ids) {
		return nil, utils.ErrCategoryNotFound
	}
	return categories, nil
}

func (s *TouristService) Create(ctx context.Context, request request_models.CreateTouristRequest) (*response_models.TouristResponse, error) {
	categories, err := loadCategories(ctx, s.categoryRepo, request.FavoriteCategories)
	if err != nil {
		return nil, err
	}

	user, err := newUser(ctx, s.userRepo, request.CreateUserRequest, db_models.RoleTourist)
	if err != nil {
		return nil, err
	}
	user.Tourist = &db_models.Tourist{
		BaseModel:          db_models.BaseModel{ID: user.ID},
		Lastname:           request.Lastname,
		Age:                request.Age,
		FavoriteCategories: categories,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateCreateError(err, utils.ErrUserAlreadyExists)
	}

	tourist := *user.Tourist
	user.Tourist = nil
	tourist.User = user
	resp := response_models.NewTouristResponse(tourist)
	return &resp, nil
}

func (s *TouristService) FindAll(ctx context.Context) ([]response_models.TouristResponse, error) {
	tourists, err := s.touristRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.TouristResponse, 0, len(tourists))
	for _, t := range tourists {
		out = append(out, response_models.NewTouristResponse(t))
	}
	return out, nil
}

func (s *TouristService) find(ctx context.Context, id uuid.UUID) (*db_models.Tourist, error) {
	tourist, err := s.touristRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tourist == nil {
		return nil, utils.ErrTouristNotFound
	}
	return tourist, nil
}

func (s *TouristService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.TouristResponse, error) {
	tourist, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewTouristResponse(*tourist)
	return &resp, nil
}

func (s *TouristService) Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateTouristRequest) (*response_models.TouristResponse, error) {
	tourist, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(tourist.UserID) {
		return nil, utils.ErrForbidden
	}

	var categories []db_models.Category
	if request.FavoriteCategories != nil {
		if categories, err = loadCategories(ctx, s.categoryRepo, request.FavoriteCategories); err != nil {
			return nil, err
		}
	}

	if err := applyUserUpdate(ctx, s.userRepo, tourist.User, request.UpdateUserRequest); err != nil {
		return nil, err
	}
	if request.Lastname != nil {
		tourist.Lastname = *request.Lastname
	}
	if request.Age != nil {
		tourist.Age = *request.Age
	}

	if err := s.touristRepo.Update(ctx, tourist, categories); err != nil {
		return nil, translateCreateError(err, utils.ErrUserAlreadyExists)
	}

	resp := response_models.NewTouristResponse(*tourist)
	return &resp, nil
}

func (s *TouristService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	tourist, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Owns(tourist.UserID) {
		return utils.ErrForbidden
	}
	if err := s.touristRepo.Delete(ctx, tourist); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
