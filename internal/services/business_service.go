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

type BusinessServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateUserRequest) (*response_models.BusinessResponse, error)
	FindAll(ctx context.Context) ([]response_models.BusinessResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.BusinessResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateUserRequest) (*response_models.BusinessResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type BusinessService struct {
	businessRepo repositories.BusinessRepository
	userRepo   repositories.UserRepository
}

func NewBusinessService(businessRepo repositories.BusinessRepository, userRepo repositories.UserRepository) BusinessServiceInterface {
	return &BusinessService{businessRepo: businessRepo, userRepo: userRepo}
}

func (s *BusinessService) Create(ctx context.Context, request request_models.CreateUserRequest) (*response_models.BusinessResponse, error) {
	user, err := newUser(ctx, s.userRepo, request, db_models.RoleBusiness)
	if err != nil {
		return nil, err
	}
	user.Business = &db_models.Business{BaseModel: db_models.BaseModel{ID: user.ID}}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateCreateError(err, utils.ErrUserAlreadyExists)
	}

	business := *user.Business
	user.Business = nil
	business.User = user
	resp := response_models.NewBusinessResponse(business)
	return &resp, nil
}

func (s *BusinessService) FindAll(ctx context.Context) ([]response_models.BusinessResponse, error) {
	businesses, err := s.businessRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		out = append(out, response_models.NewBusinessResponse(b))
	}
	return out, nil
}

func (s *BusinessService) find(ctx context.Context, id uuid.UUID) (*db_models.Business, error) {
	business, err := s.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}
	return business, nil
}

func (s *BusinessService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.BusinessResponse, error) {
	business, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewBusinessResponse(*business)
	return &resp, nil
}

func (s *BusinessService) Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateUserRequest) (*response_models.BusinessResponse, error) {
	business, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(business.UserID) {
		return nil, utils.ErrForbidden
	}

	if err := applyUserUpdate(ctx, s.userRepo, business.User, request); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, business.User); err != nil {
		return nil, translateCreateError(err, utils.ErrUserAlreadyExists)
	}

	resp := response_models.NewBusinessResponse(*business)
	return &resp, nil
}

func (s *BusinessService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	business, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Owns(business.UserID) {
		return utils.ErrForbidden
	}
	if err := s.businessRepo.Delete(ctx, business); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
