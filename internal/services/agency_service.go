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

type AgencyServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateUserRequest) (*response_models.AgencyResponse, error)
	FindAll(ctx context.Context) ([]response_models.AgencyResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.AgencyResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateUserRequest) (*response_models.AgencyResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type AgencyService struct {
	agencyRepo repositories.AgencyRepository
	userRepo   repositories.UserRepository
}

func NewAgencyService(agencyRepo repositories.AgencyRepository, userRepo repositories.UserRepository) AgencyServiceInterface {
	return &AgencyService{agencyRepo: agencyRepo, userRepo: userRepo}
}

func (s *AgencyService) Create(ctx context.Context, request request_models.CreateUserRequest) (*response_models.AgencyResponse, error) {
	user, err := newUser(ctx, s.userRepo, request, db_models.RoleAgency)
	if err != nil {
		return nil, err
	}
	user.Agency = &db_models.Agency{BaseModel: db_models.BaseModel{ID: user.ID}}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateCreateError(err, utils.ErrUserAlreadyExists)
	}

	agency := *user.Agency
	user.Agency = nil
	agency.User = user
	resp := response_models.NewAgencyResponse(agency)
	return &resp, nil
}

func (s *AgencyService) FindAll(ctx context.Context) ([]response_models.AgencyResponse, error) {
	agencies, err := s.agencyRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.AgencyResponse, 0, len(agencies))
	for _, a := range agencies {
		out = append(out, response_models.NewAgencyResponse(a))
	}
	return out, nil
}

func (s *AgencyService) find(ctx context.Context, id uuid.UUID) (*db_models.Agency, error) {
	agency, err := s.agencyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if agency == nil {
		return nil, utils.ErrAgencyNotFound
	}
	return agency, nil
}

func (s *AgencyService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.AgencyResponse, error) {
	agency, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewAgencyResponse(*agency)
	return &resp, nil
}

func (s *AgencyService) Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateUserRequest) (*response_models.AgencyResponse, error) {
	agency, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Owns(agency.UserID) {
		return nil, utils.ErrForbidden
	}

	if err := applyUserUpdate(ctx, s.userRepo, agency.User, request); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, agency.User); err != nil {
		return nil, translateCreateError(err, utils.ErrUserAlreadyExists)
	}

	resp := response_models.NewAgencyResponse(*agency)
	return &resp, nil
}

func (s *AgencyService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	agency, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !actor.Owns(agency.UserID) {
		return utils.ErrForbidden
	}
	if err := s.agencyRepo.Delete(ctx, agency); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
