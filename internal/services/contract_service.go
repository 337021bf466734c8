package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelling/internal/models/db_models"
	"travelling/internal/models/response_models"
	"travelling/internal/repositories"
	"travelling/pkg/utils"
)

type ContractServiceInterface interface {
	Create(ctx context.Context, actor Actor, attractionID, agencyID, touristID uuid.UUID) (*response_models.ContractResponse, error)
	FindAll(ctx context.Context) ([]response_models.ContractResponse, error)
	FindByID(ctx context.Context, actor Actor, id uuid.UUID) (*response_models.ContractResponse, error)
	// FindByTourist attaches the tourist's own rating to every attraction.
	FindByTourist(ctx context.Context, actor Actor, touristID uuid.UUID) ([]response_models.ContractResponse, error)
	FindByAgency(ctx context.Context, actor Actor, agencyID uuid.UUID) ([]response_models.ContractResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status db_models.ContractStatus) (*response_models.ContractResponse, error)
	Remove(ctx context.Context, actor Actor, id uuid.UUID) error
	ForceRemove(ctx context.Context, actor Actor, id uuid.UUID) error
}

type ContractService struct {
	contractRepo   repositories.ContractRepository
	attractionRepo repositories.AttractionRepository
	agencyRepo     repositories.AgencyRepository
	touristRepo    repositories.TouristRepository
	ratingRepo     repositories.RatingRepository
	logger         *zap.Logger
}

func NewContractService(
	contractRepo repositories.ContractRepository,
	attractionRepo repositories.AttractionRepository,
	agencyRepo repositories.AgencyRepository,
	touristRepo repositories.TouristRepository,
	ratingRepo repositories.RatingRepository,
	logger *zap.Logger,
) ContractServiceInterface {
	return &ContractService{
		contractRepo:   contractRepo,
		attractionRepo: attractionRepo,
		agencyRepo:     agencyRepo,
		touristRepo:    touristRepo,
		ratingRepo:     ratingRepo,
		logger:         logger,
	}
}

func ValidContractStatus(status db_models.ContractStatus) bool {
	switch status {
	case db_models.ContractPending, db_models.ContractConfirmed, db_models.ContractCanceled, db_models.ContractFinished:
		return true
	}
	return false
}

func (s *ContractService) Create(ctx context.Context, actor Actor, attractionID, agencyID, touristID uuid.UUID) (*response_models.ContractResponse, error) {
	attraction, err := s.attractionRepo.FindByID(ctx, attractionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}

	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if agency == nil {
		return nil, utils.ErrAgencyNotFound
	}
	if attraction.AgencyID != agency.ID {
		return nil, fmt.Errorf("%w: attraction is not offered by this agency", utils.ErrInvalidInput)
	}

	tourist, err := s.touristRepo.FindByID(ctx, touristID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tourist == nil {
		return nil, utils.ErrTouristNotFound
	}
	if !actor.Owns(tourist.UserID) {
		return nil, utils.ErrForbidden
	}

	existing, err := s.contractRepo.FindExisting(ctx, attractionID, agencyID, touristID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrContractAlreadyExists
	}

	contract := &db_models.Contract{
		Status:       db_models.ContractPending,
		TouristID:    tourist.ID,
		AgencyID:     agency.ID,
		AttractionID: attraction.ID,
	}
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		s.logger.Error("create contract", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewContractResponse(*contract)
	return &resp, nil
}

func contractResponses(contracts []db_models.Contract) []response_models.ContractResponse {
	out := make([]response_models.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, response_models.NewContractResponse(c))
	}
	return out
}

func (s *ContractService) FindAll(ctx context.Context) ([]response_models.ContractResponse, error) {
	contracts, err := s.contractRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contractResponses(contracts), nil
}

func (s *ContractService) find(ctx context.Context, id uuid.UUID) (*db_models.Contract, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if contract == nil {
		return nil, utils.ErrContractNotFound
	}
	return contract, nil
}

func isParty(actor Actor, contract *db_models.Contract) bool {
	if actor.IsAdmin() {
		return true
	}
	if contract.Tourist != nil && actor.Owns(contract.Tourist.UserID) {
		return true
	}
	return contract.Agency != nil && actor.Owns(contract.Agency.UserID)
}

func (s *ContractService) FindByID(ctx context.Context, actor Actor, id uuid.UUID) (*response_models.ContractResponse, error) {
	contract, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isParty(actor, contract) {
		return nil, utils.ErrForbidden
	}
	resp := response_models.NewContractResponse(*contract)
	return &resp, nil
}

func (s *ContractService) FindByTourist(ctx context.Context, actor Actor, touristID uuid.UUID) ([]response_models.ContractResponse, error) {
	tourist, err := s.touristRepo.FindByID(ctx, touristID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tourist == nil {
		return nil, utils.ErrTouristNotFound
	}
	if !actor.Owns(tourist.UserID) {
		return nil, utils.ErrForbidden
	}

	contracts, err := s.contractRepo.FindByTourist(ctx, touristID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	ratings, err := s.ratingRepo.FindByTourist(ctx, touristID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byAttraction := make(map[uuid.UUID]db_models.Rating, len(ratings))
	for _, r := range ratings {
		byAttraction[r.TargetID] = r
	}

	out := contractResponses(contracts)
	for i := range out {
		if out[i].Attraction == nil {
			continue
		}
		out[i].Attraction.Ratings = []response_models.RatingResponse{}
		if r, ok := byAttraction[contracts[i].AttractionID]; ok {
			out[i].Attraction.Ratings = append(out[i].Attraction.Ratings,
				response_models.NewRatingResponse(r, db_models.RatingTargetAttraction))
		}
	}
	return out, nil
}

func (s *ContractService) FindByAgency(ctx context.Context, actor Actor, agencyID uuid.UUID) ([]response_models.ContractResponse, error) {
	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if agency == nil {
		return nil, utils.ErrAgencyNotFound
	}
	if !actor.Owns(agency.UserID) {
		return nil, utils.ErrForbidden
	}

	contracts, err := s.contractRepo.FindByAgency(ctx, agencyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contractResponses(contracts), nil
}

func (s *ContractService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status db_models.ContractStatus) (*response_models.ContractResponse, error) {
	if !ValidContractStatus(status) {
		return nil, utils.ErrInvalidStatus
	}
	contract, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && (contract.Agency == nil || !actor.Owns(contract.Agency.UserID)) {
		return nil, utils.ErrForbidden
	}

	if err := s.contractRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, utils.ErrDatabaseError
	}
	contract.Status = status
	resp := response_models.NewContractResponse(*contract)
	return &resp, nil
}

// Remove only flags the contract as deleted.
func (s *ContractService) Remove(ctx context.Context, actor Actor, id uuid.UUID) error {
	contract, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !isParty(actor, contract) {
		return utils.ErrForbidden
	}
	if err := s.contractRepo.MarkDeleted(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ContractService) ForceRemove(ctx context.Context, actor Actor, id uuid.UUID) error {
	contract, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !isParty(actor, contract) {
		return utils.ErrForbidden
	}
	if err := s.contractRepo.ForceDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
