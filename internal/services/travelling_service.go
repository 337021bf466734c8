package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelling/internal/models/db_models"
	"travelling/internal/models/request_models"
	"travelling/internal/models/response_models"
	"travelling/internal/repositories"
	"travelling/pkg/utils"
)

type TravellingServiceInterface interface {
	Create(ctx context.Context, actor Actor, touristID uuid.UUID, request request_models.CreateTravellingRequest) (*response_models.TravellingResponse, error)
	FindAll(ctx context.Context) ([]response_models.TravellingResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.TravellingResponse, error)
	FindByTourist(ctx context.Context, touristID uuid.UUID) ([]response_models.TravellingResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateTravellingRequest) (*response_models.TravellingResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type TravellingService struct {
	travellingRepo repositories.TravellingRepository
	touristRepo    repositories.TouristRepository
	localRepo      repositories.LocalRepository
	media          MediaServiceInterface
	logger         *zap.Logger
}

func NewTravellingService(
	travellingRepo repositories.TravellingRepository,
	touristRepo repositories.TouristRepository,
	localRepo repositories.LocalRepository,
	media MediaServiceInterface,
	logger *zap.Logger,
) TravellingServiceInterface {
	return &TravellingService{
		travellingRepo: travellingRepo,
		touristRepo:    touristRepo,
		localRepo:      localRepo,
		media:          media,
		logger:         logger,
	}
}

// buildLocals checks that every local sits at the index given by its
// position and points at an existing attraction or establishment.
func (s *TravellingService) buildLocals(ctx context.Context, travellingID uuid.UUID, requests []request_models.LocalRequest) ([]db_models.LocalReference, error) {
	locals := make([]db_models.LocalReference, 0, len(requests))
	for i, r := range requests {
		if r.Position != i {
			return nil, fmt.Errorf("%w: local %d has position %d", utils.ErrInvalidLocalPosition, i, r.Position)
		}
		localType := db_models.LocalType(r.Type)
		if !localType.Valid() {
			return nil, utils.ErrInvalidLocalType
		}
		localID, err := uuid.Parse(r.LocalID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}

		exists, err := s.localRepo.Exists(ctx, localType, localID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s %s", utils.ErrLocalNotFound, localType, localID)
		}

		locals = append(locals, db_models.LocalReference{
			TravellingID: travellingID,
			Position:     r.Position,
			LocalType:    localType,
			LocalID:      localID,
		})
	}
	return locals, nil
}

func (s *TravellingService) findTourist(ctx context.Context, actor Actor, touristID uuid.UUID) (*db_models.Tourist, error) {
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
	return tourist, nil
}

func (s *TravellingService) Create(ctx context.Context, actor Actor, touristID uuid.UUID, request request_models.CreateTravellingRequest) (*response_models.TravellingResponse, error) {
	tourist, err := s.findTourist(ctx, actor, touristID)
	if err != nil {
		return nil, err
	}

	existing, err := s.travellingRepo.FindByTitle(ctx, request.Title)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrTravellingAlreadyExists
	}

	travelling := &db_models.Travelling{Title: request.Title, TouristID: tourist.ID}
	travelling.ID = uuid.New()
	locals, err := s.buildLocals(ctx, travelling.ID, request.Locals)
	if err != nil {
		return nil, err
	}
	travelling.Locals = locals

	if err := s.travellingRepo.Create(ctx, travelling); err != nil {
		return nil, translateCreateError(err, utils.ErrTravellingAlreadyExists)
	}

	resp, err := s.respond(ctx, *travelling)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *TravellingService) FindAll(ctx context.Context) ([]response_models.TravellingResponse, error) {
	travellings, err := s.travellingRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.respondAll(ctx, travellings)
}

func (s *TravellingService) find(ctx context.Context, id uuid.UUID) (*db_models.Travelling, error) {
	travelling, err := s.travellingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if travelling == nil {
		return nil, utils.ErrTravellingNotFound
	}
	return travelling, nil
}

func (s *TravellingService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.TravellingResponse, error) {
	travelling, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp, err := s.respond(ctx, *travelling)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *TravellingService) FindByTourist(ctx context.Context, touristID uuid.UUID) ([]response_models.TravellingResponse, error) {
	tourist, err := s.touristRepo.FindByID(ctx, touristID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tourist == nil {
		return nil, utils.ErrTouristNotFound
	}

	travellings, err := s.travellingRepo.FindByTourist(ctx, touristID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.respondAll(ctx, travellings)
}

// Update renames the travelling and, when locals are sent, replaces the
// whole ordered list.
func (s *TravellingService) Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateTravellingRequest) (*response_models.TravellingResponse, error) {
	travelling, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.findTourist(ctx, actor, travelling.TouristID); err != nil {
		return nil, err
	}

	if request.Title != nil && *request.Title != travelling.Title {
		existing, err := s.travellingRepo.FindByTitle(ctx, *request.Title)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil && existing.ID != travelling.ID {
			return nil, utils.ErrTravellingAlreadyExists
		}
		travelling.Title = *request.Title
	}

	var locals []db_models.LocalReference
	if len(request.Locals) > 0 {
		if locals, err = s.buildLocals(ctx, travelling.ID, request.Locals); err != nil {
			return nil, err
		}
	}

	if err := s.travellingRepo.Update(ctx, travelling, locals); err != nil {
		return nil, translateCreateError(err, utils.ErrTravellingAlreadyExists)
	}
	if locals != nil {
		travelling.Locals = locals
	}

	resp, err := s.respond(ctx, *travelling)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *TravellingService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	travelling, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.findTourist(ctx, actor, travelling.TouristID); err != nil {
		return err
	}
	if err := s.travellingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("delete travelling", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TravellingService) respond(ctx context.Context, t db_models.Travelling) (response_models.TravellingResponse, error) {
	out, err := s.respondAll(ctx, []db_models.Travelling{t})
	if err != nil {
		return response_models.TravellingResponse{}, err
	}
	return out[0], nil
}

// respondAll loads every referenced attraction and establishment with one
// query per type and tags each local with the matching summary.
func (s *TravellingService) respondAll(ctx context.Context, travellings []db_models.Travelling) ([]response_models.TravellingResponse, error) {
	var attractionIDs, establishmentIDs []uuid.UUID
	for _, t := range travellings {
		for _, l := range t.Locals {
			switch l.LocalType {
			case db_models.LocalAttraction:
				attractionIDs = append(attractionIDs, l.LocalID)
			case db_models.LocalEstablishment:
				establishmentIDs = append(establishmentIDs, l.LocalID)
			}
		}
	}

	attractions, err := s.localRepo.FindAttractions(ctx, attractionIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	establishments, err := s.localRepo.FindEstablishments(ctx, establishmentIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TravellingResponse, 0, len(travellings))
	for _, t := range travellings {
		locals := make([]response_models.LocalResponse, 0, len(t.Locals))
		for _, l := range t.Locals {
			local := response_models.LocalResponse{
				ID:       l.ID.String(),
				Position: l.Position,
				Type:     string(l.LocalType),
				LocalID:  l.LocalID.String(),
			}
			switch l.LocalType {
			case db_models.LocalAttraction:
				if a, ok := attractions[l.LocalID]; ok {
					summary := response_models.NewAttractionSummary(a)
					summary.Banner = s.media.ResolveURL(ctx, a.Banner)
					local.Attraction = &summary
				}
			case db_models.LocalEstablishment:
				if e, ok := establishments[l.LocalID]; ok {
					summary := response_models.NewEstablishmentSummary(e)
					summary.Banner = s.media.ResolveURL(ctx, e.Banner)
					local.Establishment = &summary
				}
			}
			locals = append(locals, local)
		}
		out = append(out, response_models.NewTravellingResponse(t, locals))
	}
	return out, nil
}
