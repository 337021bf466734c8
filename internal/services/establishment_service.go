package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"travelling/internal/models/db_models"
	"travelling/internal/models/request_models"
	"travelling/internal/models/response_models"
	"travelling/internal/repositories"
	"travelling/pkg/filters"
	"travelling/pkg/utils"
)

var establishmentQueryConfig = filters.QueryConfig{
	"name":          {Field: "name", Operation: filters.OpContains, Insensitive: true},
	"minPrice":      {Field: "minPrice", Operation: filters.OpGte, Transform: filters.ParseFloat},
	"maxPrice":      {Field: "maxPrice", Operation: filters.OpLte, Transform: filters.ParseFloat},
	"openHours":     {Field: "openHours", Operation: filters.OpGte, Transform: filters.ParseTime},
	"closeHours":    {Field: "closeHours", Operation: filters.OpLte, Transform: filters.ParseTime},
	"openDays":      {Field: "openDays", Operation: filters.OpHasSome, Transform: filters.SplitList},
	"averageRating": {Field: "averageRating", Operation: filters.OpGte, Transform: filters.ParseFloat},
	"location":      {Field: "location", Operation: filters.OpContains, Insensitive: true},
	"categories":    {Field: "categories", Operation: filters.OpSome, Transform: filters.SplitList},
	"business":      {Field: "business", Transform: filters.RelationOf("name")},
}

type EstablishmentServiceInterface interface {
	Create(ctx context.Context, actor Actor, businessID uuid.UUID, request request_models.CreateEstablishmentRequest) (*response_models.EstablishmentResponse, error)
	FindAll(ctx context.Context, params map[string]string) ([]response_models.EstablishmentResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.EstablishmentResponse, error)
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]response_models.EstablishmentResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateEstablishmentRequest) (*response_models.EstablishmentResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type EstablishmentService struct {
	establishmentRepo repositories.EstablishmentRepository
	businessRepo      repositories.BusinessRepository
	categoryRepo      repositories.CategoryRepositoryInterface
	media             MediaServiceInterface
	logger            *zap.Logger
}

func NewEstablishmentService(
	establishmentRepo repositories.EstablishmentRepository,
	businessRepo repositories.BusinessRepository,
	categoryRepo repositories.CategoryRepositoryInterface,
	media MediaServiceInterface,
	logger *zap.Logger,
) EstablishmentServiceInterface {
	return &EstablishmentService{
		establishmentRepo: establishmentRepo,
		businessRepo:      businessRepo,
		categoryRepo:      categoryRepo,
		media:             media,
		logger:            logger,
	}
}

func (s *EstablishmentService) Create(ctx context.Context, actor Actor, businessID uuid.UUID, request request_models.CreateEstablishmentRequest) (*response_models.EstablishmentResponse, error) {
	existing, err := s.establishmentRepo.FindByLocation(ctx, request.Location)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEstablishmentAlreadyExists
	}

	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}
	if !actor.Owns(business.UserID) {
		return nil, utils.ErrForbidden
	}

	categories, err := loadCategories(ctx, s.categoryRepo, request.Categories)
	if err != nil {
		return nil, err
	}

	establishment := &db_models.Establishment{
		Name:                 request.Name,
		Description:          request.Description,
		Banner:               request.Banner,
		OpenHours:            request.OpenHours,
		CloseHours:           request.CloseHours,
		MinPrice:             request.MinPrice,
		MaxPrice:             request.MaxPrice,
		Location:             request.Location,
		OpenDays:             pq.StringArray(request.OpenDays),
		FoundInEstablishment: request.FoundInEstablishment,
		OtherInformation:     request.OtherInformation,
		Phone:                request.Phone,
		GeneralMedias:        pq.StringArray(request.GeneralMedias),
		MenuOfServicesMedia:  pq.StringArray(request.MenuOfServicesMedia),
		AverageRating:        utils.DefaultAverageRating,
		BusinessID:           business.ID,
		Categories:           categories,
	}
	if err := s.establishmentRepo.Create(ctx, establishment); err != nil {
		s.logger.Error("create establishment", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewEstablishmentResponse(*establishment)
	return &resp, nil
}

func (s *EstablishmentService) FindAll(ctx context.Context, params map[string]string) ([]response_models.EstablishmentResponse, error) {
	count, where, err := filters.Build(params, establishmentQueryConfig)
	if err != nil {
		return nil, err
	}

	establishments, err := s.establishmentRepo.FindAll(ctx, where)
	if err != nil {
		if errors.Is(err, filters.ErrInvalidFilter) {
			return nil, err
		}
		s.logger.Error("find establishments", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if len(establishments) == 0 && count > 0 {
		return nil, utils.ErrNoFilterMatches
	}

	return s.responses(ctx, establishments), nil
}

func (s *EstablishmentService) responses(ctx context.Context, establishments []db_models.Establishment) []response_models.EstablishmentResponse {
	out := make([]response_models.EstablishmentResponse, 0, len(establishments))
	for _, e := range establishments {
		out = append(out, s.response(ctx, e))
	}
	return out
}

func (s *EstablishmentService) response(ctx context.Context, e db_models.Establishment) response_models.EstablishmentResponse {
	resp := response_models.NewEstablishmentResponse(e)
	resp.Banner = s.media.ResolveURL(ctx, e.Banner)
	resp.GeneralMedias = s.media.ResolveURLs(ctx, e.GeneralMedias)
	resp.MenuOfServicesMedia = s.media.ResolveURLs(ctx, e.MenuOfServicesMedia)
	return resp
}

func (s *EstablishmentService) find(ctx context.Context, id uuid.UUID) (*db_models.Establishment, error) {
	establishment, err := s.establishmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if establishment == nil {
		return nil, utils.ErrEstablishmentNotFound
	}
	return establishment, nil
}

func (s *EstablishmentService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.EstablishmentResponse, error) {
	establishment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.response(ctx, *establishment)
	return &resp, nil
}

func (s *EstablishmentService) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]response_models.EstablishmentResponse, error) {
	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}

	establishments, err := s.establishmentRepo.FindByBusiness(ctx, businessID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.responses(ctx, establishments), nil
}

func (s *EstablishmentService) owned(ctx context.Context, actor Actor, id uuid.UUID) (*db_models.Establishment, error) {
	establishment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return establishment, nil
	}
	if establishment.Business == nil || !actor.Owns(establishment.Business.UserID) {
		return nil, utils.ErrForbidden
	}
	return establishment, nil
}

func (s *EstablishmentService) Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateEstablishmentRequest) (*response_models.EstablishmentResponse, error) {
	establishment, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if request.Location != nil && *request.Location != establishment.Location {
		other, err := s.establishmentRepo.FindByLocation(ctx, *request.Location)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil && other.ID != establishment.ID {
			return nil, utils.ErrEstablishmentAlreadyExists
		}
		establishment.Location = *request.Location
	}

	var categories []db_models.Category
	if request.Categories != nil {
		if categories, err = loadCategories(ctx, s.categoryRepo, request.Categories); err != nil {
			return nil, err
		}
	}

	if request.Name != nil {
		establishment.Name = *request.Name
	}
	if request.Description != nil {
		establishment.Description = *request.Description
	}
	if request.Banner != nil {
		establishment.Banner = *request.Banner
	}
	if request.OpenHours != nil {
		establishment.OpenHours = *request.OpenHours
	}
	if request.CloseHours != nil {
		establishment.CloseHours = *request.CloseHours
	}
	if request.MinPrice != nil {
		establishment.MinPrice = *request.MinPrice
	}
	if request.MaxPrice != nil {
		establishment.MaxPrice = *request.MaxPrice
	}
	if establishment.MaxPrice < establishment.MinPrice {
		return nil, utils.ErrInvalidInput
	}
	if request.OpenDays != nil {
		establishment.OpenDays = pq.StringArray(request.OpenDays)
	}
	if request.FoundInEstablishment != nil {
		establishment.FoundInEstablishment = *request.FoundInEstablishment
	}
	if request.OtherInformation != nil {
		establishment.OtherInformation = *request.OtherInformation
	}
	if request.Phone != nil {
		establishment.Phone = *request.Phone
	}
	if request.GeneralMedias != nil {
		establishment.GeneralMedias = pq.StringArray(request.GeneralMedias)
	}
	if request.MenuOfServicesMedia != nil {
		establishment.MenuOfServicesMedia = pq.StringArray(request.MenuOfServicesMedia)
	}

	if err := s.establishmentRepo.Update(ctx, establishment, categories); err != nil {
		s.logger.Error("update establishment", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := s.response(ctx, *establishment)
	return &resp, nil
}

// Delete removes the establishment and then its media. Storage failures are
// only logged.
func (s *EstablishmentService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	establishment, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.establishmentRepo.Delete(ctx, establishment.ID); err != nil {
		s.logger.Error("delete establishment", zap.Error(err))
		return utils.ErrDatabaseError
	}

	refs := append([]string{establishment.Banner}, establishment.GeneralMedias...)
	refs = append(refs, establishment.MenuOfServicesMedia...)
	s.media.RemoveRefs(ctx, refs...)
	return nil
}
