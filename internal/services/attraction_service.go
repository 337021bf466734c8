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

var attractionQueryConfig = filters.QueryConfig{
	"name":          {Field: "name", Operation: filters.OpContains, Insensitive: true},
	"minPrice":      {Field: "pricing", Operation: filters.OpGte, Transform: filters.ParseFloat},
	"maxPrice":      {Field: "pricing", Operation: filters.OpLte, Transform: filters.ParseFloat},
	"startDate":     {Field: "date", Operation: filters.OpGte, Transform: filters.ParseTime},
	"endDate":       {Field: "date", Operation: filters.OpLte, Transform: filters.ParseTime},
	"location":      {Field: "location", Operation: filters.OpContains, Insensitive: true},
	"averageRating": {Field: "averageRating", Operation: filters.OpGte, Transform: filters.ParseFloat},
	"categories":    {Field: "categories", Operation: filters.OpSome, Transform: filters.SplitList},
	"interprise":    {Field: "agency", Transform: filters.RelationOf("name")},
}

type AttractionServiceInterface interface {
	Create(ctx context.Context, actor Actor, agencyID uuid.UUID, request request_models.CreateAttractionRequest) (*response_models.AttractionResponse, error)
	FindAll(ctx context.Context, params map[string]string) ([]response_models.AttractionResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.AttractionResponse, error)
	FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]response_models.AttractionResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateAttractionRequest) (*response_models.AttractionResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type AttractionService struct {
	attractionRepo repositories.AttractionRepository
	agencyRepo     repositories.AgencyRepository
	categoryRepo   repositories.CategoryRepositoryInterface
	media          MediaServiceInterface
	logger         *zap.Logger
}

func NewAttractionService(
	attractionRepo repositories.AttractionRepository,
	agencyRepo repositories.AgencyRepository,
	categoryRepo repositories.CategoryRepositoryInterface,
	media MediaServiceInterface,
	logger *zap.Logger,
) AttractionServiceInterface {
	return &AttractionService{
		attractionRepo: attractionRepo,
		agencyRepo:     agencyRepo,
		categoryRepo:   categoryRepo,
		media:          media,
		logger:         logger,
	}
}

func (s *AttractionService) Create(ctx context.Context, actor Actor, agencyID uuid.UUID, request request_models.CreateAttractionRequest) (*response_models.AttractionResponse, error) {
	existing, err := s.attractionRepo.FindByLocation(ctx, request.Location)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAttractionAlreadyExists
	}

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

	categories, err := loadCategories(ctx, s.categoryRepo, request.Categories)
	if err != nil {
		return nil, err
	}

	attraction := &db_models.Attraction{
		Name:                 request.Name,
		Banner:               request.Banner,
		Date:                 request.Date,
		Location:             request.Location,
		FoundInAttraction:    request.FoundInAttraction,
		NotFoundInAttraction: request.NotFoundInAttraction,
		Description:          request.Description,
		Pricing:              request.Pricing,
		WhatToTake:           pq.StringArray(request.WhatToTake),
		GeneralMedias:        pq.StringArray(request.GeneralMedias),
		AverageRating:        utils.DefaultAverageRating,
		AgencyID:             agency.ID,
		Categories:           categories,
	}
	if err := s.attractionRepo.Create(ctx, attraction); err != nil {
		s.logger.Error("create attraction", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.NewAttractionResponse(*attraction)
	return &resp, nil
}

func (s *AttractionService) FindAll(ctx context.Context, params map[string]string) ([]response_models.AttractionResponse, error) {
	count, where, err := filters.Build(params, attractionQueryConfig)
	if err != nil {
		return nil, err
	}

	attractions, err := s.attractionRepo.FindAll(ctx, where)
	if err != nil {
		if errors.Is(err, filters.ErrInvalidFilter) {
			return nil, err
		}
		s.logger.Error("find attractions", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if len(attractions) == 0 && count > 0 {
		return nil, utils.ErrNoFilterMatches
	}

	return s.responses(ctx, attractions), nil
}

func (s *AttractionService) responses(ctx context.Context, attractions []db_models.Attraction) []response_models.AttractionResponse {
	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, s.response(ctx, a))
	}
	return out
}

// response replaces stored media references with signed URLs.
func (s *AttractionService) response(ctx context.Context, a db_models.Attraction) response_models.AttractionResponse {
	resp := response_models.NewAttractionResponse(a)
	resp.Banner = s.media.ResolveURL(ctx, a.Banner)
	resp.GeneralMedias = s.media.ResolveURLs(ctx, a.GeneralMedias)
	return resp
}

func (s *AttractionService) find(ctx context.Context, id uuid.UUID) (*db_models.Attraction, error) {
	attraction, err := s.attractionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}
	return attraction, nil
}

func (s *AttractionService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.AttractionResponse, error) {
	attraction, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.response(ctx, *attraction)
	return &resp, nil
}

func (s *AttractionService) FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]response_models.AttractionResponse, error) {
	agency, err := s.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if agency == nil {
		return nil, utils.ErrAgencyNotFound
	}

	attractions, err := s.attractionRepo.FindByAgency(ctx, agencyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.responses(ctx, attractions), nil
}

func (s *AttractionService) owned(ctx context.Context, actor Actor, id uuid.UUID) (*db_models.Attraction, error) {
	attraction, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return attraction, nil
	}
	if attraction.Agency == nil || !actor.Owns(attraction.Agency.UserID) {
		return nil, utils.ErrForbidden
	}
	return attraction, nil
}

func (s *AttractionService) Update(ctx context.Context, actor Actor, id uuid.UUID, request request_models.UpdateAttractionRequest) (*response_models.AttractionResponse, error) {
	attraction, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if request.Location != nil && *request.Location != attraction.Location {
		other, err := s.attractionRepo.FindByLocation(ctx, *request.Location)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil && other.ID != attraction.ID {
			return nil, utils.ErrAttractionAlreadyExists
		}
		attraction.Location = *request.Location
	}

	var categories []db_models.Category
	if request.Categories != nil {
		if categories, err = loadCategories(ctx, s.categoryRepo, request.Categories); err != nil {
			return nil, err
		}
	}

	if request.Name != nil {
		attraction.Name = *request.Name
	}
	if request.Banner != nil {
		attraction.Banner = *request.Banner
	}
	if request.Date != nil {
		attraction.Date = *request.Date
	}
	if request.FoundInAttraction != nil {
		attraction.FoundInAttraction = *request.FoundInAttraction
	}
	if request.NotFoundInAttraction != nil {
		attraction.NotFoundInAttraction = *request.NotFoundInAttraction
	}
	if request.Description != nil {
		attraction.Description = *request.Description
	}
	if request.Pricing != nil {
		attraction.Pricing = *request.Pricing
	}
	if request.WhatToTake != nil {
		attraction.WhatToTake = pq.StringArray(request.WhatToTake)
	}
	if request.GeneralMedias != nil {
		attraction.GeneralMedias = pq.StringArray(request.GeneralMedias)
	}

	if err := s.attractionRepo.Update(ctx, attraction, categories); err != nil {
		s.logger.Error("update attraction", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := s.response(ctx, *attraction)
	return &resp, nil
}

// Delete removes the attraction and then its media. Storage failures are
// only logged.
func (s *AttractionService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	attraction, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.attractionRepo.Delete(ctx, attraction.ID); err != nil {
		s.logger.Error("delete attraction", zap.Error(err))
		return utils.ErrDatabaseError
	}

	refs := append([]string{attraction.Banner}, attraction.GeneralMedias...)
	s.media.RemoveRefs(ctx, refs...)
	return nil
}
