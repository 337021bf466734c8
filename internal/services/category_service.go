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

type CategoryServiceInterface interface {
	Create(ctx context.Context, request request_models.CategoryRequest) (*response_models.CategoryResponse, error)
	FindAll(ctx context.Context) ([]response_models.CategoryResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*response_models.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, request request_models.CategoryRequest) (*response_models.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func categoryResponse(c db_models.Category) *response_models.CategoryResponse {
	return &response_models.CategoryResponse{ID: c.ID.String(), Title: c.Title}
}

func (s *CategoryService) Create(ctx context.Context, request request_models.CategoryRequest) (*response_models.CategoryResponse, error) {
	existing, err := s.categoryRepo.FindByTitle(ctx, request.Title)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCategoryAlreadyExists
	}

	category := &db_models.Category{Title: request.Title}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateCreateError(err, utils.ErrCategoryAlreadyExists)
	}
	return categoryResponse(*category), nil
}

func (s *CategoryService) FindAll(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewCategoryResponses(categories), nil
}

func (s *CategoryService) find(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) FindByID(ctx context.Context, id uuid.UUID) (*response_models.CategoryResponse, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return categoryResponse(*category), nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, request request_models.CategoryRequest) (*response_models.CategoryResponse, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Title != category.Title {
		other, err := s.categoryRepo.FindByTitle(ctx, request.Title)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil {
			return nil, utils.ErrCategoryAlreadyExists
		}
	}

	category.Title = request.Title
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, translateCreateError(err, utils.ErrCategoryAlreadyExists)
	}
	return categoryResponse(*category), nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
