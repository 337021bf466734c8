package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
)

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *db_models.Category) error
	FindAll(ctx context.Context) ([]db_models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	FindByTitle(ctx context.Context, title string) (*db_models.Category, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Category, error)
	Update(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

type CategoryRepository struct {
	db *gorm.DB
}

func (c *CategoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *CategoryRepository) FindAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := c.db.WithContext(ctx).Order("title").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	return c.first(ctx, "id = ?", id)
}

func (c *CategoryRepository) FindByTitle(ctx context.Context, title string) (*db_models.Category, error) {
	return c.first(ctx, "title = ?", title)
}

func (c *CategoryRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).Where(query, args...).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c *CategoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Category, error) {
	if len(ids) == 0 {
		return []db_models.Category{}, nil
	}
	var categories []db_models.Category
	if err := c.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CategoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	return c.db.WithContext(ctx).Model(category).Update("title", category.Title).Error
}

// Delete drops the category and its links to tourists, attractions and
// establishments.
func (c *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"attraction_categories", "establishment_categories", "tourist_favorite_categories"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE category_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&db_models.Category{}, "id = ?", id).Error
	})
}
