package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelling/internal/repositories"
	"travelling/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo,
	services.NewCategoryService,
)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepositoryInterface {
	return repositories.NewCategoryRepository(db)
}
