package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelling/internal/repositories"
	"travelling/internal/services"
)

// Module wires users and their role profiles: admin accounts, agencies,
// businesses and tourists.
var Module = fx.Provide(
	provideUserRepo,
	provideAgencyRepo,
	provideBusinessRepo,
	provideTouristRepo,
	provideAccountService,
	provideAgencyService,
	provideBusinessService,
	provideTouristService,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAgencyRepo(db *gorm.DB) repositories.AgencyRepository {
	return repositories.NewAgencyRepository(db)
}

func provideBusinessRepo(db *gorm.DB) repositories.BusinessRepository {
	return repositories.NewBusinessRepository(db)
}

func provideTouristRepo(db *gorm.DB) repositories.TouristRepository {
	return repositories.NewTouristRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, logger)
}

func provideAgencyService(agencyRepo repositories.AgencyRepository, userRepo repositories.UserRepository) services.AgencyServiceInterface {
	return services.NewAgencyService(agencyRepo, userRepo)
}

func provideBusinessService(businessRepo repositories.BusinessRepository, userRepo repositories.UserRepository) services.BusinessServiceInterface {
	return services.NewBusinessService(businessRepo, userRepo)
}

func provideTouristService(
	touristRepo repositories.TouristRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepositoryInterface,
) services.TouristServiceInterface {
	return services.NewTouristService(touristRepo, userRepo, categoryRepo)
}
