package contract_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelling/cmd/fx/rating_fx"
	"travelling/internal/repositories"
	"travelling/internal/services"
)

var Module = fx.Provide(
	provideContractRepo,
	provideContractService,
)

func provideContractRepo(db *gorm.DB) repositories.ContractRepository {
	return repositories.NewContractRepository(db)
}

func provideContractService(
	contractRepo repositories.ContractRepository,
	attractionRepo repositories.AttractionRepository,
	agencyRepo repositories.AgencyRepository,
	touristRepo repositories.TouristRepository,
	ratings rating_fx.AttractionRatings,
	logger *zap.Logger,
) services.ContractServiceInterface {
	return services.NewContractService(contractRepo, attractionRepo, agencyRepo, touristRepo, ratings.RatingRepository, logger)
}
