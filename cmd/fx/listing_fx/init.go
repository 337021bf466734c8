package listing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelling/internal/repositories"
	"travelling/internal/services"
)

// Module wires attractions and establishments together with the local
// lookup travellings use to point at either of them.
var Module = fx.Provide(
	provideAttractionRepo,
	provideEstablishmentRepo,
	provideLocalRepo,
	services.NewAttractionService,
	services.NewEstablishmentService,
)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideEstablishmentRepo(db *gorm.DB) repositories.EstablishmentRepository {
	return repositories.NewEstablishmentRepository(db)
}

func provideLocalRepo(db *gorm.DB) repositories.LocalRepository {
	return repositories.NewLocalRepository(db)
}
