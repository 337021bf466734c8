package travelling_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelling/internal/repositories"
	"travelling/internal/services"
)

var Module = fx.Provide(
	provideTravellingRepo,
	services.NewTravellingService,
)

func provideTravellingRepo(db *gorm.DB) repositories.TravellingRepository {
	return repositories.NewTravellingRepository(db)
}
