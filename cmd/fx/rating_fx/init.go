package rating_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelling/internal/models/db_models"
	"travelling/internal/repositories"
	"travelling/internal/services"
)

// AttractionRatings and EstablishmentRatings tell the two rating
// repositories apart in the container.
type AttractionRatings struct{ repositories.RatingRepository }

type EstablishmentRatings struct{ repositories.RatingRepository }

var Module = fx.Provide(
	provideAttractionRatings,
	provideEstablishmentRatings,
	provideAttractionRatingService,
	provideEstablishmentRatingService,
)

func provideAttractionRatings(db *gorm.DB) (AttractionRatings, error) {
	repo, err := repositories.NewRatingRepository(db, db_models.RatingTargetAttraction)
	return AttractionRatings{repo}, err
}

func provideEstablishmentRatings(db *gorm.DB) (EstablishmentRatings, error) {
	repo, err := repositories.NewRatingRepository(db, db_models.RatingTargetEstablishment)
	return EstablishmentRatings{repo}, err
}

func provideAttractionRatingService(ratings AttractionRatings, touristRepo repositories.TouristRepository, logger *zap.Logger) *services.AttractionRatingService {
	return services.NewAttractionRatingService(ratings.RatingRepository, touristRepo, logger)
}

func provideEstablishmentRatingService(ratings EstablishmentRatings, touristRepo repositories.TouristRepository, logger *zap.Logger) *services.EstablishmentRatingService {
	return services.NewEstablishmentRatingService(ratings.RatingRepository, touristRepo, logger)
}
