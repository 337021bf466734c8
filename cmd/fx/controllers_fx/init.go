package controllers_fx

import (
	"go.uber.org/fx"

	"travelling/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewAgencyController),
	fx.Provide(controllers.NewBusinessController),
	fx.Provide(controllers.NewTouristController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewAttractionController),
	fx.Provide(controllers.NewEstablishmentController),
	fx.Provide(controllers.NewAttractionRatingController),
	fx.Provide(controllers.NewEstablishmentRatingController),
	fx.Provide(controllers.NewContractController),
	fx.Provide(controllers.NewTravellingController),
	fx.Provide(controllers.NewMediaController))
