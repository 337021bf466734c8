package media_fx

import (
	"go.uber.org/fx"

	"travelling/internal/services"
)

var Module = fx.Provide(services.NewMediaService)
