package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelling/internal/infra"
	"travelling/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(infra.LoadConfig, infra.NewLogger),
	fx.Invoke(configureGlobals),
)

func configureGlobals(cfg *infra.Config, logger *zap.Logger) {
	zap.ReplaceGlobals(logger)
	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTTTL)
}
