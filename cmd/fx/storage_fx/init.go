package storage_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"travelling/internal/infra"
)

var Module = fx.Provide(provideObjectStorage)

func provideObjectStorage(lc fx.Lifecycle, cfg *infra.Config, logger *zap.Logger) (infra.ObjectStorage, error) {
	storage, err := infra.NewObjectStorage(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	if closer, ok := storage.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return storage, nil
}
