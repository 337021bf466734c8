package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	mem "travelling/pkg/memcache"
)

const janitorInterval = 10 * time.Minute

var Module = fx.Options(
	fx.Provide(
		mem.NewSignedURLs,
		func(s *mem.SignedURLs) mem.SignedURLStore { return s },
	),
	fx.Invoke(registerJanitor),
)

// registerJanitor keeps expired signed URLs from piling up while the app runs.
func registerJanitor(lc fx.Lifecycle, store *mem.SignedURLs) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				store.RunJanitor(ctx, janitorInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
