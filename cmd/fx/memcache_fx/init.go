package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	mem "tripplanner/pkg/memcache"
)

const sweepInterval = time.Minute

var Module = fx.Provide(provideTTLStore)

// provideTTLStore returns the in-process store and runs its expiry sweep
// for the lifetime of the app.
func provideTTLStore(lc fx.Lifecycle) *mem.TTLStore {
	store := mem.NewTTLStore()
	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						store.Sweep()
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
	return store
}
