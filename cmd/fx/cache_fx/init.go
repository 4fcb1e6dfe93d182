package cache_fx

import (
	"context"

	"go.uber.org/fx"
	"tripplanner/internal/cache"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/infra"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideCache)

func provideCache(lc fx.Lifecycle, cfg *config.Config, store *mem.TTLStore, log logger.Logger) cache.Cache {
	ttl := cfg.Cache.TTLDuration()

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		client := infra.NewRedis(cfg.Database.Redis)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// an unreachable redis only costs cache misses
				if err := infra.PingRedis(ctx, client); err != nil {
					log.WithError(err).Warn("itinerary cache unreachable", map[string]interface{}{
						"address": cfg.Database.Redis.Address,
					})
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return cache.NewRedis(client, cfg.Cache.Prefix, ttl)
	case config.CacheBackendNone:
		return cache.NewNoop()
	default:
		return cache.NewMemory(store, ttl)
	}
}
