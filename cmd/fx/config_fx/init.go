package config_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
)

// Module expects *config.Config and *zap.Logger to be supplied by the caller.
var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *config.Config, zl *zap.Logger) logger.Logger {
	log := logger.NewZapAdapter(zl).WithFields(map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
	})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log
}
