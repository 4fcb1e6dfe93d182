package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/infra"
	"tripplanner/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideCatalogRepo)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.Database.Postgres, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.PingPostgresql(ctx, db); err != nil {
				return err
			}
			return infra.MigrateCatalog(ctx, db)
		},
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepositoryInterface {
	return repositories.NewCatalogRepository(db)
}
