package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"tripplanner/internal/catalog"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

// Module needs exactly one of FileSourceModule or DBSourceModule.
var Module = fx.Options(
	fx.Provide(provideStore, provideCatalogProvider, provideCatalogService),
	fx.Invoke(loadOnStart),
)

var FileSourceModule = fx.Provide(provideFileSource)

var DBSourceModule = fx.Provide(provideDBSource)

func provideFileSource(cfg *config.Config) catalog.Source {
	return catalog.NewFileSource(cfg.Catalog.Path)
}

func provideDBSource(repo repositories.CatalogRepositoryInterface) catalog.Source {
	return catalog.NewDBSource(repo)
}

func provideStore(source catalog.Source, log logger.Logger) *catalog.Store {
	return catalog.NewStore(source, log)
}

func provideCatalogProvider(store *catalog.Store) services.CatalogProvider {
	return store
}

func provideCatalogService(store *catalog.Store, log logger.Logger) services.CatalogServiceInterface {
	return services.NewCatalogService(store, log)
}

// loadOnStart refuses to start without a catalog.
func loadOnStart(lc fx.Lifecycle, store *catalog.Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := store.Reload(ctx)
			return err
		},
	})
}
