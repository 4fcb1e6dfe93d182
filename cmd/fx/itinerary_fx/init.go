package itinerary_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/cache"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(cfg *config.Config, catalogs services.CatalogProvider, c cache.Cache, log logger.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(catalogs, c, cfg.Planner.Policy(), log)
}
