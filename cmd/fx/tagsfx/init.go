package tagsfx

import (
	"go.uber.org/fx"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideTagsService)

func provideTagsService(catalogs services.CatalogProvider) services.TagServiceInterface {
	return services.NewTagService(catalogs)
}
