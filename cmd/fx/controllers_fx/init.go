package controllers_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewCitiesController),
	fx.Provide(controllers.NewTagController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewAuthController))
