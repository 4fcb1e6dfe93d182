package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"tripplanner/cmd/fx/auth_fx"
	"tripplanner/cmd/fx/cache_fx"
	"tripplanner/cmd/fx/catalog_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/tagsfx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	zl, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}

	app := fx.New(
		fx.Supply(cfg, zl),
		fx.WithLogger(func() fxevent.Logger { return &fxevent.ZapLogger{Logger: zl} }),
		config_fx.Module,
		catalogSource(cfg),
		catalog_fx.Module,
		memcache_fx.Module,
		cache_fx.Module,
		itinerary_fx.Module,
		tagsfx.Module,
		auth_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func catalogSource(cfg *config.Config) fx.Option {
	if cfg.Catalog.Source == config.CatalogSourceDB {
		return fx.Options(db_fx.Module, catalog_fx.DBSourceModule)
	}
	return catalog_fx.FileSourceModule
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log logger.Logger) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting http server", map[string]interface{}{"addr": srv.Addr})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.WithError(err).Error("http server stopped", nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping http server", nil)
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config      *config.Config
	Log         logger.Logger
	Issuer      *utils.TokenIssuer
	Itineraries *controllers.ItineraryController
	Cities      *controllers.CitiesController
	Tags        *controllers.TagController
	Catalog     *controllers.CatalogController
	Auth        *controllers.AuthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(p.Config.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(middleware.CORSMiddleware(p.Config.Server.AllowedOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	api.POST("/itineraries", p.Itineraries.GenerateItinerary)

	cities := api.Group("/cities")
	cities.GET("", p.Cities.ListCities)
	cities.GET("/:city/places", p.Cities.GetCityPlaces)

	api.GET("/tags", p.Tags.ListAllTagsHandler)

	api.POST("/auth/token", p.Auth.IssueToken)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(p.Issuer), middleware.RoleMiddleware(utils.RoleAdmin))
	admin.POST("/catalog/reload", p.Catalog.Reload)
}
