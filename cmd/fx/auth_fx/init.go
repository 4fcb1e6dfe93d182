package auth_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideAuthService)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDuration())
}

func provideAuthService(cfg *config.Config, issuer *utils.TokenIssuer, log logger.Logger) services.AuthServiceInterface {
	return services.NewAuthService(cfg.Auth, issuer, log)
}
