package services

import (
	"context"
	"crypto/subtle"

	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

type AuthServiceInterface interface {
	IssueToken(ctx context.Context, req request_models.TokenRequest) (*response_models.TokenResponse, error)
}

// AuthService issues admin tokens against the single operator account
// from configuration.
type AuthService struct {
	issuer       *utils.TokenIssuer
	adminUser    string
	passwordHash string
	log          logger.Logger
}

func NewAuthService(cfg config.AuthConfig, issuer *utils.TokenIssuer, log logger.Logger) AuthServiceInterface {
	return &AuthService{
		issuer:       issuer,
		adminUser:    cfg.AdminUser,
		passwordHash: cfg.AdminPasswordHash,
		log:          log,
	}
}

func (a *AuthService) IssueToken(ctx context.Context, req request_models.TokenRequest) (*response_models.TokenResponse, error) {
	if a.passwordHash == "" {
		return nil, utils.ErrAuthDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.adminUser)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passErr := utils.ComparePasswords(a.passwordHash, req.Password)
	if !userOK || passErr != nil {
		a.log.Warn("rejected token request", map[string]interface{}{"username": req.Username})
		return nil, utils.ErrUnauthorized
	}

	token, err := a.issuer.CreateToken(a.adminUser, utils.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &response_models.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(a.issuer.TTL().Seconds()),
	}, nil
}
