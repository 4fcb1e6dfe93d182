package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"
)

func newAuthService(t *testing.T, password string) (AuthServiceInterface, *utils.TokenIssuer) {
	t.Helper()
	cfg := config.AuthConfig{JWTSecret: "test-secret", AdminUser: "admin"}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.AdminPasswordHash = string(hash)
	}
	issuer := utils.NewTokenIssuer(cfg.JWTSecret, 15*time.Minute)
	return NewAuthService(cfg, issuer, logger.NewTestLogger(t)), issuer
}

func TestAuthService_IssueToken(t *testing.T) {
	svc, issuer := newAuthService(t, "s3cret")

	resp, err := svc.IssueToken(context.Background(), request_models.TokenRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 900, resp.ExpiresIn)

	claims, err := issuer.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.UserID)
}

func TestAuthService_RejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t, "s3cret")

	for _, req := range []request_models.TokenRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "s3cret"},
	} {
		_, err := svc.IssueToken(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrUnauthorized)
	}
}

func TestAuthService_DisabledWithoutHash(t *testing.T) {
	svc, _ := newAuthService(t, "")

	_, err := svc.IssueToken(context.Background(), request_models.TokenRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, utils.ErrAuthDisabled)
}
