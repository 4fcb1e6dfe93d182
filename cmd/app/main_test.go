package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/cache"
	"tripplanner/internal/catalog"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/planner"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	log := logger.NewTestLogger(t)

	store := catalog.NewStore(catalog.NewFileSource("../../data/places_data.json"), log)
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	hash, err := utils.HashPassword("letmein")
	require.NoError(t, err)
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Auth: config.AuthConfig{
			JWTSecret:         "router-test",
			AdminUser:         "admin",
			AdminPasswordHash: hash,
		},
	}
	issuer := utils.NewTokenIssuer(cfg.Auth.JWTSecret, time.Minute)
	catalogService := services.NewCatalogService(store, log)

	return ProvideRouter(RouterParams{
		Config:      cfg,
		Log:         log,
		Issuer:      issuer,
		Itineraries: controllers.NewItineraryController(services.NewItineraryService(store, cache.NewMemory(mem.NewTTLStore(), time.Minute), planner.DefaultPolicy(), log), log),
		Cities:      controllers.NewCitiesController(catalogService, log),
		Tags:        controllers.NewTagController(services.NewTagService(store), log),
		Catalog:     controllers.NewCatalogController(catalogService, log),
		Auth:        controllers.NewAuthController(services.NewAuthService(cfg.Auth, issuer, log), log),
	})
}

func do(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r := testRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/metrics", "", nil).Code)
}

func TestRouter_Itinerary(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodPost, "/api/v1/itineraries", "", map[string]interface{}{
		"city": "goa", "days": 2, "budget": 3000, "travel_type": "solo",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	var env struct {
		TraceID string                 `json:"trace_id"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, w.Header().Get("X-Trace-ID"), env.TraceID)
	assert.Equal(t, "Goa", env.Data["city"])
	assert.Len(t, env.Data["day_plans"], 2)

	w = do(r, http.MethodPost, "/api/v1/itineraries", "", map[string]interface{}{
		"city": "Atlantis", "days": 2, "budget": 3000, "travel_type": "solo",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Catalog(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodGet, "/api/v1/cities", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Manali")

	w = do(r, http.MethodGet, "/api/v1/cities/jaipur/places", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Amber Fort")

	w = do(r, http.MethodGet, "/api/v1/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "adventure")
}

func TestRouter_AdminReload(t *testing.T) {
	r := testRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/v1/admin/catalog/reload", "", nil).Code)

	w := do(r, http.MethodPost, "/api/v1/auth/token", "", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/token", "", map[string]string{"username": "admin", "password": "letmein"})
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	w = do(r, http.MethodPost, "/api/v1/admin/catalog/reload", env.Data.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"source":"file"`)
}
