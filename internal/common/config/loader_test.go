package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
catalog:
  path: testdata/places.json
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 3, cfg.Planner.MinPlacesPerDay)
	assert.Equal(t, 3, cfg.Planner.MaxPlacesPerDay)
	assert.InDelta(t, 0.01, cfg.Planner.AtBudgetTolerance, 1e-12)
	assert.Equal(t, 60, cfg.Auth.TokenTTL)
}

func TestLoadFromFile_EnvOverridesAndExpansion(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("CACHE_BACKEND", "none")
	t.Setenv("TRIP_DB_URL", "postgres://u:p@db:5432/trips")

	path := writeConfig(t, `
server:
  port: 8080
catalog:
  source: db
cache:
  backend: memory
database:
  postgres:
    url: ${TRIP_DB_URL}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, CacheBackendNone, cfg.Cache.Backend)
	assert.Equal(t, "postgres://u:p@db:5432/trips", cfg.Database.Postgres.GetDSN())
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown catalog source",
			body: "catalog:\n  source: s3\n",
			want: "catalog.source",
		},
		{
			name: "db source without postgres",
			body: "catalog:\n  source: db\n",
			want: "database.postgres",
		},
		{
			name: "redis cache without address",
			body: "cache:\n  backend: redis\n",
			want: "database.redis.address",
		},
		{
			name: "max below min",
			body: "planner:\n  min_places_per_day: 4\n  max_places_per_day: 2\n",
			want: "max places per day",
		},
		{
			name: "admin password without secret",
			body: "auth:\n  admin_password_hash: bcrypt-hash-placeholder\n",
			want: "auth.jwt_secret",
		},
	}

	t.Setenv("JWT_SECRET", "")
	t.Setenv("POSTGRES_URL", "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPostgresConfig_GetDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "trips", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=trips sslmode=disable", p.GetDSN())
}
