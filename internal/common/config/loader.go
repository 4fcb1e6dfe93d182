package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tripplanner/internal/planner"
)

// Load reads configs/config.yaml, merges configs/config.<APP_ENVIRONMENT>.yaml
// over it, applies environment overrides (server.port <- SERVER_PORT) and
// ${VAR} placeholders, fills defaults and validates the result.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName("config." + env)
	_ = v.MergeInConfig() // overlay is optional

	return finish(v)
}

// LoadFromFile loads configuration from a single file, without overlays.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	paths := []string{".env", "../.env", "../../.env"}
	if root := findProjectRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok || !strings.Contains(strVal, "$") {
			continue
		}
		if expanded := os.ExpandEnv(strVal); expanded != strVal {
			v.Set(key, expanded)
		}
	}
}

// overrideEmptyConfig honours the short variable names used by container
// platforms when the config file leaves the value empty.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Database.Postgres.URL == "" {
		if val := os.Getenv("POSTGRES_URL"); val != "" {
			cfg.Database.Postgres.URL = val
		}
	}
	if val := os.Getenv("PORT"); val != "" && os.Getenv("SERVER_PORT") == "" {
		var port int
		if _, err := fmt.Sscanf(val, "%d", &port); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "tripplanner"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10000
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSourceFile
	}
	if cfg.Catalog.Source == CatalogSourceFile && cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "data/places_data.json"
	}

	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheBackendMemory
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 600
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = "itinerary:"
	}

	defaults := planner.DefaultPolicy()
	if cfg.Planner.MinPlacesPerDay == 0 {
		cfg.Planner.MinPlacesPerDay = defaults.MinPlacesPerDay
	}
	if cfg.Planner.MaxPlacesPerDay == 0 {
		cfg.Planner.MaxPlacesPerDay = defaults.MaxPlacesPerDay
	}
	if cfg.Planner.AtBudgetTolerance == 0 {
		cfg.Planner.AtBudgetTolerance = defaults.AtBudgetTolerance
	}

	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 60
	}
	if cfg.Auth.AdminUser == "" {
		cfg.Auth.AdminUser = "admin"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}

	switch cfg.Catalog.Source {
	case CatalogSourceFile:
		if cfg.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for the file source")
		}
	case CatalogSourceDB:
		if cfg.Database.Postgres.URL == "" && cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.url or host is required for the db source")
		}
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q", CatalogSourceFile, CatalogSourceDB, cfg.Catalog.Source)
	}

	switch cfg.Cache.Backend {
	case CacheBackendRedis:
		if cfg.Database.Redis.Address == "" {
			return fmt.Errorf("database.redis.address is required for the redis cache")
		}
	case CacheBackendMemory, CacheBackendNone:
	default:
		return fmt.Errorf("cache.backend must be redis, memory or none, got %q", cfg.Cache.Backend)
	}

	if err := cfg.Planner.Policy().Validate(); err != nil {
		return err
	}

	if cfg.Auth.AdminPasswordHash != "" && cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required when an admin password is configured")
	}
	return nil
}
