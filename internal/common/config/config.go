package config

import (
	"fmt"
	"time"

	"tripplanner/internal/planner"
)

// Config is the full service configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`          // gin mode: debug, release, test
	ReadTimeout    int      `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // milliseconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	CatalogSourceFile = "file"
	CatalogSourceDB   = "db"
)

type CatalogConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	URL            string `mapstructure:"url"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns URL when set, otherwise a key/value DSN built from the parts.
func (p PostgresConfig) GetDSN() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
	CacheBackendNone   = "none"
)

type CacheConfig struct {
	Backend string `mapstructure:"backend"`
	TTL     int    `mapstructure:"ttl"` // seconds
	Prefix  string `mapstructure:"prefix"`
}

type PlannerConfig struct {
	MinPlacesPerDay   int     `mapstructure:"min_places_per_day"`
	MaxPlacesPerDay   int     `mapstructure:"max_places_per_day"`
	AtBudgetTolerance float64 `mapstructure:"at_budget_tolerance"`
}

func (p PlannerConfig) Policy() planner.Policy {
	return planner.Policy{
		MinPlacesPerDay:   p.MinPlacesPerDay,
		MaxPlacesPerDay:   p.MaxPlacesPerDay,
		AtBudgetTolerance: p.AtBudgetTolerance,
	}
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	TokenTTL  int    `mapstructure:"token_ttl"` // minutes
	AdminUser string `mapstructure:"admin_user"`
	// AdminPasswordHash is a bcrypt hash. Empty disables the token endpoint.
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

func (a AuthConfig) TokenTTLDuration() time.Duration {
	return time.Duration(a.TokenTTL) * time.Minute
}
