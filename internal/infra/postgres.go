package infra

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"tripplanner/internal/common/config"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/models/db_models"
)

// InitPostgresql opens the catalog database and applies pool settings.
func InitPostgresql(cfg config.PostgresConfig, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	log.Info("postgres connected", map[string]interface{}{
		"host":            cfg.Host,
		"max_connections": cfg.MaxConnections,
	})
	return db, nil
}

// MigrateCatalog creates or updates the catalog tables.
func MigrateCatalog(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&db_models.City{}, &db_models.Place{}); err != nil {
		return fmt.Errorf("migrate catalog tables: %w", err)
	}
	return nil
}

func PingPostgresql(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func ClosePostgresql(db *gorm.DB, log logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("get database instance", nil)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("close postgres connection", nil)
	} else {
		log.Info("postgres connection closed", nil)
	}
}
