package repositories

import (
	"context"

	"gorm.io/gorm"
	"tripplanner/internal/models/db_models"
)

type CatalogRepositoryInterface interface {
	// ListCities returns every city with its places, places in catalog order.
	ListCities(ctx context.Context) ([]db_models.City, error)
	// ReplaceAll deletes the stored catalog and inserts cities in one transaction.
	ReplaceAll(ctx context.Context, cities []db_models.City) error
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &CatalogRepository{db: db}
}

type CatalogRepository struct {
	db *gorm.DB
}

func (r *CatalogRepository) ListCities(ctx context.Context) ([]db_models.City, error) {
	var cities []db_models.City
	err := r.db.WithContext(ctx).
		Preload("Places", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("name ASC").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CatalogRepository) ReplaceAll(ctx context.Context, cities []db_models.City) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM places").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM cities").Error; err != nil {
			return err
		}
		if len(cities) == 0 {
			return nil
		}
		return tx.Create(&cities).Error
	})
}
