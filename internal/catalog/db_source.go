package catalog

import (
	"context"
	"fmt"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// DBSource reads the catalog from Postgres.
type DBSource struct {
	repo repositories.CatalogRepositoryInterface
}

func NewDBSource(repo repositories.CatalogRepositoryInterface) *DBSource {
	return &DBSource{repo: repo}
}

func (s *DBSource) Name() string {
	return "db"
}

func (s *DBSource) Load(ctx context.Context) (*Catalog, error) {
	rows, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, utils.Wrap(utils.ErrDatabaseError, fmt.Errorf("list cities: %w", err))
	}

	cities := make([]City, 0, len(rows))
	for _, row := range rows {
		city := City{
			Name:             row.Name,
			DefaultFocus:     row.DefaultFocus,
			AverageDailyCost: row.AverageDailyCost,
			GeneralTips:      []string(row.GeneralTips),
			LocalTips:        []string(row.LocalTips),
			Places:           make([]planner.Place, 0, len(row.Places)),
		}
		for _, p := range row.Places {
			city.Places = append(city.Places, planner.Place{
				Name:          p.Name,
				Categories:    parseCategories(p.Categories),
				BestFor:       parseTravelTypes(p.BestFor),
				ApproxCost:    p.ApproxCost,
				DurationHours: p.DurationHours,
				Why:           p.Why,
				StudentTip:    p.StudentTip,
				MapLink:       p.MapLink,
			})
		}
		cities = append(cities, city)
	}
	return NewCatalog(cities)
}

// Seed replaces the stored catalog with c.
func Seed(ctx context.Context, repo repositories.CatalogRepositoryInterface, c *Catalog) error {
	rows := make([]db_models.City, 0, len(c.Cities()))
	for _, city := range c.Cities() {
		row := db_models.City{
			Name:             city.Name,
			DefaultFocus:     city.DefaultFocus,
			AverageDailyCost: city.AverageDailyCost,
			GeneralTips:      city.GeneralTips,
			LocalTips:        city.LocalTips,
			Places:           make([]db_models.Place, 0, len(city.Places)),
		}
		for i, p := range city.Places {
			place := db_models.Place{
				Position:      i,
				Name:          p.Name,
				ApproxCost:    p.ApproxCost,
				DurationHours: p.DurationHours,
				Why:           p.Why,
				StudentTip:    p.StudentTip,
				MapLink:       p.MapLink,
			}
			for _, cat := range p.Categories {
				place.Categories = append(place.Categories, string(cat))
			}
			for _, t := range p.BestFor {
				place.BestFor = append(place.BestFor, string(t))
			}
			row.Places = append(row.Places, place)
		}
		rows = append(rows, row)
	}

	if err := repo.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
