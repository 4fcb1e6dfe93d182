package services

import (
	"context"
	"errors"
	"fmt"

	"tripplanner/internal/catalog"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// CatalogStore is the part of catalog.Store the services use.
type CatalogStore interface {
	CatalogProvider
	Reload(ctx context.Context) (*catalog.Catalog, error)
	SourceName() string
}

type CatalogServiceInterface interface {
	ListCities(ctx context.Context) ([]response_models.CityResponse, error)
	CityPlaces(ctx context.Context, city string) (*response_models.CityPlacesResponse, error)
	Reload(ctx context.Context) (*response_models.CatalogReloadResponse, error)
}

type CatalogService struct {
	store CatalogStore
	log   logger.Logger
}

func NewCatalogService(store CatalogStore, log logger.Logger) CatalogServiceInterface {
	return &CatalogService{store: store, log: log}
}

func (s *CatalogService) current() (*catalog.Catalog, error) {
	c, err := s.store.Current()
	if err != nil {
		return nil, wrapUnavailable(err)
	}
	return c, nil
}

func wrapUnavailable(err error) error {
	return utils.Wrap(utils.ErrCatalogUnavailable, err)
}

func (s *CatalogService) ListCities(ctx context.Context) ([]response_models.CityResponse, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	cities := c.Cities()
	out := make([]response_models.CityResponse, 0, len(cities))
	for _, city := range cities {
		out = append(out, cityResponse(city))
	}
	return out, nil
}

func (s *CatalogService) CityPlaces(ctx context.Context, name string) (*response_models.CityPlacesResponse, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	city, ok := c.City(name)
	if !ok {
		return nil, utils.Wrap(utils.ErrCityNotFound, fmt.Errorf("no data for city %q", name))
	}

	places := make([]response_models.PlaceResponse, 0, len(city.Places))
	for _, p := range city.Places {
		places = append(places, PresentPlace(p, city.Name))
	}
	return &response_models.CityPlacesResponse{
		City:   cityResponse(city),
		Places: places,
	}, nil
}

// Reload replaces the active catalog from the configured source. A failed
// reload leaves the previous catalog serving.
func (s *CatalogService) Reload(ctx context.Context) (*response_models.CatalogReloadResponse, error) {
	c, err := s.store.Reload(ctx)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidCatalog):
			return nil, utils.Wrap(utils.ErrInvalidRequest, err)
		case errors.Is(err, utils.ErrDatabaseError):
			return nil, err
		}
		return nil, utils.Wrap(utils.ErrCatalogUnavailable, err)
	}
	return &response_models.CatalogReloadResponse{
		Source:  s.store.SourceName(),
		Version: c.Version(),
		Cities:  len(c.Cities()),
		Places:  c.PlaceCount(),
	}, nil
}

func cityResponse(city catalog.City) response_models.CityResponse {
	return response_models.CityResponse{
		Name:             city.Name,
		DefaultFocus:     city.DefaultFocus,
		AverageDailyCost: city.AverageDailyCost,
		PlaceCount:       len(city.Places),
		LocalTips:        city.LocalTips,
	}
}
