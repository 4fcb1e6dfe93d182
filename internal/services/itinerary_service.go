package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"tripplanner/internal/cache"
	"tripplanner/internal/catalog"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/common/metrics"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/pkg/utils"
)

// CatalogProvider hands out the active catalog.
type CatalogProvider interface {
	Current() (*catalog.Catalog, error)
}

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, in request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	catalogs CatalogProvider
	cache    cache.Cache
	policy   planner.Policy
	log      logger.Logger
}

func NewItineraryService(catalogs CatalogProvider, c cache.Cache, policy planner.Policy, log logger.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		catalogs: catalogs,
		cache:    c,
		policy:   policy,
		log:      log,
	}
}

func (s *ItineraryService) Generate(ctx context.Context, in request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	ctx, span := otel.Tracer("services").Start(ctx, "ItineraryService.Generate")
	defer span.End()

	start := time.Now()
	cacheResult := metrics.CacheResultMiss
	defer func() {
		metrics.ItineraryDuration.WithLabelValues(cacheResult).Observe(time.Since(start).Seconds())
	}()

	req, err := planner.NormalizeRequest(in.City, in.Days, in.BudgetValue(), in.Interests, in.TravelType)
	if err != nil {
		metrics.ItinerariesGenerated.WithLabelValues(metrics.OutcomeInvalid).Inc()
		span.SetStatus(codes.Error, "invalid request")
		return nil, utils.Wrap(utils.ErrInvalidRequest, err)
	}
	span.SetAttributes(
		attribute.String("trip.city", req.City),
		attribute.Int("trip.days", req.Days),
		attribute.String("trip.travel_type", string(req.TravelType)),
	)

	current, err := s.catalogs.Current()
	if err != nil {
		metrics.ItinerariesGenerated.WithLabelValues(metrics.OutcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog unavailable")
		return nil, utils.Wrap(utils.ErrCatalogUnavailable, err)
	}

	key := CacheKey(current.Version(), req)
	if resp, ok := s.lookup(ctx, key); ok {
		cacheResult = metrics.CacheResultHit
		metrics.ItinerariesGenerated.WithLabelValues(metrics.OutcomeOK).Inc()
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return resp, nil
	}

	it, err := planner.GenerateItinerary(req, current, s.policy)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, planner.ErrNoDataForCity):
			metrics.ItinerariesGenerated.WithLabelValues(metrics.OutcomeNoData).Inc()
			span.SetStatus(codes.Error, "no data for city")
			return nil, utils.Wrap(utils.ErrCityNotFound, err)
		case errors.Is(err, planner.ErrInvalidRequest):
			metrics.ItinerariesGenerated.WithLabelValues(metrics.OutcomeInvalid).Inc()
			span.SetStatus(codes.Error, "invalid request")
			return nil, utils.Wrap(utils.ErrInvalidRequest, err)
		}
		metrics.ItinerariesGenerated.WithLabelValues(metrics.OutcomeError).Inc()
		span.SetStatus(codes.Error, "generation failed")
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	city, _ := current.City(it.City)
	resp := PresentItinerary(it, city, req, current.Version())
	s.store(ctx, key, resp)

	metrics.ItinerariesGenerated.WithLabelValues(metrics.OutcomeOK).Inc()
	for _, w := range it.Warnings {
		metrics.ItineraryWarnings.WithLabelValues(string(w.Code)).Inc()
	}
	span.SetAttributes(
		attribute.Int("itinerary.days", it.Days),
		attribute.Int("itinerary.warnings", len(it.Warnings)),
		attribute.String("itinerary.budget_status", string(it.BudgetStatus)),
	)
	span.SetStatus(codes.Ok, "itinerary generated")

	if len(it.Warnings) > 0 {
		s.log.Debug("itinerary relaxed", map[string]interface{}{
			"city":     it.City,
			"warnings": len(it.Warnings),
		})
	}
	return resp, nil
}

// lookup treats every cache failure as a miss.
func (s *ItineraryService) lookup(ctx context.Context, key string) (*response_models.ItineraryResponse, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues(s.cache.Backend(), metrics.CacheResultError).Inc()
		s.log.WithError(err).Warn("itinerary cache read failed", map[string]interface{}{"backend": s.cache.Backend()})
		return nil, false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues(s.cache.Backend(), metrics.CacheResultMiss).Inc()
		return nil, false
	}

	var resp response_models.ItineraryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		metrics.CacheLookups.WithLabelValues(s.cache.Backend(), metrics.CacheResultError).Inc()
		s.log.WithError(err).Warn("discarding unreadable cached itinerary", map[string]interface{}{"key": key})
		return nil, false
	}
	metrics.CacheLookups.WithLabelValues(s.cache.Backend(), metrics.CacheResultHit).Inc()
	resp.Cached = true
	return &resp, true
}

func (s *ItineraryService) store(ctx context.Context, key string, resp *response_models.ItineraryResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.WithError(err).Warn("itinerary not cacheable", nil)
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.log.WithError(err).Warn("itinerary cache write failed", map[string]interface{}{"backend": s.cache.Backend()})
	}
}

// CacheKey identifies a request against one catalog version. req must be
// normalized.
func CacheKey(version string, req planner.TripRequest) string {
	interests := make([]string, len(req.Interests))
	for i, c := range req.Interests {
		interests[i] = string(c)
	}
	return strings.Join([]string{
		version,
		strings.ToLower(req.City),
		strconv.Itoa(req.Days),
		strconv.FormatFloat(req.Budget, 'f', -1, 64),
		strings.Join(interests, ","),
		string(req.TravelType),
	}, ":")
}
