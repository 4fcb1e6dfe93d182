package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"tripplanner/internal/common/logger"
	"tripplanner/internal/common/metrics"
)

var ErrNotLoaded = errors.New("catalog not loaded")

// Store holds the active catalog. Reload swaps the whole catalog at once;
// readers that already hold a *Catalog keep using it.
type Store struct {
	source  Source
	current atomic.Pointer[Catalog]
	log     logger.Logger
}

func NewStore(source Source, log logger.Logger) *Store {
	return &Store{source: source, log: log}
}

func (s *Store) SourceName() string {
	return s.source.Name()
}

// Current returns the active catalog or ErrNotLoaded.
func (s *Store) Current() (*Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrNotLoaded
	}
	return c, nil
}

// Reload loads a fresh catalog from the source. On failure the active
// catalog stays in place.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	ctx, span := otel.Tracer("catalog").Start(ctx, "Store.Reload")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.source", s.source.Name()))

	start := time.Now()
	c, err := s.source.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog load failed")
		metrics.CatalogReloads.WithLabelValues(s.source.Name(), metrics.ReloadStatusFailure).Inc()
		s.log.WithError(err).Error("catalog reload failed", map[string]interface{}{
			"source": s.source.Name(),
		})
		return nil, err
	}

	previous := s.current.Swap(c)
	metrics.CatalogPlaces.Set(float64(c.PlaceCount()))
	metrics.CatalogReloads.WithLabelValues(s.source.Name(), metrics.ReloadStatusSuccess).Inc()

	fields := map[string]interface{}{
		"source":   s.source.Name(),
		"version":  c.Version(),
		"cities":   len(c.Cities()),
		"places":   c.PlaceCount(),
		"duration": time.Since(start).String(),
	}
	if previous != nil {
		fields["previous_version"] = previous.Version()
	}
	s.log.Info("catalog loaded", fields)

	span.SetAttributes(
		attribute.String("catalog.version", c.Version()),
		attribute.Int("catalog.places", c.PlaceCount()),
	)
	span.SetStatus(codes.Ok, "catalog loaded")
	return c, nil
}
