package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItinerariesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itineraries_generated_total",
			Help: "Itinerary requests by outcome",
		},
		[]string{"outcome"},
	)

	ItineraryWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_warnings_total",
			Help: "Fallback warnings attached to itineraries, by code",
		},
		[]string{"code"},
	)

	ItineraryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itinerary_generation_duration_seconds",
			Help:    "Time spent producing an itinerary, cache lookups included",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"cache"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_cache_lookups_total",
			Help: "Itinerary cache lookups by result (hit, miss, error)",
		},
		[]string{"backend", "result"},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Catalog reload attempts by source and status",
		},
		[]string{"source", "status"},
	)

	CatalogPlaces = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_places",
			Help: "Places in the active catalog",
		},
	)

	HTTPRequests = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request latency by route and status",
		},
		[]string{"method", "route", "status"},
	)
)

const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid_request"
	OutcomeNoData       = "no_data"
	OutcomeError        = "error"
	CacheResultHit      = "hit"
	CacheResultMiss     = "miss"
	CacheResultError    = "error"
	ReloadStatusSuccess = "success"
	ReloadStatusFailure = "failure"
)
