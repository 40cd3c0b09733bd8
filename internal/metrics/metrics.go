// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_http_requests_total",
			Help: "HTTP requests by route template, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trailbook_http_request_duration_seconds",
			Help:    "HTTP request latency by route template and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// RatingMutations counts committed rating writes; each one recomputes a
	// route's avg_rating inside the same transaction.
	RatingMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_rating_mutations_total",
			Help: "Committed rating mutations by operation.",
		},
		[]string{"op"},
	)

	WeatherRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trailbook_weather_upstream_requests_total",
			Help: "Outbound weather provider calls by outcome.",
		},
		[]string{"outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trailbook_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		},
		[]string{"name"},
	)
)
