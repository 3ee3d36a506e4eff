package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BackendRequestDuration covers every call made through apiclient.Client.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Duration of requests to the resume backend in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "outcome"}, // outcome: ok, http_error, network_error, parse_error
	)

	FallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fallback_total",
			Help: "Best-effort fetches by resource and the step that produced the result",
		},
		[]string{"resource", "outcome"}, // outcome: primary, secondary, exhausted
	)

	ViewRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "view_request_duration_seconds",
			Help:    "BFF request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"method", "route", "status"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	ViewEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_events_published_total",
			Help: "View events delivered to or rejected by the broker",
		},
		[]string{"outcome"}, // outcome: delivered, failed
	)

	ViewEventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_events_consumed_total",
			Help: "View events read by the worker",
		},
		[]string{"resource", "lang"},
	)
)

func RecordBackendRequest(method, outcome string, duration time.Duration) {
	BackendRequestDuration.WithLabelValues(method, outcome).Observe(duration.Seconds())
}

func RecordFallback(resource, outcome string) {
	FallbackTotal.WithLabelValues(resource, outcome).Inc()
}

func RecordViewRequest(method, route, status string, duration time.Duration) {
	ViewRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func IncrementRateLimited(route string) {
	RateLimitedTotal.WithLabelValues(route).Inc()
}

func IncrementViewEventConsumed(resource, lang string) {
	ViewEventsConsumed.WithLabelValues(resource, lang).Inc()
}

func AddViewEventsPublished(outcome string, n int) {
	ViewEventsPublished.WithLabelValues(outcome).Add(float64(n))
}
