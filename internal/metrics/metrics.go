package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the booking backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Ledger Metrics
	BookingsCreatedTotal   prometheus.Counter
	BookingsCancelledTotal prometheus.Counter
	BookingFailuresTotal   prometheus.CounterVec
	NotificationsTotal     prometheus.CounterVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authority_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "authority_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "authority_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		BookingsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "authority_bookings_created_total",
				Help: "Total bookings committed by the seat ledger",
			},
		),
		BookingsCancelledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "authority_bookings_cancelled_total",
				Help: "Total bookings cancelled through the seat ledger",
			},
		),
		BookingFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authority_booking_failures_total",
				Help: "Booking operations rejected by the seat ledger, by error kind",
			},
			[]string{"kind"},
		),
		NotificationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authority_partner_notifications_total",
				Help: "Partner notification attempts by outcome",
			},
			[]string{"outcome"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authority_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authority_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
	}
}
