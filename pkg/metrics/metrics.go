// Package metrics holds the Prometheus collectors for the booking service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the service exposes.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	BookingsCreated  prometheus.Counter
	BookingConflicts prometheus.Counter

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
}

// New registers and returns the service collectors. serviceName becomes a
// constant label so dashboards can distinguish deployments.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of handled HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings successfully created.",
			ConstLabels: constLabels,
		}),

		BookingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking attempts rejected because the room was not available.",
			ConstLabels: constLabels,
		}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database statement latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"op"}),

		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database statements that returned an error.",
			ConstLabels: constLabels,
		}, []string{"op"}),
	}
}

// IncBookingCreated counts a successfully created booking.
func (m *Metrics) IncBookingCreated() {
	m.BookingsCreated.Inc()
}

// IncBookingConflict counts a booking rejected on the availability re-check.
func (m *Metrics) IncBookingConflict() {
	m.BookingConflicts.Inc()
}

// ObserveQuery implements dbwrap.QueryRecorder.
func (m *Metrics) ObserveQuery(op string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(op).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(op).Inc()
	}
}
