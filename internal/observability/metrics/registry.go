// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Buckets cover fast (5ms) through slow (10s) API responses.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks the current number of HTTP requests being processed
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Store metrics track entity store operations
var (
	// StoreOperationsTotal counts store operations by operation and result
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of entity store operations",
		},
		[]string{"operation", "result"}, // result: ok|not_found|conflict|validation|error
	)

	// StoreOperationDuration measures store operation duration, lock wait included
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Entity store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"operation"},
	)

	// EntitiesTotal tracks the current number of stored entities per kind
	EntitiesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "entities_total",
			Help: "Current number of entities in the store",
		},
		[]string{"kind"}, // kind: account|post|comment
	)
)

// Event metrics track change notification
var (
	// EventsPublishedTotal counts events handed to the event bus
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of change events published",
		},
		[]string{"topic_kind", "mutation"},
	)

	// EventsDeliveredTotal counts events handed to a subscriber
	EventsDeliveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_delivered_total",
			Help: "Total number of change events delivered to subscribers",
		},
		[]string{"topic_kind"},
	)

	// ActiveSubscriptions tracks live subscriptions per topic kind
	ActiveSubscriptions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "event_subscriptions_active",
			Help: "Number of active event subscriptions",
		},
		[]string{"topic_kind"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
