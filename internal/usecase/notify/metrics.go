package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for change notification
var (
	// mutationsTotal tracks mutations routed through the notifier
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_mutations_total",
			Help: "Total number of mutations handled by the change notifier",
		},
		[]string{"operation", "status"}, // status: success|failure
	)

	// eventsSuppressedTotal tracks post changes that produced no event
	// because the post was invisible before and after
	eventsSuppressedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_events_suppressed_total",
			Help: "Total number of post changes not published because the post is unpublished",
		},
		[]string{"operation"},
	)
)

// recordMutation records the outcome of a notifier operation.
func recordMutation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	mutationsTotal.WithLabelValues(operation, status).Inc()
}

// recordSuppressed records a post change hidden from subscribers.
func recordSuppressed(operation string) {
	eventsSuppressedTotal.WithLabelValues(operation).Inc()
}
