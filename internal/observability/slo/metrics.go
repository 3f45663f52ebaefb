package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service level objectives for the HTTP API.
const (
	// AvailabilitySLO is the target percentage of non-5xx responses.
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the 95th percentile latency target in seconds.
	LatencyP95SLO = 0.200

	// LatencyP99SLO is the 99th percentile latency target in seconds.
	LatencyP99SLO = 0.500

	// ErrorRateSLO is the maximum ratio of 5xx responses.
	ErrorRateSLO = 0.001
)

// Gauges refreshed by Tracker.Publish from the current request window.
var (
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Non-5xx ratio over the recent request window (0-1), target: 0.999",
		},
	)

	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "p95 latency over the recent request window, target: 0.200",
		},
	)

	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "p99 latency over the recent request window, target: 0.500",
		},
	)

	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "5xx ratio over the recent request window (0-1), target: 0.001",
		},
	)

	SLOBreached = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "slo_breached",
			Help: "1 when the objective is currently missed, 0 otherwise",
		},
		[]string{"objective"},
	)
)
