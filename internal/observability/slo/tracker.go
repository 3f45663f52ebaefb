package slo

import (
	"context"
	"math"
	"net/http"
	"slices"
	"sync"
	"time"

	"postboard/internal/handler/http/responsewriter"
)

// DefaultWindow is the number of recent requests a Tracker evaluates.
const DefaultWindow = 1000

type sample struct {
	failed  bool
	seconds float64
}

// Report is the state of every objective over the current window.
type Report struct {
	Requests     int
	Availability float64
	ErrorRate    float64
	LatencyP95   float64
	LatencyP99   float64
}

// Breaches lists the objectives the report misses.
func (r Report) Breaches() []string {
	var out []string
	if r.Requests == 0 {
		return out
	}
	if r.Availability*100 < AvailabilitySLO {
		out = append(out, "availability")
	}
	if r.ErrorRate > ErrorRateSLO {
		out = append(out, "error_rate")
	}
	if r.LatencyP95 > LatencyP95SLO {
		out = append(out, "latency_p95")
	}
	if r.LatencyP99 > LatencyP99SLO {
		out = append(out, "latency_p99")
	}
	return out
}

// Tracker keeps a ring of the most recent request outcomes.
type Tracker struct {
	mu      sync.Mutex
	samples []sample
	next    int
	full    bool
}

// NewTracker returns a tracker over the last window requests.
// A non-positive window uses DefaultWindow.
func NewTracker(window int) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{samples: make([]sample, window)}
}

// Observe records one completed request.
func (t *Tracker) Observe(status int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.samples[t.next] = sample{failed: status >= http.StatusInternalServerError, seconds: d.Seconds()}
	t.next++
	if t.next == len(t.samples) {
		t.next = 0
		t.full = true
	}
}

// Report evaluates the window. An empty window reports full availability.
func (t *Tracker) Report() Report {
	t.mu.Lock()
	n := t.next
	if t.full {
		n = len(t.samples)
	}
	window := slices.Clone(t.samples[:n])
	t.mu.Unlock()

	if n == 0 {
		return Report{Availability: 1}
	}

	failed := 0
	latencies := make([]float64, n)
	for i, s := range window {
		if s.failed {
			failed++
		}
		latencies[i] = s.seconds
	}
	slices.Sort(latencies)

	errRate := float64(failed) / float64(n)
	return Report{
		Requests:     n,
		Availability: 1 - errRate,
		ErrorRate:    errRate,
		LatencyP95:   percentile(latencies, 0.95),
		LatencyP99:   percentile(latencies, 0.99),
	}
}

// Publish sets the SLO gauges from the current window.
func (t *Tracker) Publish() Report {
	r := t.Report()
	SLOAvailability.Set(r.Availability)
	SLOErrorRate.Set(r.ErrorRate)
	SLOLatencyP95.Set(r.LatencyP95)
	SLOLatencyP99.Set(r.LatencyP99)

	for _, objective := range []string{"availability", "error_rate", "latency_p95", "latency_p99"} {
		SLOBreached.WithLabelValues(objective).Set(0)
	}
	for _, objective := range r.Breaches() {
		SLOBreached.WithLabelValues(objective).Set(1)
	}
	return r
}

// Run publishes every interval until ctx is done.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Publish()
		}
	}
}

// Middleware feeds every request into the tracker. Upgraded connections are
// skipped: their duration is the lifetime of the stream.
func (t *Tracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r)

		if rw.Upgraded() {
			return
		}
		t.Observe(rw.StatusCode(), time.Since(start))
	})
}

// percentile uses the nearest-rank method on sorted values.
func percentile(sorted []float64, q float64) float64 {
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	rank = max(rank, 0)
	return sorted[rank]
}
