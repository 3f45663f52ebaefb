// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, in-flight)
//   - Store metrics (operations by result, durations, entity counts)
//   - Event metrics (published, delivered, active subscriptions)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "postboard/internal/observability/metrics"
//
//	func createPost() {
//	    start := time.Now()
//	    // ... write the post ...
//	    metrics.RecordStoreOperation("create_post", "ok", time.Since(start))
//	}
package metrics
