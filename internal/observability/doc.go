// Package observability groups the service's logging, metrics, tracing and
// SLO tracking.
//
// Subpackages:
//   - logging: slog JSON logger with request-scoped context propagation
//   - metrics: Prometheus collectors for HTTP, store and event bus activity
//   - tracing: OpenTelemetry spans with optional OTLP/gRPC export
//   - slo: service level objectives computed from recent requests
//
// Example usage:
//
//	logger := logging.NewLogger()
//	shutdown := tracing.Init()
//	defer shutdown(ctx)
//	metrics.RecordHTTPRequest("GET", "/posts", "200", time.Millisecond)
package observability
