// Package tracing provides OpenTelemetry tracing integration.
//
// It installs the SDK tracer provider at startup, wraps HTTP handlers with
// server spans, and offers StartSpan for internal operations such as store
// mutations and change notification.
//
// Example usage:
//
//	import "postboard/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.Init()
//	    defer shutdown(context.Background())
//	}
//
//	func createPost(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "notify.CreatePost")
//	    defer span.End()
//	    // ...
//	}
package tracing
