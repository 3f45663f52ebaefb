// Package logging wraps log/slog for the postboard service.
//
// The process logger is JSON on stdout. HTTP middleware derives a per-request
// logger tagged with request_id and stores it in the request context, so
// handlers log through FromContext:
//
//	logging.FromContext(r.Context()).Warn("subscription closed", slog.String("topic", topic))
//
// The store, relation resolver and notifier never log; they return errors and
// leave reporting to the gateway.
package logging
