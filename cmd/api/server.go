package main

import (
	"log/slog"
	"net/http"

	"postboard/internal/config"
	"postboard/internal/eventbus"
	hhttp "postboard/internal/handler/http"
	haccount "postboard/internal/handler/http/account"
	hcomment "postboard/internal/handler/http/comment"
	hpost "postboard/internal/handler/http/post"
	"postboard/internal/handler/http/requestid"
	hsubscription "postboard/internal/handler/http/subscription"
	"postboard/internal/infra/adapter/persistence/memory"
	"postboard/internal/observability/slo"
	"postboard/internal/observability/tracing"
	"postboard/internal/usecase/notify"
	"postboard/internal/usecase/relation"
)

// ServerComponents holds the assembled handler and the pieces main toggles
// during startup and shutdown.
type ServerComponents struct {
	Handler http.Handler
	Ready   *hhttp.ReadyHandler
	SLO     *slo.Tracker
}

// setupServer wires the store and bus into every route and wraps the mux
// in the middleware chain.
func setupServer(logger *slog.Logger, cfg config.Config, store *memory.Store, bus *eventbus.Bus) *ServerComponents {
	notifier := notify.NewNotifier(store, bus)
	resolver := &relation.Resolver{Store: store}
	ready := &hhttp.ReadyHandler{}
	tracker := slo.NewTracker(slo.DefaultWindow)

	mux := http.NewServeMux()
	haccount.Register(mux, store, notifier, resolver)
	hpost.Register(mux, store, notifier, resolver)
	hcomment.Register(mux, store, notifier, resolver)
	hsubscription.Register(mux, &hsubscription.Handler{
		Bus:          bus,
		Store:        store,
		PingInterval: cfg.WebsocketPingInterval,
	})

	mux.Handle("GET /health", &hhttp.HealthHandler{Store: store, Bus: bus, Version: cfg.Version})
	mux.Handle("GET /ready", ready)
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return &ServerComponents{
		Handler: applyMiddleware(logger, mux, tracker),
		Ready:   ready,
		SLO:     tracker,
	}
}

// applyMiddleware builds the chain outermost first. The SLO tracker sits
// outside Recover so recovered panics count as 5xx.
func applyMiddleware(logger *slog.Logger, handler http.Handler, tracker *slo.Tracker) http.Handler {
	return hhttp.Chain(handler,
		requestid.Middleware,
		tracker.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.InputValidation(hhttp.MaxBodyBytes),
		tracing.Middleware,
		hhttp.MetricsMiddleware,
	)
}
