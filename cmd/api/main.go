package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postboard/internal/config"
	"postboard/internal/eventbus"
	"postboard/internal/infra/adapter/persistence/memory"
	"postboard/internal/observability/logging"
	"postboard/internal/observability/tracing"
)

const sloPublishInterval = 15 * time.Second

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := initTracing(ctx, logger, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("failed to flush traces", slog.Any("error", err))
		}
	}()

	store, err := loadStore(cfg.SeedFile)
	if err != nil {
		return err
	}
	accounts, posts, comments := store.Counts()
	logger.Info("store loaded",
		slog.String("seed", seedName(cfg.SeedFile)),
		slog.Int("accounts", accounts),
		slog.Int("posts", posts),
		slog.Int("comments", comments))

	bus := eventbus.New(eventbus.Config{Buffer: cfg.EventBuffer, Logger: logger})
	components := setupServer(logger, cfg, store, bus)

	return runServer(ctx, logger, cfg, components, bus)
}

func initTracing(ctx context.Context, logger *slog.Logger, endpoint string) (func(context.Context) error, error) {
	opts, err := tracing.OTLPOptions(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		logger.Info("trace export enabled", slog.String("endpoint", endpoint))
	}
	return tracing.Init(opts...), nil
}

func loadStore(seedFile string) (*memory.Store, error) {
	seed, err := config.LoadSeed(seedFile)
	if err != nil {
		return nil, err
	}
	store := memory.New()
	if err := store.Load(seed.Entities()); err != nil {
		return nil, err
	}
	return store, nil
}

func seedName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// runServer serves until SIGINT or SIGTERM, then drains in-flight requests
// and closes every live subscription.
func runServer(ctx context.Context, logger *slog.Logger, cfg config.Config, components *ServerComponents, bus *eventbus.Bus) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
	// Hijacked websocket connections are invisible to Shutdown; closing the
	// bus ends their streams.
	srv.RegisterOnShutdown(bus.Close)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	go components.SLO.Run(ctx, sloPublishInterval)
	components.Ready.SetReady(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server...", slog.String("signal", sig.String()))
	}

	components.Ready.SetReady(false)
	report := components.SLO.Publish()
	logger.Info("slo window at shutdown",
		slog.Int("requests", report.Requests),
		slog.Float64("availability", report.Availability),
		slog.Float64("latency_p95_seconds", report.LatencyP95))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	bus.Close()
	logger.Info("server stopped")
	return nil
}
