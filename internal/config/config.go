// Package config assembles the service configuration from the environment
// and loads the seed dataset.
package config

import (
	"errors"
	"fmt"
	"time"

	envconfig "postboard/pkg/config"
)

// Defaults used when the corresponding variable is unset.
const (
	DefaultAddr                  = ":8080"
	DefaultEventBuffer           = 16
	DefaultShutdownTimeout       = 10 * time.Second
	DefaultWebsocketPingInterval = 30 * time.Second

	maxEventBuffer = 1 << 16
)

// Config holds the runtime settings of the API process.
type Config struct {
	// Addr is the HTTP listen address (HTTP_ADDR).
	Addr string
	// SeedFile points at a YAML dataset (SEED_FILE). Empty loads the embedded default;
	// "none" starts with an empty store.
	SeedFile string
	// EventBuffer is the per-subscription channel size (EVENT_BUFFER).
	EventBuffer int
	// ShutdownTimeout bounds graceful shutdown (SHUTDOWN_TIMEOUT).
	ShutdownTimeout time.Duration
	// WebsocketPingInterval is how often idle subscription sockets are pinged (WS_PING_INTERVAL).
	WebsocketPingInterval time.Duration
	// OTLPEndpoint is the host:port of an OTLP/gRPC trace collector
	// (OTEL_EXPORTER_OTLP_ENDPOINT). Empty keeps spans in-process.
	OTLPEndpoint string
	// Version is reported by /health (VERSION).
	Version string
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Addr:                  envconfig.GetEnvString("HTTP_ADDR", DefaultAddr),
		SeedFile:              envconfig.GetEnvString("SEED_FILE", ""),
		EventBuffer:           envconfig.GetEnvInt("EVENT_BUFFER", DefaultEventBuffer),
		ShutdownTimeout:       envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		WebsocketPingInterval: envconfig.GetEnvDuration("WS_PING_INTERVAL", DefaultWebsocketPingInterval),
		OTLPEndpoint:          envconfig.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Version:               envconfig.GetEnvString("VERSION", "dev"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	if err := envconfig.ValidateIntRange(c.EventBuffer, 1, maxEventBuffer); err != nil {
		errs = append(errs, fmt.Errorf("EVENT_BUFFER: %w", err))
	}
	if err := envconfig.ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}
	if err := envconfig.ValidatePositiveDuration(c.WebsocketPingInterval); err != nil {
		errs = append(errs, fmt.Errorf("WS_PING_INTERVAL: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
