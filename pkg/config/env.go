// Package config provides small helpers for reading typed values from the environment.
//
// Every helper falls back to its default when the variable is unset or empty.
// Unparseable values also fall back, with a warning logged through slog so a
// typo in deployment config is visible without preventing startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the variable's value or defaultValue when it is unset or empty.
func GetEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses the variable as a base-10 integer.
//
// Example:
//
//	buffer := GetEnvInt("EVENT_BUFFER", 16)
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		warnInvalid("integer", key, raw, strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvBool parses the variable with strconv.ParseBool.
// Accepted values are 1, t, T, TRUE, true, True and their false counterparts.
func GetEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		warnInvalid("boolean", key, raw, strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvDuration parses the variable with time.ParseDuration ("30s", "1m30s").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		warnInvalid("duration", key, raw, defaultValue.String(), err)
		return defaultValue
	}
	return value
}

func warnInvalid(kind, key, raw, fallback string, err error) {
	slog.Warn("invalid "+kind+" value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", raw),
		slog.String("default", fallback),
		slog.String("error", err.Error()))
}
