// Package config provides environment variable helpers with defaults.
// Invalid values fall back to the default and emit a structured warning;
// loaders never fail the process on a malformed variable.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the value of an environment variable or the default
// value if the variable is not set or empty.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvInt returns the value of an environment variable parsed as an
// integer. On parse failure the default is returned and a warning is logged.
func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return parsed
}

// GetEnvInt64 returns the value of an environment variable parsed as an
// int64. On parse failure the default is returned and a warning is logged.
func GetEnvInt64(key string, defaultValue int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("invalid int64 environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int64("default", defaultValue))
		return defaultValue
	}
	return parsed
}

// GetEnvBool returns the value of an environment variable parsed as a
// boolean ("1", "t", "true", "0", "f", "false", case-insensitive).
// On parse failure the default is returned and a warning is logged.
func GetEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
	return parsed
}

// GetEnvDuration returns the value of an environment variable parsed as a
// time.Duration ("10s", "1m30s"). On parse failure the default is returned
// and a warning is logged.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration environment variable, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return parsed
}
