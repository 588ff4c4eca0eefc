package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"article-summarizer/internal/handler/http/requestid"
)

type contextKey string

const loggerContextKey contextKey = "logger"

// levelFromEnv maps LOG_LEVEL onto a slog level. Unknown or empty values
// fall back to info.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns the production logger: JSON lines on stdout, level from
// LOG_LEVEL, with source locations attached at warn and below.
func NewLogger() *slog.Logger {
	level := levelFromEnv()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	}))
}

// NewTextLogger returns a human-readable logger for local development.
func NewTextLogger() *slog.Logger {
	level := levelFromEnv()
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	}))
}

// WithRequestID returns logger annotated with the request ID from ctx, so
// every line of one summarize call can be correlated. Without a request ID
// the logger is returned unchanged.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// WithFields returns logger annotated with the given key-value fields.
func WithFields(logger *slog.Logger, fields map[string]any) *slog.Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return logger.With(args...)
}

// WithLogger stores logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
