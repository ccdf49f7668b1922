package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

// loggerKey is the context key for the logger.
const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx)
	logCtx := addFieldToContext(logger.With(), key, value)
	newLogger := logCtx.Logger()
	return WithLogger(ctx, &newLogger)
}

// WithOperation adds operation context to the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}

// WithSubproblem adds subproblem context to the logger.
func WithSubproblem(ctx context.Context, index int) context.Context {
	return WithField(ctx, "subproblem", index)
}

// addFieldToContext adds a field to the logger context based on its type.
func addFieldToContext(ctx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return ctx.Str(key, v)
	case int:
		return ctx.Int(key, v)
	case int64:
		return ctx.Int64(key, v)
	case float64:
		return ctx.Float64(key, v)
	case bool:
		return ctx.Bool(key, v)
	case error:
		if key == "error" || key == "err" {
			return ctx.Err(v)
		}
		return ctx.Str(key, v.Error())
	default:
		return ctx.Interface(key, v)
	}
}
