package ledgerapi

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the minimal logging surface the SDK needs.
type Logger interface {
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
}

type contextLoggerKeyT string

// ContextLoggerKey carries a Logger through a context.
const ContextLoggerKey = contextLoggerKeyT("ocp-logger")

// WithLogger attaches a logger to the context for use by the SDK.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ContextLoggerKey, logger)
}

// LoggerFrom extracts the logger from the context, falling back to a zap
// production logger.
func LoggerFrom(ctx context.Context) Logger {
	value := ctx.Value(ContextLoggerKey)
	logger, ok := value.(Logger)
	if !ok {
		logger = zap.Must(zap.NewProduction()).Sugar()
	}

	return logger
}
