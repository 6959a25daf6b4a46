package logging

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/orbitalworks/shipnav/internal/application/mediator"
)

// Context keys for passing the logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, falling back to the
// default logger when none was attached
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// RequestMiddleware creates a middleware that logs every command and query
// dispatched through the mediator: name, duration, outcome. The logger is
// also attached to the context for handlers that want it.
func RequestMiddleware(logger *slog.Logger) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		name := requestName(request)
		start := time.Now()

		response, err := next(WithLogger(ctx, logger), request)

		duration := time.Since(start)
		if err != nil {
			logger.Error("request failed",
				slog.String("request", name),
				slog.Duration("duration", duration),
				slog.String("error", err.Error()))
			return response, err
		}

		logger.Debug("request handled",
			slog.String("request", name),
			slog.Duration("duration", duration))
		return response, nil
	}
}

// requestName extracts a clean request name via reflection.
// Example: "*types.MoveShipCommand" becomes "MoveShipCommand".
func requestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	parts := strings.Split(fullName, ".")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return fullName
}
