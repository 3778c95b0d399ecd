package router

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"
)

// ctxlog is a [context.Context] key and acts as a virtual package for operations related to it.
type ctxlog struct{}

// LoggerMiddleware returns a middleware that sets a [slog.Logger] in
// the [context.Context] and logs the command after it has terminated.
func LoggerMiddleware(parent *slog.Logger) Middleware {
	return func(call *Call, next func(*Call)) {
		logger := parent.With("request-id", uuid.Must(uuid.NewV7()).String())
		ctx := call.Context

		start := time.Now()
		call.Context = context.WithValue(ctx, ctxlog{}, logger.With("command", call.Command.Name))
		next(call)

		logger.LogAttrs(ctx, slog.LevelDebug, call.Command.Name,
			slog.Int("args", len(call.Args)),
			slog.Bool("failed", call.Err != nil),
			slog.Duration("dur", time.Since(start)),
		)
	}
}

// RecoverMiddleware returns a middleware that recovers and logs the value from panic.
// The call then fails with an error instead.
func RecoverMiddleware(fallback *slog.Logger) Middleware {
	return func(call *Call, next func(*Call)) {
		defer func() {
			v := recover()
			if v != nil {
				Logger(call.Context, fallback).LogAttrs(context.Background(), slog.LevelError,
					"panic occurred", slog.Any("recovered", v))
				call.Output, call.Err = "", fmt.Errorf("router: command %q panicked: %v", call.Command.Name, v)
			}
		}()
		next(call)
	}
}

// ErrorHandler returns a function that gets the [slog.Logger] from [context.Context] and logs the error.
func ErrorHandler(fallback *slog.Logger) func(context.Context, error) {
	return func(ctx context.Context, err error) {
		Logger(ctx, fallback).LogAttrs(context.Background(), slog.LevelWarn, "error occurred", slog.Any("err", err))
	}
}

// Logger returns the logger set by [LoggerMiddleware] or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger, ok := ctx.Value(ctxlog{}).(*slog.Logger)
	if !ok {
		return fallback
	}
	return logger
}

var buckets = metrics.ExponentialBuckets(1e-6, 5, 8) //nolint: gochecknoglobals,mnd // arbitrary

// MeterCommands returns a middleware counting commands by name and outcome
// and timing them by name.
func MeterCommands(set *metrics.Set) Middleware {
	return func(call *Call, next func(*Call)) {
		start := time.Now()
		next(call)

		status := "ok"
		if call.Err != nil {
			status = "error"
		}
		set.GetOrCreateCounter("commands_total" + joinQuote("{command=", call.Command.Name, ",status=", status, "}")).Inc()
		set.GetOrCreatePrometheusHistogramExt("command_duration_seconds"+joinQuote("{command=", call.Command.Name, "}"), buckets).
			UpdateDuration(start)
	}
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }
