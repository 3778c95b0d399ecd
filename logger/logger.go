// Package logger builds the [slog.Logger] of the contact book from command line options.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options are flattened into the CLI options by the caller.
type Options struct {
	Level  string // debug, info, warn or error; empty means info
	File   string // append logs to file; empty or "-" means stderr
	Format string // text or json
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

func handler(option string) (func(io.Writer, *slog.HandlerOptions) slog.Handler, bool) {
	switch strings.ToLower(option) {
	case "json":
		return func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, opts) }, true
	case "", "text":
		return func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, opts) }, true
	default:
		return nil, false
	}
}

// New never fails: unusable options are reset and reported through the returned logger.
// Logs go to stderr by default as stdout carries the prompt.
func New(options *Options) *slog.Logger {
	var warnings []string

	level, ok := level(options.Level)
	if !ok {
		options.Level = ""
		warnings = append(warnings, "could not parse logger level")
	}
	newHandler, ok := handler(options.Format)
	if !ok {
		options.Format = "text"
		newHandler, _ = handler(options.Format)
		warnings = append(warnings, "could not parse logger format")
	}
	opts := slog.HandlerOptions{Level: level}

	var logger *slog.Logger
	switch options.File {
	case "", "-":
		logger = slog.New(newHandler(os.Stderr, &opts))
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		output, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) //nolint: mnd // owner only
		if err != nil {
			options.File = ""
			logger = slog.New(newHandler(os.Stderr, &opts))
			logger.Warn("could not open logger file", "err", err)
		} else {
			logger = slog.New(newHandler(output, &opts))
		}
	}

	for _, warning := range warnings {
		logger.Warn(warning)
	}
	return logger
}
