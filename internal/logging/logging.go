// Package logging builds the slog.Logger shared by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options configures New.
type Options struct {
	Enabled bool       // if false, all output is discarded
	Level   slog.Level // minimum level when enabled
	Writer  io.Writer  // destination; required when Enabled
}

// New returns a text-handler logger, or a discarding one when disabled.
func New(opts Options) *slog.Logger {
	if !opts.Enabled || opts.Writer == nil {
		return Discard()
	}

	return slog.New(slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: opts.Level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}
