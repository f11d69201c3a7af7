// Package logging builds the structured logger shared by the CLI, the
// console, and the processor.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// New returns a slog.Logger writing to w in the configured format and level.
// The interactive transcript goes to stdout, so callers pass stderr here.
func New(cfg types.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(
		slog.String("app", "vending"),
		slog.String("backend", cfg.Backend),
	)
}

// ParseLevel maps a level name to a slog.Level, defaulting to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
