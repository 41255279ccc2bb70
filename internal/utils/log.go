package utils

import (
	"io"
	"log/slog"
)

// NewLogger returns the diagnostic logger. User-facing output goes to stdout
// through fmt; this one only carries warnings and, with verbose, debug traces.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
