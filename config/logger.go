package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a logger that drops records below level. Format "json"
// writes one object per record; anything else writes key=value text.
func NewLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
