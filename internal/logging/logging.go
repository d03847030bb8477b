// SPDX-License-Identifier: MIT

// Package logging builds the process logger. Level and format come from
// configuration or the AISLENAV_LOG_LEVEL / AISLENAV_LOG_FORMAT environment.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects level, format and destination.
type Config struct {
	Level  string    `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string    `yaml:"format" json:"format" validate:"omitempty,oneof=text json"`
	Writer io.Writer `yaml:"-" json:"-"`
}

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text or JSON logger. Output goes to stderr unless Writer is set.
func New(c Config) *slog.Logger {
	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(c.Level)}
	var h slog.Handler
	if strings.ToLower(c.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// FromEnv builds a logger from AISLENAV_LOG_LEVEL and AISLENAV_LOG_FORMAT.
func FromEnv() *slog.Logger {
	return New(Config{
		Level:  os.Getenv("AISLENAV_LOG_LEVEL"),
		Format: os.Getenv("AISLENAV_LOG_FORMAT"),
	})
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
