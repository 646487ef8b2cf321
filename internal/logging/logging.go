// Package logging provides the configured zerolog logger.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger for the given service writing to w. On the
// stdio transport the caller must pass stderr — stdout carries MCP
// protocol frames.
func New(service string, level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Str("service", service).
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
