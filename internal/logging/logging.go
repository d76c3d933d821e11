// Package logging selects the process-wide slog handler once at boot.
// Handlers are injected into everything that logs; nothing outside main
// touches a global.
package logging

import (
	"io"
	"log/slog"
	"os"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// New builds the logger for the given execution environment:
// JSON at Info for production, human-readable text at Debug for
// development, and a discard handler under test so test output stays quiet.
func New(env string) *slog.Logger {
	switch env {
	case EnvTest:
		return NewDiscard()
	case EnvDevelopment:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

// NewDiscard returns a logger that drops every record. Used in test mode
// and handed to components under test.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Err is a shorthand attribute for error values, so call sites read
// log.Error("...", logging.Err(err)).
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
