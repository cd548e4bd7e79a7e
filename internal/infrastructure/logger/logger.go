// Package logger builds the zerolog loggers used across the service.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultServiceName is stamped as the service field when Config leaves it empty.
const DefaultServiceName = "destination-catalog"

// Config selects the level, the output format and the fields stamped on every entry.
type Config struct {
	// Level is a zerolog level name; unknown or empty means info
	Level string

	// Format is "json" or "console"
	Format string

	Caller      bool
	Service     string
	Environment string
}

// New returns a logger writing to stdout.
func New(cfg Config) zerolog.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput returns a logger writing to out.
func NewWithOutput(cfg Config, out io.Writer) zerolog.Logger {
	service := cfg.Service
	if service == "" {
		service = DefaultServiceName
	}
	ctx := zerolog.New(writer(cfg.Format, out)).
		Level(level(cfg.Level)).
		With().
		Timestamp().
		Str("service", service)

	if cfg.Environment != "" {
		ctx = ctx.Str("env", cfg.Environment)
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Component derives a child of l for one part of the service, such as
// "catalog", "booking" or "contact".
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// SetGlobal installs l behind the zerolog/log package and as the logger
// zerolog.Ctx falls back to for contexts that carry none.
func SetGlobal(l zerolog.Logger) {
	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
}

func level(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func writer(format string, out io.Writer) io.Writer {
	if format != "console" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}
