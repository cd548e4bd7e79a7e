// Package config reads the service settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/travelbanza/destination-catalog/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
	Catalog CatalogConfig
	Booking BookingConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BodyLimit       string        `env:"SERVER_BODY_LIMIT" envDefault:"64K"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// CatalogConfig selects the destination catalog.
type CatalogConfig struct {
	// Path points to a catalog YAML file; empty uses the embedded catalog.
	Path string `env:"CATALOG_PATH"`
}

// BookingConfig holds settings for simulated bookings.
type BookingConfig struct {
	ProcessingDelay time.Duration `env:"BOOKING_PROCESSING_DELAY" envDefault:"2s"`
	Timeout         time.Duration `env:"TIMEOUT_BOOKING" envDefault:"5s"`
	Timezone        string        `env:"BOOKING_TIMEZONE" envDefault:"UTC"`
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for i, origin := range cfg.CORS.AllowedOrigins {
		cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate reports every invalid setting at once, joined with errors.Join.
func validate(cfg *Config) error {
	return errors.Join(
		cfg.Server.validate(),
		cfg.Booking.validate(),
		cfg.Logging.validate(),
		oneOf("APP_ENV", cfg.App.Env, "development", "staging", "production"),
		cfg.CORS.validate(),
	)
}

func (s ServerConfig) validate() error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", s.Port))
	}
	errs = append(errs,
		positive("SERVER_READ_TIMEOUT", s.ReadTimeout),
		positive("SERVER_WRITE_TIMEOUT", s.WriteTimeout),
		positive("SERVER_SHUTDOWN_TIMEOUT", s.ShutdownTimeout),
	)
	return errors.Join(errs...)
}

func (b BookingConfig) validate() error {
	var errs []error
	if b.ProcessingDelay < 0 {
		errs = append(errs, errors.New("BOOKING_PROCESSING_DELAY must not be negative"))
	}
	if err := positive("TIMEOUT_BOOKING", b.Timeout); err != nil {
		errs = append(errs, err)
	} else if b.ProcessingDelay >= b.Timeout {
		// Every booking would time out.
		errs = append(errs, fmt.Errorf("BOOKING_PROCESSING_DELAY (%s) should be less than TIMEOUT_BOOKING (%s)",
			b.ProcessingDelay, b.Timeout))
	}
	if _, err := timeutil.GetLocation(b.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("BOOKING_TIMEZONE %q is not a known IANA zone", b.Timezone))
	}
	return errors.Join(errs...)
}

func (l LoggingConfig) validate() error {
	return errors.Join(
		oneOf("LOG_LEVEL", l.Level, "debug", "info", "warn", "error"),
		oneOf("LOG_FORMAT", l.Format, "json", "console"),
	)
}

func (c CORSConfig) validate() error {
	if slices.Contains(c.AllowedOrigins, "") {
		return errors.New("CORS_ALLOWED_ORIGINS must not contain empty entries")
	}
	return nil
}

func positive(name string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

func oneOf(name, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", name, strings.Join(allowed, ", "), value)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
