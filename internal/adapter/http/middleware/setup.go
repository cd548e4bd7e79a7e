package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Config holds the HTTP middleware options.
type Config struct {
	// AllowedOrigins lists the CORS origins; empty or "*" allows any origin
	AllowedOrigins []string

	// BodyLimit caps request bodies, e.g. "64K"; empty disables the limit
	BodyLimit string

	Recovery RecoveryConfig
}

func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"*"},
		BodyLimit:      "64K",
		Recovery:       DefaultRecoveryConfig(),
	}
}

// Setup installs Chain on e. Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, cfg Config) {
	e.Use(Chain(log, cfg)...)
}

// Chain returns the middleware in order. The request id comes first so every
// later entry can carry it, and the logger wraps Recover so a recovered
// panic is still logged as a 500. CORS and the body limit run last, which
// keeps rejected requests in the log.
func Chain(log zerolog.Logger, cfg Config) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, cfg.Recovery),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  allowedOrigins(cfg.AllowedOrigins),
			AllowMethods:  []string{echo.GET, echo.POST, echo.OPTIONS},
			ExposeHeaders: []string{RequestIDHeader, "Content-Location"},
		}),
	}
	if cfg.BodyLimit != "" {
		chain = append(chain, echomw.BodyLimit(cfg.BodyLimit))
	}
	return chain
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
