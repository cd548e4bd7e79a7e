package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/travelbanza/destination-catalog/internal/adapter/http/response"
)

// RecoveryConfig configures panic recovery.
type RecoveryConfig struct {
	// DisablePrintStack leaves the stack out of the log entry
	DisablePrintStack bool

	// StackSize caps the logged stack in bytes; zero uses echo's default
	StackSize int
}

func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{StackSize: 8 << 10}
}

// Recover is RecoverWithConfig with DefaultRecoveryConfig.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig turns a handler panic into a generic 500 and logs the
// panic value with the stack of the panicking goroutine. Client bodies never
// contain the panic value. http.ErrAbortHandler is re-raised.
func RecoverWithConfig(log zerolog.Logger, cfg RecoveryConfig) echo.MiddlewareFunc {
	return echomw.RecoverWithConfig(echomw.RecoverConfig{
		StackSize:         cfg.StackSize,
		DisableStackAll:   true,
		DisablePrintStack: cfg.DisablePrintStack,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			event := log.Error().
				Str("request_id", GetRequestID(c)).
				Str("path", c.Request().URL.Path).
				Str("panic", err.Error())
			if len(stack) > 0 {
				event = event.Bytes("stack", stack)
			}
			event.Msg("Panic recovered")

			if c.Response().Committed {
				return nil
			}
			return response.InternalServerError(c)
		},
	})
}
