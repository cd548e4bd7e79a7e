package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Successful requests under these prefixes log at debug.
var quietPrefixes = []string{"/health", "/swagger"}

// RequestLogger writes one "HTTP request" entry per request once the
// response is known. Handler errors are rendered through the echo error
// handler first, so the logged status is the one the client saw.
//
// Downstream code can log with zerolog.Ctx(ctx): the request context
// carries a child of log tagged with the request id.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	logged := echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		HandleError:     true,
		LogMethod:       true,
		LogURIPath:      true,
		LogStatus:       true,
		LogLatency:      true,
		LogResponseSize: true,
		LogRemoteIP:     true,
		LogUserAgent:    true,
		BeforeNextFunc: func(c echo.Context) {
			reqLog := log.With().Str("request_id", GetRequestID(c)).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(reqLog.WithContext(req.Context())))
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			reqLog := zerolog.Ctx(c.Request().Context())

			levelFor(reqLog, v.Status, v.URIPath).
				Str("method", v.Method).
				Str("path", v.URIPath).
				Str("query", c.Request().URL.RawQuery).
				Int("status", v.Status).
				Int64("duration_ms", v.Latency.Milliseconds()).
				Int64("bytes_out", v.ResponseSize).
				Str("client_ip", v.RemoteIP).
				Str("user_agent", v.UserAgent).
				Msg("HTTP request")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := logged(next)
		return func(c echo.Context) error {
			// The error, if any, has already been written to the response.
			_ = h(c)
			return nil
		}
	}
}

func levelFor(l *zerolog.Logger, status int, path string) *zerolog.Event {
	switch {
	case status >= 500:
		return l.Error()
	case status >= 400:
		return l.Warn()
	}
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return l.Debug()
		}
	}
	return l.Info()
}
