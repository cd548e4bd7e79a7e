package http

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travelbanza/destination-catalog/internal/adapter/http/middleware"
)

// ServerOptions configures NewServer.
type ServerOptions struct {
	Logger     zerolog.Logger
	Middleware middleware.Config
	Handlers   Handlers

	// Swagger mounts the API documentation under /swagger/*.
	Swagger bool
}

// NewServer builds the Echo instance serving the API: error handler,
// middleware chain, routes and optionally the Swagger UI.
func NewServer(opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	middleware.Setup(e, opts.Logger, opts.Middleware)
	RegisterRoutes(e, opts.Handlers)
	if opts.Swagger {
		RegisterSwagger(e)
	}

	return e
}
