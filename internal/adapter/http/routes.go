package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/travelbanza/destination-catalog/internal/adapter/http/response"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Destinations *DestinationHandler
	Bookings     *BookingHandler
	Contact      *ContactHandler
}

// RegisterRoutes registers all destination catalog API routes.
// It creates a versioned API group and attaches the handler methods.
// Static destination routes are registered before /:id so they are not
// captured as destination ids.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Destinations.Health)

	// API v1 group
	api := e.Group("/api/v1")

	destinations := api.Group("/destinations")
	destinations.GET("", h.Destinations.ListDestinations)
	destinations.POST("/search", h.Destinations.SearchDestinations)
	destinations.GET("/filters", h.Destinations.FilterMetadata)
	destinations.GET("/highlights", h.Destinations.Highlights)
	destinations.GET("/:id", h.Destinations.GetDestination)

	api.GET("/categories", h.Destinations.ListCategories)

	if h.Bookings != nil {
		bookings := api.Group("/bookings")
		bookings.POST("/quote", h.Bookings.Quote)
		bookings.POST("", h.Bookings.CreateBooking)
	}

	if h.Contact != nil {
		api.POST("/contact", h.Contact.Submit)
	}
}

// RegisterSwagger serves the interactive API documentation at /swagger/*.
// The docs package must be imported for its registration side effect.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or oversized bodies, with the API error body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = response.InternalServerError(c)
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}

	message := http.StatusText(he.Code)
	if msg, ok := he.Message.(string); ok && msg != "" {
		message = msg
	}
	_ = response.Error(c, he.Code, codeForStatus(he.Code), message, nil)
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return response.CodeNotFound
	case status == http.StatusGatewayTimeout:
		return response.CodeTimeout
	case status >= 500:
		return response.CodeInternalError
	default:
		return response.CodeInvalidRequest
	}
}
