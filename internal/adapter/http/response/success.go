package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderContentLocation carries the canonical URL of a search result.
const HeaderContentLocation = "Content-Location"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	Destinations int    `json:"destinations"`
}

// Health writes a health check response reporting the catalog size.
func Health(c echo.Context, destinations int) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:       "ok",
		Destinations: destinations,
	})
}

// SearchResults writes a 200 OK response with search results.
// location is the canonical deep link of the search; it is sent as the
// Content-Location header so clients can replace their current URL with it.
func SearchResults(c echo.Context, location string, results any) error {
	if location != "" {
		c.Response().Header().Set(HeaderContentLocation, location)
	}
	return c.JSON(http.StatusOK, results)
}
