// Package http provides the HTTP handler layer for the destination catalog API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travelbanza/destination-catalog/internal/adapter/http/response"
	"github.com/travelbanza/destination-catalog/internal/domain"
	"github.com/travelbanza/destination-catalog/internal/usecase"
)

// DestinationHandler handles HTTP requests for catalog endpoints.
type DestinationHandler struct {
	useCase usecase.DestinationUseCase
}

// NewDestinationHandler creates a new DestinationHandler with the given use case.
func NewDestinationHandler(uc usecase.DestinationUseCase) *DestinationHandler {
	return &DestinationHandler{
		useCase: uc,
	}
}

// ListDestinations handles GET /api/v1/destinations
//
// @Summary Browse destinations through a deep link
// @Description Filters and sorts the catalog from URL query parameters. Malformed values fall back to defaults and are listed in metadata.ignored_params.
// @Tags destinations
// @Produce json
// @Param q query string false "Free-text search over name, country and description"
// @Param categories query string false "Comma-separated categories" example(Beach,City)
// @Param category query []string false "Category, may be repeated" collectionFormat(multi)
// @Param minPrice query number false "Inclusive minimum price per night"
// @Param maxPrice query number false "Inclusive maximum price per night"
// @Param sortBy query string false "rating (default), price or name"
// @Success 200 {object} SearchResponseDTO
// @Header 200 {string} Content-Location "Canonical deep link of the search"
// @Router /api/v1/destinations [get]
func (h *DestinationHandler) ListDestinations(c echo.Context) error {
	result, err := h.useCase.Search(c.Request().Context(), c.Request().URL.RawQuery)
	if err != nil {
		return handleError(c, err)
	}

	dto := ToSearchResponseDTO(result)
	return response.SearchResults(c, dto.Links.Self, dto)
}

// SearchDestinations handles POST /api/v1/destinations/search
//
// @Summary Search destinations
// @Description Applies explicit criteria on top of the defaults. Unknown categories, unknown sort keys and inverted price ranges are rejected.
// @Tags destinations
// @Accept json
// @Produce json
// @Param request body SearchDestinationsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/destinations/search [post]
func (h *DestinationHandler) SearchDestinations(c echo.Context) error {
	var req SearchDestinationsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.useCase.Refine(c.Request().Context(), ToDomainPatch(&req))
	if err != nil {
		return handleError(c, err)
	}

	dto := ToSearchResponseDTO(result)
	return response.SearchResults(c, dto.Links.Self, dto)
}

// GetDestination handles GET /api/v1/destinations/:id
//
// @Summary Get a destination
// @Tags destinations
// @Produce json
// @Param id path string true "Destination id" example(santorini)
// @Success 200 {object} DestinationDTO
// @Failure 404 {object} response.ErrorDetail "Unknown destination"
// @Router /api/v1/destinations/{id} [get]
func (h *DestinationHandler) GetDestination(c echo.Context) error {
	d, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToDestinationDTO(d))
}

// FilterMetadata handles GET /api/v1/destinations/filters
//
// @Summary Filter options
// @Description Categories with destination counts, the catalog price range, sort keys and default criteria.
// @Tags destinations
// @Produce json
// @Success 200 {object} FilterMetadataDTO
// @Router /api/v1/destinations/filters [get]
func (h *DestinationHandler) FilterMetadata(c echo.Context) error {
	return response.OK(c, ToFilterMetadataDTO(h.useCase.FilterMetadata(c.Request().Context())))
}

// Highlights handles GET /api/v1/destinations/highlights
//
// @Summary Landing page highlights
// @Tags destinations
// @Produce json
// @Success 200 {object} HighlightsDTO
// @Router /api/v1/destinations/highlights [get]
func (h *DestinationHandler) Highlights(c echo.Context) error {
	return response.OK(c, ToHighlightsDTO(h.useCase.Highlights(c.Request().Context())))
}

// ListCategories handles GET /api/v1/categories
//
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryDTO
// @Router /api/v1/categories [get]
func (h *DestinationHandler) ListCategories(c echo.Context) error {
	return response.OK(c, ToCategoryDTOs(h.useCase.Categories(c.Request().Context())))
}

// Health handles GET /health
// Reports the number of destinations served.
func (h *DestinationHandler) Health(c echo.Context) error {
	meta := h.useCase.FilterMetadata(c.Request().Context())
	total := 0
	for _, category := range meta.Categories {
		total += category.Count
	}
	return response.Health(c, total)
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrDestinationNotFound) {
		return response.NotFound(c, response.MsgDestinationNotFound)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return handleValidationError(c, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
