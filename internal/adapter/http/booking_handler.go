package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travelbanza/destination-catalog/internal/adapter/http/middleware"
	"github.com/travelbanza/destination-catalog/internal/adapter/http/response"
	"github.com/travelbanza/destination-catalog/internal/usecase"
)

// BookingHandler handles HTTP requests for quotes and bookings.
type BookingHandler struct {
	useCase usecase.BookingUseCase
}

// NewBookingHandler creates a new BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		useCase: uc,
	}
}

// Quote handles POST /api/v1/bookings/quote
//
// @Summary Price a stay
// @Description Prices a three-night stay for the party.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Quote request"
// @Success 200 {object} QuoteDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown destination"
// @Router /api/v1/bookings/quote [post]
func (h *BookingHandler) Quote(c echo.Context) error {
	var req QuoteRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	quote, err := h.useCase.Quote(c.Request().Context(), req.DestinationID, req.Travelers)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToQuoteDTO(quote))
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Book a stay
// @Description Validates the booking form, simulates payment processing and returns a confirmation. Nothing is stored and no payment is taken.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking form"
// @Success 201 {object} BookingConfirmationDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown destination"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req BookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	confirmation, err := h.useCase.Book(c.Request().Context(), ToDomainBooking(&req))
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, ToBookingConfirmationDTO(confirmation))
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	logger zerolog.Logger
}

// NewContactHandler creates a new ContactHandler that records messages in logger.
func NewContactHandler(logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		logger: logger,
	}
}

// Submit handles POST /api/v1/contact
//
// @Summary Send a message
// @Description Validates the contact form and records it in the service log.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form"
// @Success 202 {object} ContactReceiptDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	msg := ToDomainContact(&req)
	reference := uuid.NewString()

	h.logger.Info().
		Str("reference", reference).
		Str("request_id", middleware.GetRequestID(c)).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Int("message_length", len(msg.Message)).
		Msg("Contact message received")

	return response.Accepted(c, &ContactReceiptDTO{
		Reference: reference,
		Status:    "received",
	})
}
