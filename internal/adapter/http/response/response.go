// Package response writes the JSON bodies of the destination catalog API.
// Every error leaves the service as an ErrorDetail.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// Details maps a request field to its validation message
	Details map[string]string `json:"details,omitempty"`

	RequestID string `json:"request_id,omitempty"`
}

// Machine-readable values of ErrorDetail.Code.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeNotFound        = "not_found"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

const (
	MsgInvalidRequestBody  = "Failed to parse request body"
	MsgValidationFailed    = "Request validation failed"
	MsgDestinationNotFound = "Destination not found"
	MsgTimeout             = "Request timed out"
	MsgRequestCancelled    = "Request was cancelled"
	MsgInternalError       = "An unexpected error occurred"
)

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created is used for confirmed bookings.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// Accepted is used for contact messages, which are only logged.
func Accepted(c echo.Context, data any) error {
	return c.JSON(http.StatusAccepted, data)
}
