package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error writes an ErrorDetail with the given status. The request id set by
// the RequestID middleware is copied into the body so a client can quote it.
func Error(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// BadRequest writes a 400 with code invalid_request.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody is BadRequest for a body that could not be decoded.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, MsgInvalidRequestBody)
}

// ValidationError writes a 400 listing the offending fields.
func ValidationError(c echo.Context, details map[string]string) error {
	return Error(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

func ValidationErrorWithMessage(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// GatewayTimeout reports a booking that outlived its deadline.
func GatewayTimeout(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled shares the timeout code; only the message differs.
func RequestCancelled(c echo.Context) error {
	return Error(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
