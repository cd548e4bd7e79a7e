package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Health(c, 9))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, 9, result.Destinations)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(c echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "bad request",
			write:       func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "invalid body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "validation message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "Custom validation message") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "Custom validation message",
		},
		{
			name:        "not found",
			write:       func(c echo.Context) error { return NotFound(c, MsgDestinationNotFound) },
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: MsgDestinationNotFound,
		},
		{
			name:        "timeout",
			write:       GatewayTimeout,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgTimeout,
		},
		{
			name:        "cancelled",
			write:       RequestCancelled,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgRequestCancelled,
		},
		{
			name:        "internal error",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var result ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Empty(t, result.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()
	details := map[string]string{
		"email":      "Email is invalid",
		"first_name": "First name is required",
	}

	require.NoError(t, ValidationError(c, details))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestSearchResults(t *testing.T) {
	c, rec := setupEcho()
	results := map[string]int{"total": 3}

	require.NoError(t, SearchResults(c, "/api/v1/destinations?q=bali", results))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/v1/destinations?q=bali", rec.Header().Get(HeaderContentLocation))
	assert.JSONEq(t, `{"total":3}`, rec.Body.String())
}

func TestSearchResults_NoLocation(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, SearchResults(c, "", []string{}))

	assert.Empty(t, rec.Header().Get(HeaderContentLocation))
}

func TestSuccessWriters(t *testing.T) {
	tests := []struct {
		name       string
		write      func(c echo.Context, data any) error
		wantStatus int
	}{
		{name: "ok", write: OK, wantStatus: http.StatusOK},
		{name: "created", write: Created, wantStatus: http.StatusCreated},
		{name: "accepted", write: Accepted, wantStatus: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c, map[string]string{"id": "x"}))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, `{"id":"x"}`, rec.Body.String())
		})
	}
}

func TestError_CarriesRequestID(t *testing.T) {
	c, rec := setupEcho()
	c.Response().Header().Set(echo.HeaderXRequestID, "req-7")

	require.NoError(t, NotFound(c, MsgDestinationNotFound))

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "req-7", result.RequestID)
	assert.Equal(t, CodeNotFound, result.Code)
}

func TestError_OmitsMissingRequestID(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Error(c, http.StatusTeapot, CodeInvalidRequest, "short and stout", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotContains(t, rec.Body.String(), "request_id")
}
