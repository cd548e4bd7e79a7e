// Package integration provides helpers and integration tests for the destination catalog.
// Integration tests run requests through the real router, middleware chain,
// use cases and the embedded catalog.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	// Registers the API description served at /swagger/*
	_ "github.com/travelbanza/destination-catalog/docs"

	httpAdapter "github.com/travelbanza/destination-catalog/internal/adapter/http"
	"github.com/travelbanza/destination-catalog/internal/adapter/http/middleware"
	"github.com/travelbanza/destination-catalog/internal/catalog"
	"github.com/travelbanza/destination-catalog/internal/domain"
	"github.com/travelbanza/destination-catalog/internal/infrastructure/timeutil"
	"github.com/travelbanza/destination-catalog/internal/usecase"
)

// Now is the fixed time seen by bookings in integration tests.
var Now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// ServerConfig customises NewTestServer.
type ServerConfig struct {
	Catalog domain.Catalog
	Booking *usecase.BookingConfig
	Logger  *zerolog.Logger
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Clock *timeutil.MockClock
}

// NewTestServer creates a test server over the embedded catalog with instant bookings.
func NewTestServer() *TestServer {
	return NewTestServerWithConfig(ServerConfig{})
}

// NewTestServerWithConfig creates a test server with custom dependencies.
func NewTestServerWithConfig(cfg ServerConfig) *TestServer {
	store := cfg.Catalog
	if store == nil {
		store = catalog.Default()
	}

	booking := cfg.Booking
	if booking == nil {
		booking = &usecase.BookingConfig{ProcessingDelay: 0, Timeout: time.Second}
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	clock := timeutil.NewMockClock(Now)

	e := httpAdapter.NewServer(httpAdapter.ServerOptions{
		Logger:     log,
		Middleware: middleware.DefaultConfig(),
		Handlers: httpAdapter.Handlers{
			Destinations: httpAdapter.NewDestinationHandler(usecase.NewDestinationUseCase(store, log)),
			Bookings:     httpAdapter.NewBookingHandler(usecase.NewBookingUseCase(store, clock, booking, log)),
			Contact:      httpAdapter.NewContactHandler(log),
		},
		Swagger: true,
	})

	return &TestServer{
		Echo:  e,
		Clock: clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get makes a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Post makes a POST request with a JSON body.
func (ts *TestServer) Post(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// Browse requests the deep-link search endpoint with the given query string.
func (ts *TestServer) Browse(query string) Response {
	if query == "" {
		return ts.Get(httpAdapter.DestinationsPath)
	}
	return ts.Get(httpAdapter.DestinationsPath + "?" + query)
}

// ParseSearchResponse parses the response body as a search response.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an API error.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// IDs returns the destination ids of a search response in order.
func IDs(resp *httpAdapter.SearchResponseDTO) []string {
	ids := make([]string, len(resp.Destinations))
	for i, d := range resp.Destinations {
		ids[i] = d.ID
	}
	return ids
}

// BookingBody returns a valid booking form for destinationID travelling on date.
func BookingBody(destinationID, date string) map[string]interface{} {
	return map[string]interface{}{
		"destination_id": destinationID,
		"travel_date":    date,
		"travelers":      2,
		"first_name":     "Ada",
		"last_name":      "Lovelace",
		"email":          "ada@example.com",
		"phone":          "+44 20 7946 0000",
		"address":        "12 St James's Square",
		"city":           "London",
		"country":        "United Kingdom",
		"payment_method": "card",
		"card_number":    "4242 4242 4242 4242",
		"expiry_date":    "12/28",
		"cvv":            "123",
	}
}
