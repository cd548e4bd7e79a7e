package http

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func validBookingRequest() BookingRequest {
	return BookingRequest{
		DestinationID: "santorini",
		TravelDate:    "2026-06-01",
		Travelers:     2,
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		Phone:         "+44 20 7946 0000",
		Address:       "12 St James's Square",
		City:          "London",
		Country:       "United Kingdom",
		PaymentMethod: "card",
		CardNumber:    "4242 4242 4242 4242",
		ExpiryDate:    "12/28",
		CVV:           "123",
	}
}

// fieldsOf returns the validation error map, or nil when err is nil.
func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	errs, ok := err.(*ValidationErrors)
	require.True(t, ok, "expected *ValidationErrors, got %T", err)
	return errs.ToMap()
}

func TestSearchDestinationsRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        SearchDestinationsRequest
		wantFields []string
	}{
		{name: "empty request", req: SearchDestinationsRequest{}},
		{
			name: "all fields valid",
			req: SearchDestinationsRequest{
				Query:      strPtr("bali"),
				Categories: &[]string{"beach", " City "},
				MinPrice:   floatPtr(50),
				MaxPrice:   floatPtr(200),
				SortBy:     strPtr("Price"),
			},
		},
		{name: "equal bounds", req: SearchDestinationsRequest{MinPrice: floatPtr(100), MaxPrice: floatPtr(100)}},
		{name: "empty categories clears selection", req: SearchDestinationsRequest{Categories: &[]string{}}},
		{name: "unknown category", req: SearchDestinationsRequest{Categories: &[]string{"Desert"}}, wantFields: []string{"categories[0]"}},
		{name: "negative bounds", req: SearchDestinationsRequest{MinPrice: floatPtr(-1), MaxPrice: floatPtr(-2)}, wantFields: []string{"min_price", "max_price"}},
		{name: "inverted bounds", req: SearchDestinationsRequest{MinPrice: floatPtr(300), MaxPrice: floatPtr(100)}, wantFields: []string{"min_price"}},
		{name: "unknown sort", req: SearchDestinationsRequest{SortBy: strPtr("distance")}, wantFields: []string{"sort_by"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			fields := fieldsOf(t, err)
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       QuoteRequest
		wantField string
	}{
		{name: "valid", req: QuoteRequest{DestinationID: "bali", Travelers: 3}},
		{name: "travelers omitted", req: QuoteRequest{DestinationID: "bali"}},
		{name: "upper bound", req: QuoteRequest{DestinationID: "bali", Travelers: domain.MaxTravelers}},
		{name: "blank destination", req: QuoteRequest{DestinationID: "   "}, wantField: "destination_id"},
		{name: "negative travelers", req: QuoteRequest{DestinationID: "bali", Travelers: -1}, wantField: "travelers"},
		{name: "too many travelers", req: QuoteRequest{DestinationID: "bali", Travelers: domain.MaxTravelers + 1}, wantField: "travelers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldsOf(t, err), tt.wantField)
		})
	}
}

func TestBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *BookingRequest)
		wantErrs map[string]string
	}{
		{name: "valid card booking", mutate: func(r *BookingRequest) {}},
		{name: "payment method defaults to card", mutate: func(r *BookingRequest) { r.PaymentMethod = "" }},
		{
			name: "paypal skips card fields",
			mutate: func(r *BookingRequest) {
				r.PaymentMethod = "PayPal"
				r.CardNumber, r.ExpiryDate, r.CVV = "", "", ""
			},
		},
		{name: "travel date optional", mutate: func(r *BookingRequest) { r.TravelDate = "" }},
		{
			name:     "travel date format",
			mutate:   func(r *BookingRequest) { r.TravelDate = "01/06/2026" },
			wantErrs: map[string]string{"travel_date": "Travel date must be in YYYY-MM-DD format"},
		},
		{
			name: "missing contact details",
			mutate: func(r *BookingRequest) {
				r.FirstName, r.LastName, r.Email, r.Phone = "", " ", "", ""
				r.Address, r.City, r.Country = "", "", ""
			},
			wantErrs: map[string]string{
				"first_name": "First name is required",
				"last_name":  "Last name is required",
				"email":      "Email is required",
				"phone":      "Phone number is required",
				"address":    "Address is required",
				"city":       "City is required",
				"country":    "Country is required",
			},
		},
		{
			name:     "invalid email",
			mutate:   func(r *BookingRequest) { r.Email = "ada@example" },
			wantErrs: map[string]string{"email": "Email is invalid"},
		},
		{
			name: "missing card fields",
			mutate: func(r *BookingRequest) {
				r.CardNumber, r.ExpiryDate, r.CVV = "", "", ""
			},
			wantErrs: map[string]string{
				"card_number": "Card number is required",
				"expiry_date": "Expiry date is required",
				"cvv":         "CVV is required",
			},
		},
		{
			name:     "unknown payment method",
			mutate:   func(r *BookingRequest) { r.PaymentMethod = "cash" },
			wantErrs: map[string]string{"payment_method": "Payment method must be one of: card, paypal"},
		},
		{
			name:     "too many travelers",
			mutate:   func(r *BookingRequest) { r.Travelers = 12 },
			wantErrs: map[string]string{"travelers": "Travelers must be between 1 and 10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErrs == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErrs, fieldsOf(t, err))
		})
	}
}

func TestContactRequest_Validate(t *testing.T) {
	valid := ContactRequest{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	assert.NoError(t, valid.Validate())

	err := (&ContactRequest{Email: "nope"}).Validate()
	assert.Equal(t, map[string]string{
		"name":    "Name is required",
		"email":   "Email is invalid",
		"subject": "Subject is required",
		"message": "Message is required",
	}, fieldsOf(t, err))
}

func TestValidationErrorsError(t *testing.T) {
	errs := &ValidationErrors{}
	errs.Add("field1", "error1")
	errs.Add("field2", "error2")

	// Error() returns the first error's message
	assert.Equal(t, "error1", errs.Error())

	emptyErrs := &ValidationErrors{}
	assert.Equal(t, "validation failed", emptyErrs.Error())
	assert.False(t, emptyErrs.HasErrors())
}

func TestValidationErrors_ToMapKeepsFirstMessage(t *testing.T) {
	errs := &ValidationErrors{}
	errs.Add("email", "Email is required")
	errs.Add("email", "Email is invalid")

	assert.Equal(t, map[string]string{"email": "Email is required"}, errs.ToMap())
}

// =====================================================
// Converter Tests
// =====================================================

func TestToDomainPatch(t *testing.T) {
	req := &SearchDestinationsRequest{
		Query:      strPtr("island"),
		Categories: &[]string{"beach", "ADVENTURE"},
		MaxPrice:   floatPtr(200),
		SortBy:     strPtr(" Name "),
	}

	patch := ToDomainPatch(req)

	require.NotNil(t, patch.Query)
	assert.Equal(t, "island", *patch.Query)
	require.NotNil(t, patch.Categories)
	assert.Equal(t, []domain.Category{domain.CategoryBeach, domain.CategoryAdventure}, *patch.Categories)
	assert.Nil(t, patch.MinPrice)
	require.NotNil(t, patch.MaxPrice)
	assert.Equal(t, 200.0, *patch.MaxPrice)
	require.NotNil(t, patch.SortKey)
	assert.Equal(t, domain.SortByName, *patch.SortKey)
}

func TestToDomainPatch_Empty(t *testing.T) {
	patch := ToDomainPatch(&SearchDestinationsRequest{})

	assert.True(t, patch.IsEmpty())
}

func TestToDomainBooking(t *testing.T) {
	req := validBookingRequest()
	req.FirstName = "  Ada "
	req.DestinationID = " santorini "
	req.PaymentMethod = "PAYPAL"
	req.SpecialRequests = "Sea view"

	b := ToDomainBooking(&req)

	assert.Equal(t, "santorini", b.DestinationID)
	assert.Equal(t, "Ada", b.Contact.FirstName)
	assert.Equal(t, "Ada Lovelace", b.Contact.FullName())
	assert.Equal(t, domain.PaymentPayPal, b.Payment.Method)
	assert.Equal(t, "Sea view", b.SpecialRequests)
	assert.Equal(t, 2, b.Travelers)
}

func TestToDomainContact(t *testing.T) {
	msg := ToDomainContact(&ContactRequest{Name: " Ada ", Email: "ada@example.com ", Subject: " Hi", Message: "  keep spacing  "})

	assert.Equal(t, "Ada", msg.Name)
	assert.Equal(t, "ada@example.com", msg.Email)
	assert.Equal(t, "Hi", msg.Subject)
	assert.Equal(t, "  keep spacing  ", msg.Message)
}

func TestToBookingConfirmationDTO(t *testing.T) {
	assert.Nil(t, ToBookingConfirmationDTO(nil))

	conf := &domain.BookingConfirmation{
		ConfirmationID: "TB-ABCD1234",
		Status:         domain.BookingStatusConfirmed,
		Quote:          domain.Quote{DestinationID: "bali", Travelers: 2, Nights: 3, Total: 720, Currency: "USD"},
		LeadTraveler:   "Ada Lovelace",
		Payment:        domain.PaymentSummary{Method: domain.PaymentCard, CardLast4: "4242"},
		BookedAt:       time.Date(2026, 3, 14, 12, 30, 0, 0, time.FixedZone("WITA", 8*3600)),
	}

	dto := ToBookingConfirmationDTO(conf)

	assert.Equal(t, "2026-03-14T12:30:00+08:00", dto.BookedAt)
	assert.Equal(t, "card", dto.PaymentMethod)
	assert.Equal(t, 720.0, dto.Quote.Total)
}

func TestSearchLink(t *testing.T) {
	assert.Equal(t, "/api/v1/destinations", SearchLink(""))
	assert.Equal(t, "/api/v1/destinations?sortBy=price", SearchLink("sortBy=price"))
	assert.False(t, strings.HasSuffix(SearchLink(""), "?"))
}
