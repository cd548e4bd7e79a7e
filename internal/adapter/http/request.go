// Package http provides the HTTP handler layer for the destination catalog API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

// SearchDestinationsRequest represents the request body for an explicit catalog search.
// Omitted fields keep their default values.
type SearchDestinationsRequest struct {
	// Query is a free-text search over name, country and description
	Query *string `json:"query,omitempty" example:"bali"`

	// Categories restricts results to these categories (Beach, Mountain, City, Historical, Adventure)
	Categories *[]string `json:"categories,omitempty" example:"Beach,City"`

	// MinPrice is the inclusive lower bound on price per night
	MinPrice *float64 `json:"min_price,omitempty" example:"50"`

	// MaxPrice is the inclusive upper bound on price per night
	MaxPrice *float64 `json:"max_price,omitempty" example:"200"`

	// SortBy selects the ordering: rating, price or name
	SortBy *string `json:"sort_by,omitempty" example:"price"`
}

// QuoteRequest represents the request body for a price quote.
type QuoteRequest struct {
	// DestinationID is the id of the destination to price
	DestinationID string `json:"destination_id" example:"santorini"`

	// Travelers is the party size (1-10, defaults to 2)
	Travelers int `json:"travelers,omitempty" example:"2"`
}

// BookingRequest represents the request body for a booking.
type BookingRequest struct {
	DestinationID   string `json:"destination_id" example:"santorini"`
	TravelDate      string `json:"travel_date,omitempty" example:"2026-06-01"`
	Travelers       int    `json:"travelers,omitempty" example:"2"`
	FirstName       string `json:"first_name" example:"Ada"`
	LastName        string `json:"last_name" example:"Lovelace"`
	Email           string `json:"email" example:"ada@example.com"`
	Phone           string `json:"phone" example:"+44 20 7946 0000"`
	Address         string `json:"address" example:"12 St James's Square"`
	City            string `json:"city" example:"London"`
	Country         string `json:"country" example:"United Kingdom"`
	PaymentMethod   string `json:"payment_method,omitempty" example:"card"`
	CardNumber      string `json:"card_number,omitempty" example:"4242 4242 4242 4242"`
	ExpiryDate      string `json:"expiry_date,omitempty" example:"12/28"`
	CVV             string `json:"cvv,omitempty" example:"123"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" example:"Ada Lovelace"`
	Email   string `json:"email" example:"ada@example.com"`
	Subject string `json:"subject" example:"Group booking"`
	Message string `json:"message" example:"Do you offer discounts for groups of ten?"`
}

// Validation patterns.
var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// The first message recorded for a field wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Unlike deep links, an explicit search rejects unknown values instead of
// falling back to defaults.
func (r *SearchDestinationsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Categories != nil {
		for i, raw := range *r.Categories {
			if _, ok := domain.ParseCategory(raw); !ok {
				errs.Add(fmt.Sprintf("categories[%d]", i),
					"category must be one of: Beach, Mountain, City, Historical, Adventure")
			}
		}
	}

	if r.MinPrice != nil && *r.MinPrice < 0 {
		errs.Add("min_price", "min_price must be a non-negative number")
	}
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.Add("max_price", "max_price must be a non-negative number")
	}
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		errs.Add("min_price", "min_price must be less than or equal to max_price")
	}

	if r.SortBy != nil {
		if _, ok := domain.LookupSortKey(*r.SortBy); !ok {
			errs.Add("sort_by", "sort_by must be one of: rating, price, name")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the quote request and returns any validation errors.
func (r *QuoteRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.DestinationID) == "" {
		errs.Add("destination_id", "Destination is required")
	}
	validateTravelers(errs, r.Travelers)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the booking form and returns any validation errors.
func (r *BookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.DestinationID) == "" {
		errs.Add("destination_id", "Destination is required")
	}
	if r.TravelDate != "" && !datePattern.MatchString(r.TravelDate) {
		errs.Add("travel_date", "Travel date must be in YYYY-MM-DD format")
	}
	validateTravelers(errs, r.Travelers)

	requireField(errs, "first_name", r.FirstName, "First name is required")
	requireField(errs, "last_name", r.LastName, "Last name is required")
	validateEmail(errs, r.Email)
	requireField(errs, "phone", r.Phone, "Phone number is required")
	requireField(errs, "address", r.Address, "Address is required")
	requireField(errs, "city", r.City, "City is required")
	requireField(errs, "country", r.Country, "Country is required")

	method := r.paymentMethod()
	if !method.IsValid() {
		errs.Add("payment_method", "Payment method must be one of: card, paypal")
	}
	if method == domain.PaymentCard {
		requireField(errs, "card_number", r.CardNumber, "Card number is required")
		requireField(errs, "expiry_date", r.ExpiryDate, "Expiry date is required")
		requireField(errs, "cvv", r.CVV, "CVV is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// paymentMethod returns the normalised payment method; card is the default.
func (r *BookingRequest) paymentMethod() domain.PaymentMethod {
	method := strings.ToLower(strings.TrimSpace(r.PaymentMethod))
	if method == "" {
		return domain.PaymentCard
	}
	return domain.PaymentMethod(method)
}

// Validate validates the contact form and returns any validation errors.
func (r *ContactRequest) Validate() error {
	errs := &ValidationErrors{}

	requireField(errs, "name", r.Name, "Name is required")
	validateEmail(errs, r.Email)
	requireField(errs, "subject", r.Subject, "Subject is required")
	requireField(errs, "message", r.Message, "Message is required")

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func requireField(errs *ValidationErrors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, message)
	}
}

func validateEmail(errs *ValidationErrors, email string) {
	if strings.TrimSpace(email) == "" {
		errs.Add("email", "Email is required")
		return
	}
	if !emailPattern.MatchString(email) {
		errs.Add("email", "Email is invalid")
	}
}

// validateTravelers accepts zero as "not given"; the use case applies the default.
func validateTravelers(errs *ValidationErrors, travelers int) {
	if travelers < 0 || travelers > domain.MaxTravelers {
		errs.Add("travelers", fmt.Sprintf("Travelers must be between 1 and %d", domain.MaxTravelers))
	}
}
