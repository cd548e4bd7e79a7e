package domain

import (
	"fmt"
	"strings"
	"time"
)

// Booking defaults.
const (
	// DefaultNights is the stay length every quote is priced for.
	DefaultNights = 3

	// DefaultTravelers is used when a request does not name a party size.
	DefaultTravelers = 2

	// MaxTravelers is the largest party a single booking accepts.
	MaxTravelers = 10

	// Currency is the currency every catalog price is expressed in.
	Currency = "USD"

	// BookingStatusConfirmed is the status of a completed booking.
	BookingStatusConfirmed = "confirmed"
)

// PaymentMethod identifies how a traveler intends to pay.
type PaymentMethod string

// Available payment methods.
const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
)

// IsValid checks if the payment method is a valid value.
func (p PaymentMethod) IsValid() bool {
	return p == PaymentCard || p == PaymentPayPal
}

// ContactDetails identifies the lead traveler.
type ContactDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// FullName returns the first and last name joined by a space.
func (c ContactDetails) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// PaymentDetails holds the payment fields of a booking form.
// Card fields are only meaningful for PaymentCard and are never stored.
type PaymentDetails struct {
	Method     PaymentMethod `json:"method"`
	CardNumber string        `json:"cardNumber,omitempty"`
	ExpiryDate string        `json:"expiryDate,omitempty"`
	CVV        string        `json:"cvv,omitempty"`
}

// BookingRequest is a submitted booking form.
type BookingRequest struct {
	DestinationID   string         `json:"destinationId"`
	TravelDate      string         `json:"travelDate,omitempty"`
	Travelers       int            `json:"travelers"`
	Contact         ContactDetails `json:"contact"`
	Payment         PaymentDetails `json:"payment"`
	SpecialRequests string         `json:"specialRequests,omitempty"`
}

// Quote is the price of a stay at one destination.
type Quote struct {
	DestinationID   string  `json:"destinationId"`
	DestinationName string  `json:"destinationName"`
	PricePerNight   float64 `json:"pricePerNight"`
	Travelers       int     `json:"travelers"`
	Nights          int     `json:"nights"`
	Total           float64 `json:"total"`
	Currency        string  `json:"currency"`
}

// NewQuote prices a DefaultNights stay at d for the given number of travelers.
// A non-positive travelers count is replaced by DefaultTravelers.
func NewQuote(d Destination, travelers int) Quote {
	if travelers <= 0 {
		travelers = DefaultTravelers
	}
	return Quote{
		DestinationID:   d.ID,
		DestinationName: d.Name,
		PricePerNight:   d.Price,
		Travelers:       travelers,
		Nights:          DefaultNights,
		Total:           d.Price * float64(travelers) * DefaultNights,
		Currency:        Currency,
	}
}

// PaymentSummary is the non-sensitive part of the payment details.
type PaymentSummary struct {
	Method    PaymentMethod `json:"method"`
	CardLast4 string        `json:"cardLast4,omitempty"`
}

// SummarizePayment strips everything but the method and the last four card digits.
func SummarizePayment(p PaymentDetails) PaymentSummary {
	summary := PaymentSummary{Method: p.Method}
	if p.Method != PaymentCard {
		return summary
	}

	var digits []rune
	for _, r := range p.CardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) >= 4 {
		summary.CardLast4 = string(digits[len(digits)-4:])
	}
	return summary
}

// BookingConfirmation is returned once a simulated booking completes.
type BookingConfirmation struct {
	ConfirmationID string         `json:"confirmationId"`
	Status         string         `json:"status"`
	Quote          Quote          `json:"quote"`
	TravelDate     string         `json:"travelDate,omitempty"`
	LeadTraveler   string         `json:"leadTraveler"`
	Email          string         `json:"email"`
	Payment        PaymentSummary `json:"payment"`
	BookedAt       time.Time      `json:"bookedAt"`
}

// String returns a short human-readable form used in logs.
func (b BookingConfirmation) String() string {
	return fmt.Sprintf("%s %s x%d %.2f %s", b.ConfirmationID, b.Quote.DestinationID,
		b.Quote.Travelers, b.Quote.Total, b.Quote.Currency)
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
