package http

import (
	"strings"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

// ToDomainPatch converts a validated SearchDestinationsRequest to a domain.CriteriaPatch.
// Category names and the sort key are matched case-insensitively.
func ToDomainPatch(req *SearchDestinationsRequest) domain.CriteriaPatch {
	patch := domain.CriteriaPatch{
		Query:    req.Query,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}

	if req.Categories != nil {
		categories := make([]domain.Category, 0, len(*req.Categories))
		for _, raw := range *req.Categories {
			if c, ok := domain.ParseCategory(raw); ok {
				categories = append(categories, c)
			}
		}
		patch.Categories = &categories
	}

	if req.SortBy != nil {
		key := domain.ParseSortKey(*req.SortBy)
		patch.SortKey = &key
	}

	return patch
}

// ToDomainBooking converts a validated BookingRequest to a domain.BookingRequest.
func ToDomainBooking(req *BookingRequest) domain.BookingRequest {
	return domain.BookingRequest{
		DestinationID: strings.TrimSpace(req.DestinationID),
		TravelDate:    req.TravelDate,
		Travelers:     req.Travelers,
		Contact: domain.ContactDetails{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     strings.TrimSpace(req.Email),
			Phone:     strings.TrimSpace(req.Phone),
			Address:   strings.TrimSpace(req.Address),
			City:      strings.TrimSpace(req.City),
			Country:   strings.TrimSpace(req.Country),
		},
		Payment: domain.PaymentDetails{
			Method:     req.paymentMethod(),
			CardNumber: req.CardNumber,
			ExpiryDate: req.ExpiryDate,
			CVV:        req.CVV,
		},
		SpecialRequests: req.SpecialRequests,
	}
}

// ToDomainContact converts a validated ContactRequest to a domain.ContactMessage.
func ToDomainContact(req *ContactRequest) domain.ContactMessage {
	return domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
}
