package http

import (
	"time"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

// DestinationsPath is the path of the deep-link search endpoint.
const DestinationsPath = "/api/v1/destinations"

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	Criteria     CriteriaDTO      `json:"criteria"`
	Query        string           `json:"query"`
	Links        LinksDTO         `json:"links"`
	Metadata     MetadataDTO      `json:"metadata"`
	Destinations []DestinationDTO `json:"destinations"`
}

// CriteriaDTO represents the effective criteria of a search.
type CriteriaDTO struct {
	Query      string   `json:"query"`
	Categories []string `json:"categories"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
	SortBy     string   `json:"sort_by"`
}

// LinksDTO holds the canonical links of a search.
type LinksDTO struct {
	// Self is the shareable deep link reproducing the search
	Self string `json:"self"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults  int      `json:"total_results"`
	CatalogSize   int      `json:"catalog_size"`
	IgnoredParams []string `json:"ignored_params,omitempty"`
}

// DestinationDTO is the data transfer object for a destination.
type DestinationDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	Category         string   `json:"category"`
	Price            float64  `json:"price"`
	Rating           float64  `json:"rating"`
	Image            string   `json:"image"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Highlights       []string `json:"highlights"`
	Activities       []string `json:"activities"`
	BestTimeToVisit  string   `json:"best_time_to_visit"`
	Duration         string   `json:"duration"`
	GroupSize        string   `json:"group_size"`
}

// CategoryDTO represents a category and its display metadata.
type CategoryDTO struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Count *int   `json:"count,omitempty"`
}

// PriceRangeDTO represents an inclusive price interval.
type PriceRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadataDTO describes the values a filter UI can offer.
type FilterMetadataDTO struct {
	Categories []CategoryDTO `json:"categories"`
	PriceRange PriceRangeDTO `json:"price_range"`
	SortKeys   []string      `json:"sort_keys"`
	Defaults   CriteriaDTO   `json:"defaults"`
}

// HighlightsDTO groups the destinations promoted on the landing page.
type HighlightsDTO struct {
	Popular  []DestinationDTO `json:"popular"`
	Featured []DestinationDTO `json:"featured"`
}

// QuoteDTO represents a price quote.
type QuoteDTO struct {
	DestinationID   string  `json:"destination_id"`
	DestinationName string  `json:"destination_name"`
	PricePerNight   float64 `json:"price_per_night"`
	Travelers       int     `json:"travelers"`
	Nights          int     `json:"nights"`
	Total           float64 `json:"total"`
	Currency        string  `json:"currency"`
}

// BookingConfirmationDTO represents a confirmed booking.
type BookingConfirmationDTO struct {
	ConfirmationID string   `json:"confirmation_id"`
	Status         string   `json:"status"`
	Quote          QuoteDTO `json:"quote"`
	TravelDate     string   `json:"travel_date,omitempty"`
	LeadTraveler   string   `json:"lead_traveler"`
	Email          string   `json:"email"`
	PaymentMethod  string   `json:"payment_method"`
	CardLast4      string   `json:"card_last4,omitempty"`
	BookedAt       string   `json:"booked_at"`
}

// ContactReceiptDTO acknowledges a contact form submission.
type ContactReceiptDTO struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// SearchLink returns the deep link for a canonical query string.
func SearchLink(query string) string {
	if query == "" {
		return DestinationsPath
	}
	return DestinationsPath + "?" + query
}

// ToSearchResponseDTO converts a domain SearchResponse to a SearchResponseDTO.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	return &SearchResponseDTO{
		Criteria: ToCriteriaDTO(resp.Criteria),
		Query:    resp.Query,
		Links:    LinksDTO{Self: SearchLink(resp.Query)},
		Metadata: MetadataDTO{
			TotalResults:  resp.Metadata.TotalResults,
			CatalogSize:   resp.Metadata.CatalogSize,
			IgnoredParams: resp.Metadata.IgnoredParams,
		},
		Destinations: ToDestinationDTOs(resp.Destinations),
	}
}

// ToCriteriaDTO converts domain criteria to a CriteriaDTO.
func ToCriteriaDTO(c domain.FilterCriteria) CriteriaDTO {
	categories := make([]string, len(c.Categories))
	for i, category := range c.Categories {
		categories[i] = string(category)
	}

	return CriteriaDTO{
		Query:      c.Query,
		Categories: categories,
		MinPrice:   c.MinPrice,
		MaxPrice:   c.MaxPrice,
		SortBy:     string(c.SortKey),
	}
}

// ToDestinationDTO converts a domain Destination to a DestinationDTO.
func ToDestinationDTO(d *domain.Destination) DestinationDTO {
	return DestinationDTO{
		ID:               d.ID,
		Name:             d.Name,
		Country:          d.Country,
		Category:         string(d.Category),
		Price:            d.Price,
		Rating:           d.Rating,
		Image:            d.Image,
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		Highlights:       nonNil(d.Highlights),
		Activities:       nonNil(d.Activities),
		BestTimeToVisit:  d.BestTimeToVisit,
		Duration:         d.Duration,
		GroupSize:        d.GroupSize,
	}
}

// ToDestinationDTOs converts a list of destinations, never returning nil.
func ToDestinationDTOs(destinations []domain.Destination) []DestinationDTO {
	out := make([]DestinationDTO, len(destinations))
	for i := range destinations {
		out[i] = ToDestinationDTO(&destinations[i])
	}
	return out
}

// ToCategoryDTOs converts the category display table.
func ToCategoryDTOs(infos []domain.CategoryInfo) []CategoryDTO {
	out := make([]CategoryDTO, len(infos))
	for i, info := range infos {
		out[i] = CategoryDTO{Name: string(info.Name), Icon: info.Icon, Color: info.Color}
	}
	return out
}

// ToFilterMetadataDTO converts domain filter metadata.
func ToFilterMetadataDTO(m domain.FilterMetadata) FilterMetadataDTO {
	categories := make([]CategoryDTO, len(m.Categories))
	for i, c := range m.Categories {
		count := c.Count
		categories[i] = CategoryDTO{Name: string(c.Name), Icon: c.Icon, Color: c.Color, Count: &count}
	}

	sortKeys := make([]string, len(m.SortKeys))
	for i, k := range m.SortKeys {
		sortKeys[i] = string(k)
	}

	return FilterMetadataDTO{
		Categories: categories,
		PriceRange: PriceRangeDTO{Min: m.PriceRange.Min, Max: m.PriceRange.Max},
		SortKeys:   sortKeys,
		Defaults:   ToCriteriaDTO(m.Defaults),
	}
}

// ToHighlightsDTO converts the landing page highlights.
func ToHighlightsDTO(h domain.Highlights) HighlightsDTO {
	return HighlightsDTO{
		Popular:  ToDestinationDTOs(h.Popular),
		Featured: ToDestinationDTOs(h.Featured),
	}
}

// ToQuoteDTO converts a domain Quote to a QuoteDTO.
func ToQuoteDTO(q *domain.Quote) QuoteDTO {
	return QuoteDTO{
		DestinationID:   q.DestinationID,
		DestinationName: q.DestinationName,
		PricePerNight:   q.PricePerNight,
		Travelers:       q.Travelers,
		Nights:          q.Nights,
		Total:           q.Total,
		Currency:        q.Currency,
	}
}

// ToBookingConfirmationDTO converts a domain BookingConfirmation.
func ToBookingConfirmationDTO(b *domain.BookingConfirmation) *BookingConfirmationDTO {
	if b == nil {
		return nil
	}

	return &BookingConfirmationDTO{
		ConfirmationID: b.ConfirmationID,
		Status:         b.Status,
		Quote:          ToQuoteDTO(&b.Quote),
		TravelDate:     b.TravelDate,
		LeadTraveler:   b.LeadTraveler,
		Email:          b.Email,
		PaymentMethod:  string(b.Payment.Method),
		CardLast4:      b.Payment.CardLast4,
		BookedAt:       b.BookedAt.Format(time.RFC3339),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
