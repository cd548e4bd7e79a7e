// Package domain contains the core business entities and rules for the destination catalog.
// These entities are transport-agnostic and form the foundation upon which all other components are built.
package domain

import "strings"

// Category classifies a destination. The set is closed: values outside
// AllCategories are rejected by IsValid and dropped by parsers.
type Category string

// Available destination categories, in catalog display order.
const (
	CategoryBeach      Category = "Beach"
	CategoryMountain   Category = "Mountain"
	CategoryCity       Category = "City"
	CategoryHistorical Category = "Historical"
	CategoryAdventure  Category = "Adventure"
)

var allCategories = []Category{
	CategoryBeach,
	CategoryMountain,
	CategoryCity,
	CategoryHistorical,
	CategoryAdventure,
}

// AllCategories returns every category in catalog display order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid checks if the category is one of the known values.
func (c Category) IsValid() bool {
	return c.order() >= 0
}

// order returns the display position of the category, or -1 if unknown.
func (c Category) order() int {
	for i, known := range allCategories {
		if c == known {
			return i
		}
	}
	return -1
}

// ParseCategory converts a string to a Category, ignoring case and surrounding spaces.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, known := range allCategories {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// NormalizeCategories deduplicates the given categories, drops unknown values
// and orders the result by display order. It returns nil when nothing remains,
// so an empty selection always has a single representation.
func NormalizeCategories(categories []Category) []Category {
	if len(categories) == 0 {
		return nil
	}

	var seen [8]bool
	for _, c := range categories {
		if i := c.order(); i >= 0 {
			seen[i] = true
		}
	}

	var out []Category
	for i, c := range allCategories {
		if seen[i] {
			out = append(out, c)
		}
	}
	return out
}

// CategoryInfo holds the presentation metadata for a category.
type CategoryInfo struct {
	// Name is the category this row describes
	Name Category `json:"name"`

	// Icon is a short emoji used as the category badge
	Icon string `json:"icon"`

	// Color is the gradient class pair used for the category swatch
	Color string `json:"color"`
}

// Destination is a static catalog record describing one travel location.
// Destinations are never created or mutated at runtime.
type Destination struct {
	// ID is the unique slug of the destination (e.g., "machu-picchu")
	ID string `json:"id"`

	// Name is the display name (e.g., "Machu Picchu")
	Name string `json:"name"`

	// Country is the display country name
	Country string `json:"country"`

	// Category is the destination category
	Category Category `json:"category"`

	// Price is the price per night in USD
	Price float64 `json:"price"`

	// Rating is the average guest rating in [0, 5]
	Rating float64 `json:"rating"`

	// Image is the URL of the hero image
	Image string `json:"image"`

	// Description is the long description used by the detail view and free-text search
	Description string `json:"description"`

	// ShortDescription is the one-line teaser used on cards
	ShortDescription string `json:"shortDescription"`

	// Highlights lists the main sights
	Highlights []string `json:"highlights"`

	// Activities lists typical activities
	Activities []string `json:"activities"`

	// BestTimeToVisit is a free-form season hint
	BestTimeToVisit string `json:"bestTimeToVisit"`

	// Duration is a free-form suggested stay (e.g., "3-5 days")
	Duration string `json:"duration"`

	// GroupSize is a free-form suggested group size (e.g., "2-4 people")
	GroupSize string `json:"groupSize"`
}
