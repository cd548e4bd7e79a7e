package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// SortKey defines the available orderings for catalog results.
type SortKey string

// Available sort keys.
const (
	// SortByRating sorts by rating descending (default)
	SortByRating SortKey = "rating"

	// SortByPrice sorts by price per night ascending (cheapest first)
	SortByPrice SortKey = "price"

	// SortByName sorts by destination name ascending
	SortByName SortKey = "name"
)

// DefaultSortKey is used when no valid sort key is given.
const DefaultSortKey = SortByRating

// IsValid checks if the sort key is a valid value.
func (s SortKey) IsValid() bool {
	switch s {
	case SortByRating, SortByPrice, SortByName:
		return true
	default:
		return false
	}
}

// LookupSortKey converts a string to a SortKey, reporting whether it was recognised.
// Matching ignores case and surrounding spaces.
func LookupSortKey(s string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if key.IsValid() {
		return key, true
	}
	return "", false
}

// ParseSortKey converts a string to a SortKey.
// Returns DefaultSortKey if the string is empty or invalid.
func ParseSortKey(s string) SortKey {
	if key, ok := LookupSortKey(s); ok {
		return key
	}
	return DefaultSortKey
}

// FilterCriteria holds the user-chosen filter and sort parameters for one browsing session.
type FilterCriteria struct {
	// Query is a free-text search matched against name, country and description
	Query string `json:"query"`

	// Categories restricts results to these categories; empty means no restriction
	Categories []Category `json:"categories,omitempty"`

	// MinPrice is the inclusive lower bound on price per night
	MinPrice float64 `json:"minPrice"`

	// MaxPrice is the inclusive upper bound on price per night
	MaxPrice float64 `json:"maxPrice"`

	// SortKey selects the result ordering
	SortKey SortKey `json:"sortBy"`
}

// DefaultCriteria returns the criteria of a fresh session for a catalog whose
// highest price is maxPrice.
func DefaultCriteria(maxPrice float64) FilterCriteria {
	return FilterCriteria{
		Query:      "",
		Categories: nil,
		MinPrice:   0,
		MaxPrice:   maxPrice,
		SortKey:    DefaultSortKey,
	}
}

// HasCategory reports whether the criteria select the given category.
func (c FilterCriteria) HasCategory(category Category) bool {
	for _, selected := range c.Categories {
		if selected == category {
			return true
		}
	}
	return false
}

// Matches checks if a destination passes every filter of the criteria.
// Sorting is not considered.
func (c FilterCriteria) Matches(d Destination) bool {
	if c.Query != "" {
		fold := cases.Fold()
		q := fold.String(c.Query)
		if !strings.Contains(fold.String(d.Name), q) &&
			!strings.Contains(fold.String(d.Country), q) &&
			!strings.Contains(fold.String(d.Description), q) {
			return false
		}
	}

	if len(c.Categories) > 0 && !c.HasCategory(d.Category) {
		return false
	}

	return d.Price >= c.MinPrice && d.Price <= c.MaxPrice
}

// CriteriaPatch is a partial update of FilterCriteria.
// A nil field leaves the previous value untouched.
type CriteriaPatch struct {
	Query      *string
	Categories *[]Category
	MinPrice   *float64
	MaxPrice   *float64
	SortKey    *SortKey
}

// IsEmpty reports whether the patch changes nothing.
func (p CriteriaPatch) IsEmpty() bool {
	return p.Query == nil && p.Categories == nil && p.MinPrice == nil &&
		p.MaxPrice == nil && p.SortKey == nil
}

// Apply merges the patch into c and returns the result.
// No range validation is performed; categories are normalised and an
// invalid sort key falls back to DefaultSortKey.
func (p CriteriaPatch) Apply(c FilterCriteria) FilterCriteria {
	if p.Query != nil {
		c.Query = *p.Query
	}
	if p.Categories != nil {
		c.Categories = NormalizeCategories(*p.Categories)
	}
	if p.MinPrice != nil {
		c.MinPrice = *p.MinPrice
	}
	if p.MaxPrice != nil {
		c.MaxPrice = *p.MaxPrice
	}
	if p.SortKey != nil {
		c.SortKey = *p.SortKey
		if !c.SortKey.IsValid() {
			c.SortKey = DefaultSortKey
		}
	}
	return c
}
