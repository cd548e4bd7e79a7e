// Package usecase provides the business logic for browsing the destination catalog.
package usecase

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

// Open price bounds used by the single-criterion helpers.
var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// ApplyFilters applies the given criteria to a list of destinations.
// It returns a new slice containing only destinations that match every filter.
//
// Behavior:
//   - Query: empty matches everything; otherwise a case-insensitive substring
//     match against name, country or description
//   - Categories: empty matches everything; otherwise membership
//   - Price: MinPrice <= price <= MaxPrice, inclusive on both ends
//   - A MinPrice above MaxPrice yields an empty result, never an error
//   - Sorting is not applied; catalog order is preserved
//   - Does NOT mutate the input slice
//
// Example usage:
//
//	criteria := domain.DefaultCriteria(catalog.MaxPrice())
//	criteria.Query = "bali"
//	matches := ApplyFilters(catalog.All(), criteria)
func ApplyFilters(destinations []domain.Destination, criteria domain.FilterCriteria) []domain.Destination {
	m := newMatcher(criteria)

	result := make([]domain.Destination, 0, len(destinations))
	for _, d := range destinations {
		if m.matches(d) {
			result = append(result, d)
		}
	}
	return result
}

// matcher holds the per-call state of ApplyFilters: the folded query and
// category set are computed once instead of once per destination.
type matcher struct {
	fold       cases.Caser
	query      string
	categories map[domain.Category]struct{}
	minPrice   float64
	maxPrice   float64
}

func newMatcher(criteria domain.FilterCriteria) *matcher {
	m := &matcher{
		fold:     cases.Fold(),
		minPrice: criteria.MinPrice,
		maxPrice: criteria.MaxPrice,
	}

	if criteria.Query != "" {
		m.query = m.fold.String(criteria.Query)
	}

	if len(criteria.Categories) > 0 {
		m.categories = make(map[domain.Category]struct{}, len(criteria.Categories))
		for _, c := range criteria.Categories {
			m.categories[c] = struct{}{}
		}
	}

	return m
}

func (m *matcher) matches(d domain.Destination) bool {
	if m.query != "" && !m.matchesQuery(d) {
		return false
	}

	if m.categories != nil {
		if _, ok := m.categories[d.Category]; !ok {
			return false
		}
	}

	return d.Price >= m.minPrice && d.Price <= m.maxPrice
}

func (m *matcher) matchesQuery(d domain.Destination) bool {
	return m.contains(d.Name) || m.contains(d.Country) || m.contains(d.Description)
}

func (m *matcher) contains(field string) bool {
	return strings.Contains(m.fold.String(field), m.query)
}

// FilterByQuery keeps destinations whose name, country or description
// contains query, ignoring case. Returns all destinations if query is empty.
func FilterByQuery(destinations []domain.Destination, query string) []domain.Destination {
	return ApplyFilters(destinations, domain.FilterCriteria{
		Query:    query,
		MinPrice: negInf,
		MaxPrice: posInf,
	})
}

// FilterByCategories keeps destinations in one of the given categories.
// Returns all destinations if categories is empty.
func FilterByCategories(destinations []domain.Destination, categories []domain.Category) []domain.Destination {
	return ApplyFilters(destinations, domain.FilterCriteria{
		Categories: categories,
		MinPrice:   negInf,
		MaxPrice:   posInf,
	})
}

// FilterByPrice keeps destinations priced within [minPrice, maxPrice].
func FilterByPrice(destinations []domain.Destination, minPrice, maxPrice float64) []domain.Destination {
	return ApplyFilters(destinations, domain.FilterCriteria{
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
}
