package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

// nameCollation is the language whose collation rules order destination names.
var nameCollation = language.English

// SortDestinations sorts destinations according to the specified sort key.
// Uses stable sorting so destinations with equal keys keep their catalog order.
//
// Sort keys:
//   - SortByRating (default): descending by Rating (best rated first)
//   - SortByPrice: ascending by Price (cheapest first)
//   - SortByName: ascending by Name using locale-aware collation
//
// Behavior:
//   - Returns empty slice for empty input
//   - Empty or invalid sortKey defaults to SortByRating
//   - Does NOT mutate the input slice
func SortDestinations(destinations []domain.Destination, sortKey domain.SortKey) []domain.Destination {
	if len(destinations) == 0 {
		return destinations
	}

	// Copy to avoid mutating input
	result := make([]domain.Destination, len(destinations))
	copy(result, destinations)

	if len(result) == 1 {
		return result
	}

	if !sortKey.IsValid() {
		sortKey = domain.DefaultSortKey
	}

	switch sortKey {
	case domain.SortByRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortByName:
		// A Collator is not safe for concurrent use; one per call.
		col := collate.New(nameCollation)
		sort.SliceStable(result, func(i, j int) bool {
			return col.CompareString(result[i].Name, result[j].Name) < 0
		})
	}

	return result
}
