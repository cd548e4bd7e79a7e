package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/travelbanza/destination-catalog/internal/catalog"
	"github.com/travelbanza/destination-catalog/internal/domain"
)

// createTestDestination creates a destination for filter and sort testing.
func createTestDestination(id, name, country string, category domain.Category, price, rating float64) domain.Destination {
	return domain.Destination{
		ID:               id,
		Name:             name,
		Country:          country,
		Category:         category,
		Price:            price,
		Rating:           rating,
		Image:            "https://example.com/" + id + ".jpg",
		Description:      "A trip to " + name + ".",
		ShortDescription: name,
		Highlights:       []string{"Sights"},
		Activities:       []string{"Walking"},
		BestTimeToVisit:  "All year",
		Duration:         "3-4 days",
		GroupSize:        "2-10 people",
	}
}

// embeddedCatalog returns the catalog shipped with the service.
func embeddedCatalog(t testing.TB) *catalog.Store {
	t.Helper()
	store := catalog.Default()
	require.Equal(t, 9, store.Len())
	return store
}

// ids extracts destination ids in order.
func ids(destinations []domain.Destination) []string {
	out := make([]string, len(destinations))
	for i, d := range destinations {
		out[i] = d.ID
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
