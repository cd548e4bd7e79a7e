package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortKey_IsValid(t *testing.T) {
	tests := []struct {
		key  SortKey
		want bool
	}{
		{SortByRating, true},
		{SortByPrice, true},
		{SortByName, true},
		{"", false},
		{"Rating", false},
		{"popularity", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.IsValid())
		})
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input  string
		want   SortKey
		wantOK bool
	}{
		{input: "price", want: SortByPrice, wantOK: true},
		{input: " NAME ", want: SortByName, wantOK: true},
		{input: "rating", want: SortByRating, wantOK: true},
		{input: "", want: DefaultSortKey, wantOK: false},
		{input: "stars", want: DefaultSortKey, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.input))

			_, ok := LookupSortKey(tt.input)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria(250)

	assert.Empty(t, c.Query)
	assert.Nil(t, c.Categories)
	assert.Equal(t, 0.0, c.MinPrice)
	assert.Equal(t, 250.0, c.MaxPrice)
	assert.Equal(t, SortByRating, c.SortKey)
}

func TestFilterCriteria_Matches(t *testing.T) {
	d := Destination{
		ID:          "kyoto",
		Name:        "Kyoto",
		Country:     "Japan",
		Category:    CategoryHistorical,
		Price:       120,
		Description: "Ancient temples and gardens.",
	}

	tests := []struct {
		name   string
		modify func(c *FilterCriteria)
		want   bool
	}{
		{name: "defaults match", modify: func(c *FilterCriteria) {}, want: true},
		{name: "name query", modify: func(c *FilterCriteria) { c.Query = "KYO" }, want: true},
		{name: "country query", modify: func(c *FilterCriteria) { c.Query = "japan" }, want: true},
		{name: "description query", modify: func(c *FilterCriteria) { c.Query = "Temples" }, want: true},
		{name: "query miss", modify: func(c *FilterCriteria) { c.Query = "beach" }, want: false},
		{
			name:   "category hit",
			modify: func(c *FilterCriteria) { c.Categories = []Category{CategoryBeach, CategoryHistorical} },
			want:   true,
		},
		{
			name:   "category miss",
			modify: func(c *FilterCriteria) { c.Categories = []Category{CategoryBeach} },
			want:   false,
		},
		{name: "min bound inclusive", modify: func(c *FilterCriteria) { c.MinPrice = 120 }, want: true},
		{name: "max bound inclusive", modify: func(c *FilterCriteria) { c.MaxPrice = 120 }, want: true},
		{name: "below min", modify: func(c *FilterCriteria) { c.MinPrice = 120.01 }, want: false},
		{name: "above max", modify: func(c *FilterCriteria) { c.MaxPrice = 119.99 }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria(250)
			tt.modify(&c)
			assert.Equal(t, tt.want, c.Matches(d))
		})
	}
}

func TestCriteriaPatch_Apply(t *testing.T) {
	base := DefaultCriteria(250)
	base.Query = "old"

	query := "new"
	categories := []Category{CategoryCity, CategoryBeach, CategoryCity}
	minPrice := 50.0
	maxPrice := 10.0
	invalidKey := SortKey("stars")
	nameKey := SortByName

	t.Run("empty patch changes nothing", func(t *testing.T) {
		patch := CriteriaPatch{}
		assert.True(t, patch.IsEmpty())
		assert.Equal(t, base, patch.Apply(base))
	})

	t.Run("fields are replaced and categories normalised", func(t *testing.T) {
		patch := CriteriaPatch{
			Query:      &query,
			Categories: &categories,
			MinPrice:   &minPrice,
			MaxPrice:   &maxPrice,
			SortKey:    &nameKey,
		}
		assert.False(t, patch.IsEmpty())

		got := patch.Apply(base)

		assert.Equal(t, "new", got.Query)
		assert.Equal(t, []Category{CategoryBeach, CategoryCity}, got.Categories)
		assert.Equal(t, 50.0, got.MinPrice)
		assert.Equal(t, 10.0, got.MaxPrice, "no range validation")
		assert.Equal(t, SortByName, got.SortKey)
	})

	t.Run("invalid sort key falls back to default", func(t *testing.T) {
		got := CriteriaPatch{SortKey: &invalidKey}.Apply(base)
		assert.Equal(t, DefaultSortKey, got.SortKey)
	})

	t.Run("empty categories clear the selection", func(t *testing.T) {
		withCategory := base
		withCategory.Categories = []Category{CategoryBeach}
		empty := []Category{}

		got := CriteriaPatch{Categories: &empty}.Apply(withCategory)
		assert.Nil(t, got.Categories)
	})
}
