package usecase

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

// Deep-link query parameter names.
const (
	ParamQuery      = "q"
	ParamCategories = "categories"
	ParamCategory   = "category"
	ParamMinPrice   = "minPrice"
	ParamMaxPrice   = "maxPrice"
	ParamSortBy     = "sortBy"
)

// categorySeparator joins categories inside the categories parameter.
const categorySeparator = ","

// EncodeQuery serializes the fields of c that differ from defaults into URL
// query parameters. Default-valued fields are omitted, so default criteria
// encode to the empty string. The result has no leading "?".
//
// NaN and infinite price bounds are omitted as well, since DecodeQuery
// rejects them; DecodeQuery(EncodeQuery(c)) == c only holds for finite prices.
func EncodeQuery(c, defaults domain.FilterCriteria) string {
	values := url.Values{}

	if c.Query != defaults.Query {
		values.Set(ParamQuery, c.Query)
	}

	if categories := domain.NormalizeCategories(c.Categories); len(categories) > 0 {
		names := make([]string, len(categories))
		for i, category := range categories {
			names[i] = string(category)
		}
		values.Set(ParamCategories, strings.Join(names, categorySeparator))
	}

	if c.MinPrice != defaults.MinPrice && isFinite(c.MinPrice) {
		values.Set(ParamMinPrice, formatPrice(c.MinPrice))
	}

	if c.MaxPrice != defaults.MaxPrice && isFinite(c.MaxPrice) {
		values.Set(ParamMaxPrice, formatPrice(c.MaxPrice))
	}

	if c.SortKey.IsValid() && c.SortKey != defaults.SortKey {
		values.Set(ParamSortBy, string(c.SortKey))
	}

	return values.Encode()
}

// DecodeQuery parses a deep-link query string into criteria.
//
// Parsing never fails. Missing parameters resolve to defaults; a malformed
// price, an unknown sort key or an unknown category falls back to its
// default and the parameter name is reported in ignored. Categories may be
// given comma-separated in "categories", repeated in "category", or both.
// A leading "?" is accepted.
func DecodeQuery(qs string, defaults domain.FilterCriteria) (criteria domain.FilterCriteria, ignored []string) {
	criteria = defaults
	criteria.Categories = nil

	values, err := url.ParseQuery(strings.TrimPrefix(qs, "?"))
	if err != nil {
		// ParseQuery keeps every pair it could decode; the rest is dropped.
		ignored = append(ignored, "query")
	}

	if values.Has(ParamQuery) {
		criteria.Query = values.Get(ParamQuery)
	}

	var categories []domain.Category
	var unknownCategory bool
	for _, raw := range categoryValues(values) {
		if raw == "" {
			continue
		}
		category, ok := domain.ParseCategory(raw)
		if !ok {
			unknownCategory = true
			continue
		}
		categories = append(categories, category)
	}
	// Unknown names are dropped, not kept as an unmatched filter: a link
	// naming only unknown categories shows the whole catalog.
	criteria.Categories = domain.NormalizeCategories(categories)
	if unknownCategory {
		ignored = append(ignored, ParamCategories)
	}

	if raw := values.Get(ParamMinPrice); raw != "" {
		if v, ok := parsePrice(raw); ok {
			criteria.MinPrice = v
		} else {
			ignored = append(ignored, ParamMinPrice)
		}
	}

	if raw := values.Get(ParamMaxPrice); raw != "" {
		if v, ok := parsePrice(raw); ok {
			criteria.MaxPrice = v
		} else {
			ignored = append(ignored, ParamMaxPrice)
		}
	}

	if raw := values.Get(ParamSortBy); raw != "" {
		if key, ok := domain.LookupSortKey(raw); ok {
			criteria.SortKey = key
		} else {
			ignored = append(ignored, ParamSortBy)
		}
	}

	return criteria, ignored
}

// categoryValues collects the raw category names from both accepted parameter forms.
func categoryValues(values url.Values) []string {
	var out []string
	for _, joined := range values[ParamCategories] {
		out = append(out, strings.Split(joined, categorySeparator)...)
	}
	out = append(out, values[ParamCategory]...)
	return out
}

// parsePrice parses a decimal price. NaN and infinities are rejected.
func parsePrice(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// formatPrice renders a price in the shortest form that parses back exactly.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
