package domain

// SearchResponse represents one evaluated catalog search.
type SearchResponse struct {
	// Criteria contains the effective criteria after defaults were applied
	Criteria FilterCriteria `json:"criteria"`

	// Query is the canonical deep-link query string for Criteria (without "?")
	Query string `json:"query"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Destinations contains the filtered and sorted results
	Destinations []Destination `json:"destinations"`
}

// SearchMetadata contains metadata about a catalog search.
type SearchMetadata struct {
	// TotalResults is the number of destinations returned
	TotalResults int `json:"totalResults"`

	// CatalogSize is the number of destinations in the catalog
	CatalogSize int `json:"catalogSize"`

	// IgnoredParams lists query parameters that were malformed and fell back to defaults
	IgnoredParams []string `json:"ignoredParams,omitempty"`
}

// NewSearchResponse creates a SearchResponse and fills in the result count.
func NewSearchResponse(criteria FilterCriteria, query string, destinations []Destination, metadata SearchMetadata) SearchResponse {
	if destinations == nil {
		destinations = []Destination{}
	}
	metadata.TotalResults = len(destinations)

	return SearchResponse{
		Criteria:     criteria,
		Query:        query,
		Metadata:     metadata,
		Destinations: destinations,
	}
}

// CategoryCount is a category together with the number of destinations in it.
type CategoryCount struct {
	CategoryInfo
	Count int `json:"count"`
}

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata describes the values a filter UI can offer for the catalog.
type FilterMetadata struct {
	Categories []CategoryCount `json:"categories"`
	PriceRange PriceRange      `json:"priceRange"`
	SortKeys   []SortKey       `json:"sortKeys"`
	Defaults   FilterCriteria  `json:"defaults"`
}

// Highlights groups the destinations promoted on the landing page.
type Highlights struct {
	Popular  []Destination `json:"popular"`
	Featured []Destination `json:"featured"`
}
