package usecase

import "github.com/travelbanza/destination-catalog/internal/domain"

//go:generate mockgen -source=browser.go -destination=mock_navigator.go -package=usecase

// Navigator is the routing collaborator of a CatalogBrowser.
// It supplies the query string the session started from and accepts the
// canonical query string after every criteria change. ReplaceQuery must
// replace the current location rather than push a new history entry, so
// filter adjustments do not pollute back-button history.
type Navigator interface {
	// CurrentQuery returns the query string of the current location, without "?".
	CurrentQuery() string

	// ReplaceQuery replaces the query string of the current location.
	ReplaceQuery(query string)
}

// CatalogBrowser owns the filter criteria of one browsing session and derives
// the filtered, sorted view of the catalog from them.
//
// Results are recomputed on every call to CurrentResults; nothing is cached.
// A CatalogBrowser is not safe for concurrent use: it belongs to one session.
type CatalogBrowser struct {
	catalog  domain.Catalog
	nav      Navigator
	defaults domain.FilterCriteria
	criteria domain.FilterCriteria
	ignored  []string
}

// NewCatalogBrowser creates a browser over catalog. When nav is non-nil the
// initial criteria are decoded from nav.CurrentQuery() and every change is
// written back with nav.ReplaceQuery. A nil nav starts from default criteria.
func NewCatalogBrowser(catalog domain.Catalog, nav Navigator) *CatalogBrowser {
	defaults := domain.DefaultCriteria(catalog.MaxPrice())
	b := &CatalogBrowser{
		catalog:  catalog,
		nav:      nav,
		defaults: defaults,
		criteria: defaults,
	}

	if nav != nil {
		b.Load(nav.CurrentQuery())
	}

	return b
}

// Criteria returns the current criteria.
func (b *CatalogBrowser) Criteria() domain.FilterCriteria {
	c := b.criteria
	if c.Categories != nil {
		c.Categories = append([]domain.Category(nil), c.Categories...)
	}
	return c
}

// Defaults returns the criteria Clear resets to.
func (b *CatalogBrowser) Defaults() domain.FilterCriteria {
	return b.defaults
}

// IgnoredParams returns the query parameters that the last Load could not use.
func (b *CatalogBrowser) IgnoredParams() []string {
	return b.ignored
}

// SetCriteria merges patch into the current criteria. Fields the patch leaves
// nil keep their previous values. No range validation is performed.
func (b *CatalogBrowser) SetCriteria(patch domain.CriteriaPatch) {
	b.criteria = patch.Apply(b.criteria)
	b.sync()
}

// Clear resets the criteria to their defaults.
func (b *CatalogBrowser) Clear() {
	b.criteria = b.defaults
	b.ignored = nil
	b.sync()
}

// CurrentResults filters and sorts the catalog with the current criteria.
func (b *CatalogBrowser) CurrentResults() []domain.Destination {
	filtered := ApplyFilters(b.catalog.All(), b.criteria)
	return SortDestinations(filtered, b.criteria.SortKey)
}

// ToQueryString serializes the non-default criteria fields, without "?".
func (b *CatalogBrowser) ToQueryString() string {
	return EncodeQuery(b.criteria, b.defaults)
}

// FromQueryString parses qs against this catalog's defaults.
// The browser's own criteria are left untouched.
func (b *CatalogBrowser) FromQueryString(qs string) domain.FilterCriteria {
	criteria, _ := DecodeQuery(qs, b.defaults)
	return criteria
}

// Load adopts the criteria encoded in qs and returns the parameters that were
// ignored. Load reads from the router, so nothing is written back.
func (b *CatalogBrowser) Load(qs string) []string {
	b.criteria, b.ignored = DecodeQuery(qs, b.defaults)
	return b.ignored
}

func (b *CatalogBrowser) sync() {
	if b.nav != nil {
		b.nav.ReplaceQuery(b.ToQueryString())
	}
}
