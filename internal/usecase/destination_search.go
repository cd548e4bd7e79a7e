package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

// Landing page highlight windows, in catalog order.
const (
	PopularCount  = 6
	FeaturedStart = 6
	FeaturedCount = 3
)

// DestinationUseCase defines the read operations over the destination catalog.
type DestinationUseCase interface {
	// Search evaluates a deep-link query string. Parsing is lenient: malformed
	// parameters fall back to defaults and are reported in the metadata.
	Search(ctx context.Context, rawQuery string) (*domain.SearchResponse, error)

	// Refine applies an explicit criteria patch on top of the defaults.
	Refine(ctx context.Context, patch domain.CriteriaPatch) (*domain.SearchResponse, error)

	// Get returns a single destination by id.
	Get(ctx context.Context, id string) (*domain.Destination, error)

	// Categories returns the category display table.
	Categories(ctx context.Context) []domain.CategoryInfo

	// FilterMetadata describes the values a filter UI can offer.
	FilterMetadata(ctx context.Context) domain.FilterMetadata

	// Highlights returns the destinations promoted on the landing page.
	Highlights(ctx context.Context) domain.Highlights
}

// destinationUseCase implements DestinationUseCase over a shared, read-only catalog.
type destinationUseCase struct {
	catalog domain.Catalog
	logger  zerolog.Logger
}

// NewDestinationUseCase creates a new DestinationUseCase backed by catalog.
func NewDestinationUseCase(catalog domain.Catalog, logger zerolog.Logger) DestinationUseCase {
	return &destinationUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Search implements DestinationUseCase.Search.
func (uc *destinationUseCase) Search(ctx context.Context, rawQuery string) (*domain.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Each request gets its own browser; there is no router to write back to.
	browser := NewCatalogBrowser(uc.catalog, nil)
	ignored := browser.Load(rawQuery)
	if len(ignored) > 0 {
		uc.logger.Debug().
			Str("query", rawQuery).
			Strs("ignored_params", ignored).
			Msg("Ignored malformed deep-link parameters")
	}

	return uc.respond(browser, ignored), nil
}

// Refine implements DestinationUseCase.Refine.
func (uc *destinationUseCase) Refine(ctx context.Context, patch domain.CriteriaPatch) (*domain.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser := NewCatalogBrowser(uc.catalog, nil)
	browser.SetCriteria(patch)

	return uc.respond(browser, nil), nil
}

func (uc *destinationUseCase) respond(browser *CatalogBrowser, ignored []string) *domain.SearchResponse {
	results := browser.CurrentResults()
	response := domain.NewSearchResponse(
		browser.Criteria(),
		browser.ToQueryString(),
		results,
		domain.SearchMetadata{
			CatalogSize:   uc.catalog.Len(),
			IgnoredParams: ignored,
		},
	)

	uc.logger.Debug().
		Str("query", response.Query).
		Int("results", response.Metadata.TotalResults).
		Msg("Catalog search evaluated")

	return &response
}

// Get implements DestinationUseCase.Get.
func (uc *destinationUseCase) Get(ctx context.Context, id string) (*domain.Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := uc.catalog.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get destination: %w", err)
	}
	return &d, nil
}

// Categories implements DestinationUseCase.Categories.
func (uc *destinationUseCase) Categories(_ context.Context) []domain.CategoryInfo {
	return uc.catalog.Categories()
}

// FilterMetadata implements DestinationUseCase.FilterMetadata.
// Categories are listed in display order with the number of destinations in
// each; the price range spans the cheapest and the most expensive destination.
func (uc *destinationUseCase) FilterMetadata(_ context.Context) domain.FilterMetadata {
	destinations := uc.catalog.All()

	counts := make(map[domain.Category]int, len(domain.AllCategories()))
	var priceRange domain.PriceRange
	for i, d := range destinations {
		counts[d.Category]++
		if i == 0 || d.Price < priceRange.Min {
			priceRange.Min = d.Price
		}
		if d.Price > priceRange.Max {
			priceRange.Max = d.Price
		}
	}

	infos := make(map[domain.Category]domain.CategoryInfo)
	for _, info := range uc.catalog.Categories() {
		infos[info.Name] = info
	}

	categories := make([]domain.CategoryCount, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		info, ok := infos[c]
		if !ok {
			info = domain.CategoryInfo{Name: c}
		}
		categories = append(categories, domain.CategoryCount{CategoryInfo: info, Count: counts[c]})
	}

	return domain.FilterMetadata{
		Categories: categories,
		PriceRange: priceRange,
		SortKeys:   []domain.SortKey{domain.SortByRating, domain.SortByPrice, domain.SortByName},
		Defaults:   domain.DefaultCriteria(uc.catalog.MaxPrice()),
	}
}

// Highlights implements DestinationUseCase.Highlights.
// Popular holds the first PopularCount destinations; Featured holds the
// FeaturedCount destinations starting at FeaturedStart. Short catalogs yield
// shorter (possibly empty) lists.
func (uc *destinationUseCase) Highlights(_ context.Context) domain.Highlights {
	destinations := uc.catalog.All()
	return domain.Highlights{
		Popular:  window(destinations, 0, PopularCount),
		Featured: window(destinations, FeaturedStart, FeaturedCount),
	}
}

func window(destinations []domain.Destination, start, count int) []domain.Destination {
	if start >= len(destinations) {
		return []domain.Destination{}
	}
	end := min(start+count, len(destinations))
	return destinations[start:end]
}

// Ensure destinationUseCase implements DestinationUseCase at compile time.
var _ DestinationUseCase = (*destinationUseCase)(nil)
