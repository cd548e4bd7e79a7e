// Package explore implements a terminal explorer over the destination catalog.
// It starts from an optional deep link, applies flag overrides and prints the
// results together with the shareable link for the final criteria.
package explore

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fatih/color"

	cataloghttp "github.com/travelbanza/destination-catalog/internal/adapter/http"
	"github.com/travelbanza/destination-catalog/internal/catalog"
	"github.com/travelbanza/destination-catalog/internal/domain"
	"github.com/travelbanza/destination-catalog/internal/usecase"
)

// ErrUsage reports invalid command line input.
var ErrUsage = errors.New("usage")

var (
	nameColor    = color.New(color.Bold)
	priceColor   = color.New(color.FgGreen)
	ratingColor  = color.New(color.FgYellow)
	warningColor = color.New(color.FgHiRed)
	linkColor    = color.New(color.FgCyan, color.Underline)
)

// options holds the parsed command line.
type options struct {
	link        string
	catalogPath string
	clear       bool
	noColor     bool
	patch       domain.CriteriaPatch
}

// Run executes the explorer with the given arguments, writing to out.
func Run(args []string, out io.Writer) error {
	opts, err := parseFlags(args, out)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.noColor {
		color.NoColor = true
	}

	store, err := openCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	nav := newLinkNavigator(opts.link)
	browser := usecase.NewCatalogBrowser(store, nav)

	if ignored := browser.IgnoredParams(); len(ignored) > 0 {
		fmt.Fprintf(out, "%s %s\n", warningColor.Sprint("ignored:"), strings.Join(ignored, ", "))
	}

	if opts.clear {
		browser.Clear()
	}
	if !opts.patch.IsEmpty() {
		browser.SetCriteria(opts.patch)
	}

	printResults(out, browser.CurrentResults(), store.Len())
	fmt.Fprintf(out, "\n%s %s\n", nameColor.Sprint("link:"), linkColor.Sprint(cataloghttp.SearchLink(browser.ToQueryString())))
	return nil
}

func parseFlags(args []string, out io.Writer) (*options, error) {
	fs := flag.NewFlagSet("explore", flag.ContinueOnError)
	fs.SetOutput(out)

	opts := &options{}
	var (
		query      string
		categories string
		minPrice   float64
		maxPrice   float64
		sortBy     string
	)

	fs.StringVar(&opts.link, "link", "", "deep link or query string to start from")
	fs.StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (defaults to the embedded catalog)")
	fs.BoolVar(&opts.clear, "clear", false, "reset the criteria before applying overrides")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	fs.StringVar(&query, "q", "", "free-text search")
	fs.StringVar(&categories, "categories", "", "comma-separated categories")
	fs.Float64Var(&minPrice, "min-price", 0, "minimum price per night")
	fs.Float64Var(&maxPrice, "max-price", 0, "maximum price per night")
	fs.StringVar(&sortBy, "sort", "", "sort order: rating, price or name")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		if parseErr != nil {
			return
		}
		switch f.Name {
		case "q":
			opts.patch.Query = &query
		case "categories":
			selected, err := parseCategories(categories)
			if err != nil {
				parseErr = err
				return
			}
			opts.patch.Categories = &selected
		case "min-price":
			if minPrice < 0 {
				parseErr = fmt.Errorf("%w: -min-price must not be negative", ErrUsage)
				return
			}
			opts.patch.MinPrice = &minPrice
		case "max-price":
			if maxPrice < 0 {
				parseErr = fmt.Errorf("%w: -max-price must not be negative", ErrUsage)
				return
			}
			opts.patch.MaxPrice = &maxPrice
		case "sort":
			key, ok := domain.LookupSortKey(sortBy)
			if !ok {
				parseErr = fmt.Errorf("%w: -sort must be one of: rating, price, name", ErrUsage)
				return
			}
			opts.patch.SortKey = &key
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return opts, nil
}

func parseCategories(raw string) ([]domain.Category, error) {
	var out []domain.Category
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, ok := domain.ParseCategory(part)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrUsage, strings.TrimSpace(part))
		}
		out = append(out, c)
	}
	return out, nil
}

func openCatalog(path string) (*catalog.Store, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	store, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, nil
}

func printResults(out io.Writer, results []domain.Destination, catalogSize int) {
	fmt.Fprintf(out, "%d of %d destinations\n", len(results), catalogSize)
	for _, d := range results {
		fmt.Fprintf(out, "  %s, %s [%s] %s %s\n",
			nameColor.Sprint(d.Name),
			d.Country,
			d.Category,
			priceColor.Sprintf("$%.0f/night", d.Price),
			ratingColor.Sprintf("★ %.1f", d.Rating),
		)
	}
}

// linkNavigator keeps the current deep link in memory.
type linkNavigator struct {
	query string
}

// newLinkNavigator accepts a full URL, a path with a query, or a bare query string.
func newLinkNavigator(link string) *linkNavigator {
	return &linkNavigator{query: queryOf(link)}
}

func (n *linkNavigator) CurrentQuery() string {
	return n.query
}

func (n *linkNavigator) ReplaceQuery(query string) {
	n.query = query
}

// queryOf returns the raw query of link without any fragment.
func queryOf(link string) string {
	link = strings.TrimSpace(link)
	if !strings.Contains(link, "?") {
		link, _, _ = strings.Cut(link, "#")
		if strings.Contains(link, "=") {
			return link
		}
		return ""
	}

	u, err := url.Parse(link)
	if err != nil {
		_, query, _ := strings.Cut(link, "?")
		query, _, _ = strings.Cut(query, "#")
		return query
	}
	return u.RawQuery
}
