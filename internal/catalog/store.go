// Package catalog provides the static destination catalog.
// The catalog document is compiled into the binary as YAML, validated against
// an embedded JSON schema and exposed through the read-only domain.Catalog interface.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/travelbanza/destination-catalog/internal/domain"
)

//go:embed data/destinations.yaml
var embeddedCatalog []byte

//go:embed data/catalog.schema.json
var embeddedSchema []byte

const schemaURL = "catalog.schema.json"

// document is the on-disk shape of a catalog.
type document struct {
	Categories   []domain.CategoryInfo `json:"categories"`
	Destinations []domain.Destination  `json:"destinations"`
}

// Store is an immutable, ordered destination catalog.
// It is safe for concurrent use.
type Store struct {
	destinations []domain.Destination
	index        map[string]int
	categories   []domain.CategoryInfo
	maxPrice     float64
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the catalog compiled into the binary.
// The embedded document is covered by tests, so a load failure is a build
// defect and panics.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := Load(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

// LoadFile reads and loads a catalog document from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidCatalog, path, err)
	}
	return Load(data)
}

// Load parses a YAML catalog document, validates it against the catalog
// schema and builds a Store. Every error wraps domain.ErrInvalidCatalog.
func Load(data []byte) (*Store, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", domain.ErrInvalidCatalog, err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrInvalidCatalog, err)
	}

	return newStore(doc)
}

// validateDocument checks the JSON form of a catalog against the embedded schema.
func validateDocument(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("%w: schema: %v", domain.ErrInvalidCatalog, err)
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrInvalidCatalog, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	return nil
}

var (
	schemaOnce    sync.Once
	catalogSchema *jsonschema.Schema
	schemaErr     error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(embeddedSchema)); err != nil {
			schemaErr = err
			return
		}
		catalogSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return catalogSchema, schemaErr
}

func newStore(doc document) (*Store, error) {
	s := &Store{
		destinations: doc.Destinations,
		index:        make(map[string]int, len(doc.Destinations)),
		categories:   doc.Categories,
	}

	for i, d := range doc.Destinations {
		if _, dup := s.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate destination id %q", domain.ErrInvalidCatalog, d.ID)
		}
		s.index[d.ID] = i
		if d.Price > s.maxPrice {
			s.maxPrice = d.Price
		}
	}

	seen := make(map[domain.Category]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: duplicate category %q", domain.ErrInvalidCatalog, c.Name)
		}
		seen[c.Name] = true
	}

	return s, nil
}

// All returns a copy of every destination in catalog order.
func (s *Store) All() []domain.Destination {
	out := make([]domain.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

// Get returns the destination with the given id.
func (s *Store) Get(id string) (domain.Destination, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.Destination{}, fmt.Errorf("%w: %q", domain.ErrDestinationNotFound, id)
	}
	return s.destinations[i], nil
}

// Categories returns the category presentation table.
func (s *Store) Categories() []domain.CategoryInfo {
	out := make([]domain.CategoryInfo, len(s.categories))
	copy(out, s.categories)
	return out
}

// MaxPrice returns the highest price per night in the catalog.
func (s *Store) MaxPrice() float64 {
	return s.maxPrice
}

// Len returns the number of destinations.
func (s *Store) Len() int {
	return len(s.destinations)
}

var _ domain.Catalog = (*Store)(nil)
