package domain

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=domain

// Catalog provides read access to the static destination list.
// Implementations must be safe for concurrent reads.
type Catalog interface {
	// All returns every destination in catalog order.
	// The returned slice is owned by the caller.
	All() []Destination

	// Get returns the destination with the given id.
	// Returns an error wrapping ErrDestinationNotFound if no destination matches.
	Get(id string) (Destination, error)

	// Categories returns the presentation metadata for every category.
	Categories() []CategoryInfo

	// MaxPrice returns the highest price per night in the catalog.
	MaxPrice() float64

	// Len returns the number of destinations.
	Len() int
}
