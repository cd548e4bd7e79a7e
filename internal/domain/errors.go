package domain

import "errors"

// Sentinel errors shared across layers. Wrap them with fmt.Errorf("%w: ...")
// to add detail and classify them with errors.Is.
var (
	// ErrDestinationNotFound is returned when no destination has the requested id.
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrInvalidRequest is returned when a request fails domain validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidCatalog is returned when a catalog document cannot be loaded.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrTravelDateInPast is returned when a booking names a travel date before today.
	ErrTravelDateInPast = errors.New("travel date is in the past")
)

// FieldError is a validation failure tied to one request field.
// It unwraps to ErrInvalidRequest.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

// NewFieldError creates a FieldError for field. A nil cause defaults to ErrInvalidRequest.
func NewFieldError(field, message string, cause error) *FieldError {
	if cause == nil {
		cause = ErrInvalidRequest
	}
	return &FieldError{Field: field, Message: message, Err: cause}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidRequest for every field error, whatever the cause.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidRequest
}
