package field

import "github.com/pkg/errors"

// Sentinel errors returned by the resolver.
var (
	// ErrNotFound is returned when a record has no key or property with the
	// requested name. The returned error wraps it with the field name.
	ErrNotFound = errors.New("field: not found")

	// ErrInvalidPath is returned when a JSONPath expression cannot be parsed.
	ErrInvalidPath = errors.New("field: invalid path")

	// ErrUnsupportedRecord is returned by [ToMap] for records that expose no
	// named fields (scalars, slices).
	ErrUnsupportedRecord = errors.New("field: record has no named fields")
)
