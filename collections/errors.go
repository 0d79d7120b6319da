package collections

import (
	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/compare"
	"github.com/hasbyte1/go-laravel-query/field"
	"github.com/hasbyte1/go-laravel-query/match"
)

// Sentinel errors returned by Collection, Group and Query operations.
// Returned errors wrap one of these with call-site context; test with
// errors.Is.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// value but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrDivisionByZero is returned when averaging an empty set of numbers.
	ErrDivisionByZero = errors.New("collections: division by zero")

	// ErrScopeNotFound is returned when an unregistered scope name is used.
	ErrScopeNotFound = errors.New("collections: scope not found")

	// ErrFieldNotFound is returned when a record lacks a referenced field.
	ErrFieldNotFound = field.ErrNotFound

	// ErrInvalidArgument is returned for malformed call parameters:
	// non-positive chunk or sample sizes, ranges without exactly two bounds,
	// unknown sort directions and unsupported join types.
	ErrInvalidArgument = match.ErrInvalidArgument

	// ErrInvalidOperator is returned for an unrecognised relational operator.
	ErrInvalidOperator = compare.ErrInvalidOperator
)
