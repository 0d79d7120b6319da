package collections

import "github.com/hasbyte1/go-laravel-query/match"

// Enumerable is the read surface of [Collection][T] that the query helpers
// rely on.
//
// Accept Enumerable in your own functions so that consumers can pass a
// Collection without the functions depending on the full method set.
type Enumerable[T any] interface {
	// All returns every value in order as a plain Go slice.
	All() []T

	// Keys returns every key in order.
	Keys() []Key

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, key) for every item.
	Each(fn func(T, Key))

	// Get returns the item stored under key.
	Get(key Key) (T, bool)

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T, Key) bool) *Collection[T]

	// Match returns a new collection containing only items satisfying p.
	Match(p match.Predicate) (*Collection[T], error)

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool
}

var _ Enumerable[any] = (*Collection[any])(nil)
