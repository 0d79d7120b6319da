package collections

import "golang.org/x/exp/constraints"

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They are designed to be
// composable with method-chaining calls:
//
//	names := collections.Pluck(
//	    collections.New(users...).Filter(func(u User, _ collections.Key) bool { return u.Active }),
//	    func(u User) string { return u.Name },
//	)

// Number is satisfied by every integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map applies fn to every item and returns a new Collection[U] with the
// same keys.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, Key) U) *Collection[U] {
	keys := make([]Key, len(c.keys))
	copy(keys, c.keys)
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, c.keys[i])
	}
	return keyed(keys, out)
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Collection[U] keyed 0…n-1.
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    func(s string, _ collections.Key) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T, Key) []U) *Collection[U] {
	out := make([]U, 0, len(c.items))
	for i, item := range c.items {
		out = append(out, fn(item, c.keys[i])...)
	}
	return positional(out)
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	total := collections.Reduce(orders,
//	    func(acc float64, o Order, _ collections.Key) float64 { return acc + o.Price }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, Key) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, c.keys[i])
	}
	return result
}

// Pluck extracts a typed value from every item and returns a new
// Collection[U] with the same keys.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return Map(c, func(item T, _ Key) U { return fn(item) })
}

// SumBy adds up the numbers extracted by fn without going through float64.
//
//	qty := collections.SumBy(orders, func(o Order) int { return o.Quantity })
func SumBy[T any, N Number](c *Collection[T], fn func(T) N) N {
	var sum N
	for _, item := range c.items {
		sum += fn(item)
	}
	return sum
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	return FlatMap(c, func(chunk []T, _ Key) []T { return chunk })
}

// Flatten merges the values of several collections into one keyed 0…n-1.
// It is the inverse of [Collection.Chunk].
func Flatten[T any](cs ...*Collection[T]) *Collection[T] {
	var out []T
	for _, c := range cs {
		out = append(out, c.items...)
	}
	if out == nil {
		out = []T{}
	}
	return positional(out)
}
