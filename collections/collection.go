package collections

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Key identifies one entry of a Collection. Keys must be comparable; they
// are ints 0…n-1 for collections built with [New] or [From] and arbitrary
// caller-supplied values for [FromPairs].
type Key = any

// Collection is an ordered, keyed sequence of records.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the receiver unchanged. Records themselves are not copied: a
// derived collection references the same record values as its source, so a
// map record mutated through one collection is visible through every other
// collection holding it. Treat records as immutable once they are shared.
//
// # Creating a collection
//
//	c := collections.New(order1, order2, order3)
//	c := collections.From([]map[string]any{{"price": 450}, {"price": 865}})
//	c := collections.FromPairs(collections.P[collections.Key]("a", 1), collections.P[collections.Key]("b", 2))
//
// # Querying
//
//	cheap, err := c.WhereBetween("price", []any{500, 800})
//	byQty, err := c.GroupBy("quantity")
//	sorted, err := c.OrderBy("price", collections.Desc)
//
// Operations that read fields return an error wrapping [ErrFieldNotFound]
// when a record lacks the field; nothing is returned alongside an error.
//
// # Laravel equivalents
//
// Method names follow Laravel's Collection where possible. Differences:
//   - Callbacks receive (item, key).
//   - Fallible operations return (result, error) instead of throwing; use
//     [Query] for a chain that reports the first error at the end.
//   - Type-transforming operations (Map, Pluck, Join, …) that need a new
//     element type are package-level functions.
type Collection[T any] struct {
	keys  []Key
	items []T
	index map[Key]int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items with positional
// keys.
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice with positional keys. The slice is
// copied; the records it holds are not.
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return positional(dst)
}

// FromPairs creates a Collection with caller-supplied keys, in pair order.
// A repeated key replaces the earlier value in place.
func FromPairs[T any](pairs ...Pair[Key, T]) *Collection[T] {
	c := &Collection[T]{
		keys:  make([]Key, 0, len(pairs)),
		items: make([]T, 0, len(pairs)),
		index: make(map[Key]int, len(pairs)),
	}
	for _, p := range pairs {
		c.set(p.First, p.Second)
	}
	return c
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return positional([]T{})
}

// positional wraps items (not copied) with keys 0…n-1.
func positional[T any](items []T) *Collection[T] {
	keys := make([]Key, len(items))
	index := make(map[Key]int, len(items))
	for i := range items {
		keys[i] = i
		index[i] = i
	}
	return &Collection[T]{keys: keys, items: items, index: index}
}

// keyed wraps parallel key and item slices (not copied).
func keyed[T any](keys []Key, items []T) *Collection[T] {
	index := make(map[Key]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return &Collection[T]{keys: keys, items: items, index: index}
}

func (c *Collection[T]) set(k Key, v T) {
	if i, ok := c.index[k]; ok {
		c.items[i] = v
		return
	}
	c.index[k] = len(c.items)
	c.keys = append(c.keys, k)
	c.items = append(c.items, v)
}

func (c *Collection[T]) clone() *Collection[T] {
	keys := make([]Key, len(c.keys))
	copy(keys, c.keys)
	items := make([]T, len(c.items))
	copy(items, c.items)
	return keyed(keys, items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the values in order as a new slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Keys returns the keys in order.
func (c *Collection[T]) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Entries returns the (key, value) pairs in order.
func (c *Collection[T]) Entries() []Pair[Key, T] {
	out := make([]Pair[Key, T], len(c.items))
	for i, item := range c.items {
		out[i] = Pair[Key, T]{First: c.keys[i], Second: item}
	}
	return out
}

// Values returns a copy of the collection re-keyed 0…n-1.
func (c *Collection[T]) Values() *Collection[T] { return From(c.items) }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item stored under key together with a presence flag.
func (c *Collection[T]) Get(key Key) (T, bool) {
	var zero T
	i, ok := c.index[key]
	if !ok {
		return zero, false
	}
	return c.items[i], true
}

// GetOr returns the item stored under key, or def when the key is absent.
func (c *Collection[T]) GetOr(key Key, def T) T {
	if v, ok := c.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether key exists in the collection.
func (c *Collection[T]) Has(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// Put returns a new collection with value stored under key. An existing key
// keeps its position.
func (c *Collection[T]) Put(key Key, value T) *Collection[T] {
	out := c.clone()
	out.set(key, value)
	return out
}

// Forget returns a new collection without key. Returns a copy of c when the
// key is absent.
func (c *Collection[T]) Forget(key Key) *Collection[T] {
	return c.Filter(func(_ T, k Key) bool { return k != key })
}

// HasAll reports whether every key exists in the collection. It is true
// when no keys are given.
func (c *Collection[T]) HasAll(keys ...Key) bool {
	for _, k := range keys {
		if !validKey(k) || !c.Has(k) {
			return false
		}
	}
	return true
}

// Only returns a new collection with the items stored under the given keys,
// in collection order. Keys that are absent are ignored.
func (c *Collection[T]) Only(keys ...Key) *Collection[T] {
	set := keySet(keys)
	return c.Filter(func(_ T, k Key) bool {
		_, ok := set[k]
		return ok
	})
}

// Except returns a new collection without the items stored under the given
// keys.
func (c *Collection[T]) Except(keys ...Key) *Collection[T] {
	set := keySet(keys)
	return c.Filter(func(_ T, k Key) bool {
		_, ok := set[k]
		return !ok
	})
}

func keySet(keys []Key) map[Key]struct{} {
	set := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		if validKey(k) {
			set[k] = struct{}{}
		}
	}
	return set
}

// validKey reports whether k can be used as a map key without panicking.
func validKey(k Key) bool {
	return k == nil || reflect.ValueOf(k).Comparable()
}

// ToJSON serialises the values to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the values.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key) for every item in order.
func (c *Collection[T]) Each(fn func(T, Key)) {
	for i, item := range c.items {
		fn(item, c.keys[i])
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Dump prints the collection to stdout and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	fmt.Println(c.String())
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	for _, item := range c.items {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(c.items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](c.items[i]) {
			return c.items[i], true
		}
	}
	return zero, false
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	_, ok := c.First(fn)
	return ok
}

// Search returns the key of the first item for which fn returns true.
func (c *Collection[T]) Search(fn func(T) bool) (Key, bool) {
	for i, item := range c.items {
		if fn(item) {
			return c.keys[i], true
		}
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which
// fn(item, key) returns true. Surviving items keep their keys and order.
func (c *Collection[T]) Filter(fn func(T, Key) bool) *Collection[T] {
	keys := make([]Key, 0, len(c.items))
	items := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, c.keys[i]) {
			keys = append(keys, c.keys[i])
			items = append(items, item)
		}
	}
	return keyed(keys, items)
}

// Reject returns a new collection with items for which fn returns true removed.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, Key) bool) *Collection[T] {
	return c.Filter(func(item T, k Key) bool { return !fn(item, k) })
}

// Map returns a new Collection[any] with each item transformed by
// fn(item, key). Keys are preserved.
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (c *Collection[T]) Map(fn func(T, Key) any) *Collection[any] {
	return Map(c, fn)
}

// Reverse returns a new collection with items in reversed order. Keys travel
// with their items.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.items)
	keys := make([]Key, n)
	items := make([]T, n)
	for i, item := range c.items {
		keys[n-1-i] = c.keys[i]
		items[n-1-i] = item
	}
	return keyed(keys, items)
}

// Shuffle returns a new collection with items in a random order, re-keyed
// 0…n-1.
func (c *Collection[T]) Shuffle() *Collection[T] {
	out := c.All()
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return positional(out)
}

// Random returns n randomly selected items (without replacement), re-keyed
// 0…n-1. It fails with [ErrInvalidArgument] when n <= 0. If n >= Count(), a
// shuffled copy of the full collection is returned.
func (c *Collection[T]) Random(n int) (*Collection[T], error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "random sample size %d", n)
	}
	s := c.Shuffle()
	if n >= s.Count() {
		return s, nil
	}
	return s.Take(n).Values(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended under the integer keys
// following the largest existing integer key.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	out := c.clone()
	next := 0
	for _, k := range c.keys {
		if n, ok := k.(int); ok && n >= next {
			next = n + 1
		}
	}
	for i, item := range items {
		out.set(next+i, item)
	}
	return out
}

// Concat returns a new collection with the values of other appended as by
// [Collection.Push].
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.Push(other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n items from the start, keeping their keys.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return c.Slice(n, -1)
	}
	return c.Slice(0, n)
}

// Skip returns a new collection without the first n items.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n <= 0 {
		return c.clone()
	}
	return c.Slice(n, -1)
}

// Slice returns items starting at offset with at most length items, keeping
// their keys. A negative offset counts from the end; a negative length means
// "to the end".
func (c *Collection[T]) Slice(offset, length int) *Collection[T] {
	total := len(c.items)
	if offset < 0 {
		offset = max(total+offset, 0)
	}
	if offset >= total {
		return Empty[T]()
	}
	end := total
	if length >= 0 {
		end = min(offset+length, total)
	}
	keys := make([]Key, end-offset)
	copy(keys, c.keys[offset:end])
	items := make([]T, end-offset)
	copy(items, c.items[offset:end])
	return keyed(keys, items)
}

// Chunk splits the collection into consecutive collections of size items.
// The last chunk may be shorter. Items keep their keys. It fails with
// [ErrInvalidArgument] when size <= 0.
func (c *Collection[T]) Chunk(size int) ([]*Collection[T], error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "chunk size %d", size)
	}
	chunks := make([]*Collection[T], 0, (len(c.items)+size-1)/size)
	for i := 0; i < len(c.items); i += size {
		chunks = append(chunks, c.Slice(i, size))
	}
	return chunks, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning & strings
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits the collection into two: the first contains items for
// which fn returns true; the second the rest. Keys are preserved.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	pass := c.Filter(func(item T, _ Key) bool { return fn(item) })
	fail := c.Filter(func(item T, _ Key) bool { return !fn(item) })
	return pass, fail
}

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}
