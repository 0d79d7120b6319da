package collections

import (
	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/field"
)

// Unique returns the records whose named fields (or whole value, when no
// field is named) have not been seen before. The first occurrence wins and
// keeps its key.
//
// Values are compared by the BLAKE2b digest of their JSON encoding, so
// 1 and 1.0 count as duplicates, as do two maps with the same entries.
//
//	c.Unique("country", "city")
func (c *Collection[T]) Unique(names ...string) (*Collection[T], error) {
	seen := make(map[digest]struct{}, len(c.items))
	keys := make([]Key, 0, len(c.items))
	items := make([]T, 0, len(c.items))
	for i, item := range c.items {
		parts := make([]any, 0, max(len(names), 1))
		if len(names) == 0 {
			parts = append(parts, item)
		}
		for _, name := range names {
			v, err := field.Resolve(item, name)
			if err != nil {
				return nil, err
			}
			parts = append(parts, v)
		}
		d, err := fingerprint(parts...)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		keys = append(keys, c.keys[i])
		items = append(items, item)
	}
	return keyed(keys, items), nil
}

// KeyBy returns the records keyed by the value of a field. When several
// records share a value the last one wins, at the position of the first.
// Values that cannot be used as keys (slices, maps, nil) fail with
// [ErrInvalidArgument].
func (c *Collection[T]) KeyBy(name string) (*Collection[T], error) {
	out := &Collection[T]{
		keys:  make([]Key, 0, len(c.items)),
		items: make([]T, 0, len(c.items)),
		index: make(map[Key]int, len(c.items)),
	}
	for _, item := range c.items {
		v, err := field.Resolve(item, name)
		if err != nil {
			return nil, err
		}
		if v == nil || !validKey(v) {
			return nil, errors.Wrapf(ErrInvalidArgument, "value %v of field %q cannot be a key", v, name)
		}
		out.set(v, item)
	}
	return out, nil
}
