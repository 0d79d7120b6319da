package collections

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/compare"
	"github.com/hasbyte1/go-laravel-query/field"
)

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection parses "asc" or "desc", ignoring case.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if err := d.validate(); err != nil {
		return "", err
	}
	return d, nil
}

func (d Direction) validate() error {
	if d != Asc && d != Desc {
		return errors.Wrapf(ErrInvalidArgument, "sort direction %q", string(d))
	}
	return nil
}

// Sort returns the values in natural order (see [compare.Order]) re-keyed
// 0…n-1. Equal values keep their relative order.
//
//	collections.New(3, 1, 2).Sort(collections.Asc) // → [1 2 3]
func (c *Collection[T]) Sort(dir Direction) (*Collection[T], error) {
	if err := dir.validate(); err != nil {
		return nil, err
	}
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return compare.Order(out[i], out[j]) > 0
		}
		return compare.Order(out[i], out[j]) < 0
	})
	return positional(out), nil
}

// OrderBy returns the records ordered by a field, re-keyed 0…n-1.
//
// Records are first bucketed by the resolved field value, buckets are then
// ordered by value and flattened. Records sharing a value therefore keep
// their original relative order without comparing the records themselves.
func (c *Collection[T]) OrderBy(name string, dir Direction) (*Collection[T], error) {
	if err := dir.validate(); err != nil {
		return nil, err
	}
	type bucket struct {
		value any
		items []T
	}
	var buckets []*bucket
	index := make(map[any]*bucket)
	for _, item := range c.items {
		v, err := field.Resolve(item, name)
		if err != nil {
			return nil, err
		}
		k, err := orderKey(v)
		if err != nil {
			return nil, err
		}
		b, ok := index[k]
		if !ok {
			b = &bucket{value: v}
			index[k] = b
			buckets = append(buckets, b)
		}
		b.items = append(b.items, item)
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		if dir == Desc {
			return compare.Order(buckets[i].value, buckets[j].value) > 0
		}
		return compare.Order(buckets[i].value, buckets[j].value) < 0
	})
	out := make([]T, 0, len(c.items))
	for _, b := range buckets {
		out = append(out, b.items...)
	}
	return positional(out), nil
}

// instant keys a time.Time independently of its location and monotonic
// reading.
type instant struct {
	sec  int64
	nsec int
}

// orderKey is like bucketKey but merges values that order as equal:
// numbers and numeric strings by value, times by instant.
func orderKey(v any) (any, error) {
	if i, ok := compare.ToInteger(v); ok {
		if f, exact := i.Float(); exact {
			return f, nil
		}
		return i, nil
	}
	if f, ok := compare.ToNumber(v); ok {
		return f, nil
	}
	if t, ok := v.(time.Time); ok {
		return instant{t.Unix(), t.Nanosecond()}, nil
	}
	return bucketKey(v)
}

// OrderByDesc is shorthand for OrderBy(name, Desc).
func (c *Collection[T]) OrderByDesc(name string) (*Collection[T], error) {
	return c.OrderBy(name, Desc)
}

// SortFunc returns a new collection sorted by the given less function,
// re-keyed 0…n-1. The sort is stable: equal elements preserve their
// original order.
func (c *Collection[T]) SortFunc(less func(a, b T) bool) *Collection[T] {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return positional(out)
}

// SortBy returns a new collection sorted in ascending order by the float64
// value extracted by fn.
func (c *Collection[T]) SortBy(fn func(T) float64) *Collection[T] {
	return c.SortFunc(func(a, b T) bool { return fn(a) < fn(b) })
}

// SortByDesc returns a new collection sorted in descending order by fn.
func (c *Collection[T]) SortByDesc(fn func(T) float64) *Collection[T] {
	return c.SortFunc(func(a, b T) bool { return fn(a) > fn(b) })
}
