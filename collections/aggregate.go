package collections

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/compare"
	"github.com/hasbyte1/go-laravel-query/field"
)

// Stats summarises the numeric values of one field.
type Stats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// values returns the aggregation inputs: the records themselves when no
// field is named, the resolved field otherwise.
func (c *Collection[T]) values(names []string) ([]any, error) {
	if len(names) > 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "aggregate takes at most one field, got %d", len(names))
	}
	name := ""
	if len(names) == 1 {
		name = names[0]
	}
	out := make([]any, len(c.items))
	for i, item := range c.items {
		v, err := field.Resolve(item, name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// numbers converts the aggregation inputs to float64, skipping nil values.
// A value that is neither nil nor numeric fails with [ErrInvalidArgument].
func (c *Collection[T]) numbers(names []string) ([]float64, error) {
	vals, err := c.values(names)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if field.IsNil(v) {
			continue
		}
		n, ok := compare.ToNumber(v)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidArgument, "non-numeric value %v (%T)", v, v)
		}
		out = append(out, n)
	}
	return out, nil
}

// Sum adds up the values, or the named field of every record. Nil values
// are skipped and numeric strings are coerced.
//
//	collections.New(1, 2, 3).Sum()             // 6
//	collections.From(orders).Sum("price")      // total price
func (c *Collection[T]) Sum(name ...string) (float64, error) {
	nums, err := c.numbers(name)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	return sum, nil
}

// Avg returns the arithmetic mean of the non-nil values. It fails with
// [ErrDivisionByZero] when there is nothing to average.
func (c *Collection[T]) Avg(name ...string) (float64, error) {
	nums, err := c.numbers(name)
	if err != nil {
		return 0, err
	}
	if len(nums) == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "average of no values")
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums)), nil
}

// Average is an alias for [Collection.Avg].
func (c *Collection[T]) Average(name ...string) (float64, error) { return c.Avg(name...) }

// Median returns the middle of the sorted non-nil values, or the mean of
// the two middle values for an even count. It fails with
// [ErrDivisionByZero] when there are no values.
func (c *Collection[T]) Median(name ...string) (float64, error) {
	nums, err := c.numbers(name)
	if err != nil {
		return 0, err
	}
	if len(nums) == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "median of no values")
	}
	sort.Float64s(nums)
	mid := len(nums) / 2
	if len(nums)%2 == 1 {
		return nums[mid], nil
	}
	return (nums[mid-1] + nums[mid]) / 2, nil
}

// Min returns the smallest non-nil value in natural order (see
// [compare.Order]). It fails with [ErrEmptyCollection] when there is none.
func (c *Collection[T]) Min(name ...string) (any, error) {
	return c.extreme(name, -1)
}

// Max returns the largest non-nil value in natural order. It fails with
// [ErrEmptyCollection] when there is none.
func (c *Collection[T]) Max(name ...string) (any, error) {
	return c.extreme(name, 1)
}

func (c *Collection[T]) extreme(names []string, sign int) (any, error) {
	vals, err := c.values(names)
	if err != nil {
		return nil, err
	}
	var (
		best  any
		found bool
	)
	for _, v := range vals {
		if field.IsNil(v) {
			continue
		}
		if !found || compare.Order(v, best)*sign > 0 {
			best, found = v, true
		}
	}
	if !found {
		return nil, ErrEmptyCollection
	}
	return best, nil
}

// MinBy returns the item with the smallest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) MinBy(fn func(T) float64) (T, bool) {
	return c.extremeBy(fn, func(a, b float64) bool { return a < b })
}

// MaxBy returns the item with the largest value extracted by fn.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) MaxBy(fn func(T) float64) (T, bool) {
	return c.extremeBy(fn, func(a, b float64) bool { return a > b })
}

func (c *Collection[T]) extremeBy(fn func(T) float64, better func(a, b float64) bool) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	bestItem, bestVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); better(v, bestVal) {
			bestVal, bestItem = v, item
		}
	}
	return bestItem, true
}

// Stats summarises the numeric values of a field (or of the values
// themselves when name is ""). Values that are not numbers or numeric
// strings are ignored rather than counted as zero; when no value is numeric
// every figure is 0. A record lacking the field fails with
// [ErrFieldNotFound].
func (c *Collection[T]) Stats(name string) (Stats, error) {
	vals, err := c.values([]string{name})
	if err != nil {
		return Stats{}, err
	}
	var s Stats
	for _, v := range vals {
		n, ok := compare.ToNumber(v)
		if !ok {
			continue
		}
		if s.Count == 0 || n < s.Min {
			s.Min = n
		}
		if s.Count == 0 || n > s.Max {
			s.Max = n
		}
		s.Sum += n
		s.Count++
	}
	if s.Count > 0 {
		s.Avg = s.Sum / float64(s.Count)
	}
	return s, nil
}

// Pluck returns the value of a field for every record, keeping keys.
//
// For a typed result, use the package-level [Pluck] function.
func (c *Collection[T]) Pluck(name string) (*Collection[any], error) {
	vals, err := c.values([]string{name})
	if err != nil {
		return nil, err
	}
	keys := make([]Key, len(c.keys))
	copy(keys, c.keys)
	return keyed(keys, vals), nil
}

// PluckKeyed returns the value field of every record keyed by its key
// field. When several records share a key the last value wins and keeps
// the position where the key first appeared. A nil or non-comparable key
// fails with [ErrInvalidArgument].
func (c *Collection[T]) PluckKeyed(value, key string) (*Collection[any], error) {
	out := &Collection[any]{
		keys:  make([]Key, 0, len(c.items)),
		items: make([]any, 0, len(c.items)),
		index: make(map[Key]int, len(c.items)),
	}
	for _, item := range c.items {
		k, err := field.Resolve(item, key)
		if err != nil {
			return nil, err
		}
		if k == nil || !validKey(k) {
			return nil, errors.Wrapf(ErrInvalidArgument, "value %v of field %q cannot be a key", k, key)
		}
		v, err := field.Resolve(item, value)
		if err != nil {
			return nil, err
		}
		out.set(k, v)
	}
	return out, nil
}
