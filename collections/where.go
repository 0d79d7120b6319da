package collections

import (
	"github.com/hasbyte1/go-laravel-query/match"
)

// Match returns the records satisfying p, keeping their keys and relative
// order. The first error raised by p aborts the filter and is returned.
//
//	p, _ := match.Where("price", ">", 500)
//	expensive, err := c.Match(p)
func (c *Collection[T]) Match(p match.Predicate) (*Collection[T], error) {
	keys := make([]Key, 0, len(c.items))
	items := make([]T, 0, len(c.items))
	for i, item := range c.items {
		ok, err := p(item)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, c.keys[i])
			items = append(items, item)
		}
	}
	return keyed(keys, items), nil
}

func (c *Collection[T]) matchBuilt(p match.Predicate, err error) (*Collection[T], error) {
	if err != nil {
		return nil, err
	}
	return c.Match(p)
}

// Where keeps records whose field compares true against a value.
//
//	c.Where("status", "active")  // status = "active"
//	c.Where("price", ">=", 500)  // price >= 500
//
// See [match.Where] for the accepted operators.
func (c *Collection[T]) Where(name string, args ...any) (*Collection[T], error) {
	return c.matchBuilt(match.Where(name, args...))
}

// WhereIn keeps records whose field is strictly equal to one of values.
func (c *Collection[T]) WhereIn(name string, values ...any) (*Collection[T], error) {
	return c.Match(match.In(name, values...))
}

// WhereNotIn keeps records whose field is strictly equal to none of values.
func (c *Collection[T]) WhereNotIn(name string, values ...any) (*Collection[T], error) {
	return c.Match(match.NotIn(name, values...))
}

// WhereBetween keeps records whose field lies within bounds, inclusive.
// bounds must hold exactly two values.
func (c *Collection[T]) WhereBetween(name string, bounds []any) (*Collection[T], error) {
	return c.matchBuilt(match.Between(name, bounds))
}

// WhereNotBetween keeps records whose field lies outside bounds.
func (c *Collection[T]) WhereNotBetween(name string, bounds []any) (*Collection[T], error) {
	return c.matchBuilt(match.NotBetween(name, bounds))
}

// WhereNull keeps records whose field is nil or absent.
func (c *Collection[T]) WhereNull(name string) (*Collection[T], error) {
	return c.Match(match.Null(name))
}

// WhereNotNull keeps records whose field is present and not nil.
func (c *Collection[T]) WhereNotNull(name string) (*Collection[T], error) {
	return c.Match(match.NotNull(name))
}

// WhereLike keeps records whose field matches an SQL LIKE pattern,
// case-insensitively.
func (c *Collection[T]) WhereLike(name, pattern string) (*Collection[T], error) {
	return c.Match(match.Like(name, pattern))
}

// WhereNotLike keeps records whose non-nil field does not match pattern.
func (c *Collection[T]) WhereNotLike(name, pattern string) (*Collection[T], error) {
	return c.Match(match.NotLike(name, pattern))
}

// Scope keeps records satisfying the predicate built by the named scope.
// See [RegisterScope].
func (c *Collection[T]) Scope(name string, args ...any) (*Collection[T], error) {
	return c.matchBuilt(buildScope(name, args...))
}
