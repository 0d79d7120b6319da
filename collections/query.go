package collections

import (
	"github.com/hasbyte1/go-laravel-query/match"
)

// Query chains filter and ordering steps over a collection and reports the
// first error once, at the end of the chain.
//
// Predicates are built as the chain is written, so a malformed step (an
// unknown operator, a range without two bounds, an unknown scope or sort
// direction) is recorded immediately and every later step becomes a no-op.
// Nothing runs against the records until a terminal method ([Query.Get],
// [Query.First], [Query.Count]) is called.
//
//	res, err := collections.NewQuery(orders).
//	    Where("status", "paid").
//	    WhereBetween("price", []any{500, 800}).
//	    OrderBy("price", collections.Desc).
//	    Get()
type Query[T any] struct {
	src   *Collection[T]
	steps []queryStep[T]
	err   error
}

// queryStep is either a filter (pred set) or any other transformation.
type queryStep[T any] struct {
	pred match.Predicate
	run  func(*Collection[T]) (*Collection[T], error)
}

// NewQuery starts a query over c.
func NewQuery[T any](c *Collection[T]) *Query[T] {
	return &Query[T]{src: c}
}

// Query starts a query over c. See [NewQuery].
func (c *Collection[T]) Query() *Query[T] { return NewQuery(c) }

// Err returns the first error recorded while building the chain.
func (q *Query[T]) Err() error { return q.err }

func (q *Query[T]) step(fn func(*Collection[T]) (*Collection[T], error)) *Query[T] {
	if q.err == nil {
		q.steps = append(q.steps, queryStep[T]{run: fn})
	}
	return q
}

func (q *Query[T]) filter(p match.Predicate, err error) *Query[T] {
	if q.err != nil {
		return q
	}
	if err != nil {
		q.err = err
		return q
	}
	q.steps = append(q.steps, queryStep[T]{pred: p})
	return q
}

// Match adds a predicate step.
func (q *Query[T]) Match(p match.Predicate) *Query[T] { return q.filter(p, nil) }

// Where adds a comparison step. See [Collection.Where].
func (q *Query[T]) Where(name string, args ...any) *Query[T] {
	return q.filter(match.Where(name, args...))
}

// OrWhere widens the previous filter step: records pass if they satisfy
// either it or the new comparison. When the previous step is not a filter
// it behaves like Where.
func (q *Query[T]) OrWhere(name string, args ...any) *Query[T] {
	p, err := match.Where(name, args...)
	n := len(q.steps)
	if err != nil || q.err != nil || n == 0 || q.steps[n-1].pred == nil {
		return q.filter(p, err)
	}
	q.steps[n-1].pred = match.Or(q.steps[n-1].pred, p)
	return q
}

// WhereIn adds a strict membership step.
func (q *Query[T]) WhereIn(name string, values ...any) *Query[T] {
	return q.filter(match.In(name, values...), nil)
}

// WhereNotIn adds a strict non-membership step.
func (q *Query[T]) WhereNotIn(name string, values ...any) *Query[T] {
	return q.filter(match.NotIn(name, values...), nil)
}

// WhereBetween adds an inclusive range step.
func (q *Query[T]) WhereBetween(name string, bounds []any) *Query[T] {
	return q.filter(match.Between(name, bounds))
}

// WhereNotBetween adds an exclusive range step.
func (q *Query[T]) WhereNotBetween(name string, bounds []any) *Query[T] {
	return q.filter(match.NotBetween(name, bounds))
}

// WhereNull adds a nil-or-absent step.
func (q *Query[T]) WhereNull(name string) *Query[T] {
	return q.filter(match.Null(name), nil)
}

// WhereNotNull adds a present-and-not-nil step.
func (q *Query[T]) WhereNotNull(name string) *Query[T] {
	return q.filter(match.NotNull(name), nil)
}

// WhereLike adds an SQL LIKE step.
func (q *Query[T]) WhereLike(name, pattern string) *Query[T] {
	return q.filter(match.Like(name, pattern), nil)
}

// WhereNotLike adds a negated SQL LIKE step.
func (q *Query[T]) WhereNotLike(name, pattern string) *Query[T] {
	return q.filter(match.NotLike(name, pattern), nil)
}

// Scope adds the predicate of a registered scope.
func (q *Query[T]) Scope(name string, args ...any) *Query[T] {
	if q.err != nil {
		return q
	}
	return q.filter(buildScope(name, args...))
}

// OrderBy adds an ordering step. See [Collection.OrderBy].
func (q *Query[T]) OrderBy(name string, dir Direction) *Query[T] {
	if q.err == nil {
		q.err = dir.validate()
	}
	return q.step(func(c *Collection[T]) (*Collection[T], error) { return c.OrderBy(name, dir) })
}

// Skip drops the first n records.
func (q *Query[T]) Skip(n int) *Query[T] {
	return q.step(func(c *Collection[T]) (*Collection[T], error) { return c.Skip(n), nil })
}

// Take keeps at most n records.
func (q *Query[T]) Take(n int) *Query[T] {
	return q.step(func(c *Collection[T]) (*Collection[T], error) { return c.Take(n), nil })
}

// Get runs the chain and returns the resulting collection.
func (q *Query[T]) Get() (*Collection[T], error) {
	if q.err != nil {
		return nil, q.err
	}
	c := q.src
	for _, st := range q.steps {
		var err error
		if st.pred != nil {
			c, err = c.Match(st.pred)
		} else {
			c, err = st.run(c)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(q.steps) == 0 {
		c = c.clone()
	}
	return c, nil
}

// First runs the chain and returns the first record, or
// [ErrNoMatchingItems] when none is left.
func (q *Query[T]) First() (T, error) {
	var zero T
	c, err := q.Get()
	if err != nil {
		return zero, err
	}
	item, ok := c.First()
	if !ok {
		return zero, ErrNoMatchingItems
	}
	return item, nil
}

// Count runs the chain and returns the number of records left.
func (q *Query[T]) Count() (int, error) {
	c, err := q.Get()
	if err != nil {
		return 0, err
	}
	return c.Count(), nil
}
