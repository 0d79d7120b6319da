// Package match builds predicates over records.
//
// Every builder returns a [Predicate] closed over its parameters. Parameters
// that can be malformed (an operator string, a range) are validated when the
// predicate is built, never per record:
//
//	p, err := match.Where("price", ">=", 500)
//	if err != nil {
//	    return err
//	}
//	ok, err := p(record) // err wraps field.ErrNotFound for a record without "price"
//
// The strict matchers fail on records that lack the field. [Null] and
// [NotNull] are the only matchers that treat a missing field as nil.
package match

import (
	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/compare"
	"github.com/hasbyte1/go-laravel-query/field"
)

// ErrInvalidArgument is returned when a builder receives malformed
// parameters, such as a range without exactly two bounds.
var ErrInvalidArgument = errors.New("match: invalid argument")

// Predicate reports whether record satisfies a condition. It returns an
// error when the condition cannot be evaluated, typically because the record
// lacks a referenced field.
type Predicate func(record any) (bool, error)

// Func lifts an infallible test into a Predicate.
func Func(fn func(record any) bool) Predicate {
	return func(record any) (bool, error) { return fn(record), nil }
}

// Where compares a field against a value.
//
//	match.Where("status", "active")     // status = "active"
//	match.Where("price", "<", 100)      // price < 100
//
// With one argument the operator is "=". Any other arity fails with
// [ErrInvalidArgument]; an unknown operator fails with
// [compare.ErrInvalidOperator].
func Where(name string, args ...any) (Predicate, error) {
	var (
		op    = compare.Equal
		value any
	)
	switch len(args) {
	case 1:
		value = args[0]
	case 2:
		symbol, ok := args[0].(string)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidArgument, "operator must be a string, got %T", args[0])
		}
		parsed, err := compare.ParseOperator(symbol)
		if err != nil {
			return nil, err
		}
		op, value = parsed, args[1]
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "where %q takes a value or an operator and a value, got %d arguments", name, len(args))
	}
	return WhereOp(name, op, value), nil
}

// WhereOp compares a field against a value with an already parsed operator.
func WhereOp(name string, op compare.Operator, value any) Predicate {
	return func(record any) (bool, error) {
		v, err := field.Resolve(record, name)
		if err != nil {
			return false, err
		}
		return op.Apply(v, value), nil
	}
}

// In matches records whose field is strictly equal to one of values.
func In(name string, values ...any) Predicate {
	set := append([]any(nil), values...)
	return func(record any) (bool, error) {
		v, err := field.Resolve(record, name)
		if err != nil {
			return false, err
		}
		return contains(set, v), nil
	}
}

// NotIn matches records whose field is strictly equal to none of values.
func NotIn(name string, values ...any) Predicate {
	return Not(In(name, values...))
}

func contains(set []any, v any) bool {
	for _, candidate := range set {
		if compare.StrictEqual(v, candidate) {
			return true
		}
	}
	return false
}

// Between matches records whose field lies in the inclusive range
// bounds[0] ≤ v ≤ bounds[1]. It fails with [ErrInvalidArgument] unless
// bounds holds exactly two values.
func Between(name string, bounds []any) (Predicate, error) {
	if len(bounds) != 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "between %q needs exactly 2 bounds, got %d", name, len(bounds))
	}
	lo, hi := bounds[0], bounds[1]
	return func(record any) (bool, error) {
		v, err := field.Resolve(record, name)
		if err != nil {
			return false, err
		}
		return compare.Order(v, lo) >= 0 && compare.Order(v, hi) <= 0, nil
	}, nil
}

// NotBetween is the negation of [Between].
func NotBetween(name string, bounds []any) (Predicate, error) {
	p, err := Between(name, bounds)
	if err != nil {
		return nil, err
	}
	return Not(p), nil
}

// Null matches records whose field is nil or absent. A malformed path
// fails.
func Null(name string) Predicate {
	return func(record any) (bool, error) {
		v, err := field.ResolveOrNil(record, name)
		if err != nil {
			return false, err
		}
		return field.IsNil(v), nil
	}
}

// NotNull matches records whose field is present and not nil.
func NotNull(name string) Predicate {
	return Not(Null(name))
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Not negates p. Errors from p are passed through unchanged.
func Not(p Predicate) Predicate {
	return func(record any) (bool, error) {
		ok, err := p(record)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// And matches records satisfying every predicate, evaluated left to right
// and stopping at the first false. And() matches everything.
func And(ps ...Predicate) Predicate {
	return func(record any) (bool, error) {
		for _, p := range ps {
			ok, err := p(record)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Or matches records satisfying at least one predicate, evaluated left to
// right and stopping at the first true. Or() matches nothing.
func Or(ps ...Predicate) Predicate {
	return func(record any) (bool, error) {
		for _, p := range ps {
			ok, err := p(record)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}
