// Package collections provides an in-memory, fluent query layer over
// collections of records, inspired by Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][T], an ordered, keyed sequence of records.
// Records may be maps, structs or scalars; fields are read through the
// [github.com/hasbyte1/go-laravel-query/field] resolver, so one API filters,
// groups, sorts, joins and aggregates all of them:
//
//	orders := collections.From([]map[string]any{
//	    {"product": "Desk", "price": 450, "quantity": 35},
//	    {"product": "Chair", "price": 865, "quantity": 9},
//	    {"product": "Lamp", "price": 500, "quantity": 35},
//	})
//
//	mid, err := orders.WhereBetween("price", []any{500, 800})
//	byQty, err := orders.GroupBy("quantity")
//	stats, err := orders.Stats("price")
//
// # Errors
//
// Operations that read fields or take parameters that can be malformed
// return (result, error). Errors wrap the sentinels in errors.go
// ([ErrFieldNotFound], [ErrInvalidArgument], [ErrInvalidOperator],
// [ErrDivisionByZero], …) and are raised before any result is produced: an
// operation either succeeds completely or returns nothing. Use [Query] to
// chain several steps and check the error once:
//
//	res, err := orders.Query().
//	    Where("price", ">=", 500).
//	    WhereLike("product", "%a%").
//	    OrderBy("price", collections.Desc).
//	    Get()
//
// # Immutability and aliasing
//
// All transformation methods return a *new* Collection, leaving the
// receiver unchanged. Records are shared, not copied: mutating a map record
// obtained from one collection is visible through every collection that
// references it. Collections are safe for concurrent reads; they must not
// be read while a record they hold is being mutated.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions: [Map], [FlatMap], [Reduce], [Pluck], [SumBy], [Collapse],
// [Flatten] and [Join].
//
// # Scopes
//
// Register named, reusable predicates via [RegisterScope] and apply them
// through [Collection.Scope] or [Query.Scope]:
//
//	collections.RegisterScope("paid", func(_ ...any) (match.Predicate, error) {
//	    return match.Where("status", "paid")
//	})
//
//	paid, err := orders.Scope("paid")
package collections
