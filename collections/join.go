package collections

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/compare"
	"github.com/hasbyte1/go-laravel-query/field"
)

// Record is the element type of joined collections: the field union of a
// left record and a matched right record.
type Record = map[string]any

// JoinType selects how unmatched left records are treated.
type JoinType string

// Supported join types.
const (
	// InnerJoin emits only matched pairs.
	InnerJoin JoinType = "inner"

	// LeftJoin also emits every unmatched left record on its own.
	LeftJoin JoinType = "left"
)

// ParseJoinType parses "inner" or "left", ignoring case. Right and outer
// joins are not supported and fail with [ErrInvalidArgument].
func ParseJoinType(s string) (JoinType, error) {
	t := JoinType(strings.ToLower(strings.TrimSpace(s)))
	if err := t.validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t JoinType) validate() error {
	if t != InnerJoin && t != LeftJoin {
		return errors.Wrapf(ErrInvalidArgument, "unsupported join type %q", string(t))
	}
	return nil
}

// Join combines left and right on leftKey == rightKey (strict equality).
//
// For every left record, right is scanned in order; each match emits a new
// record holding the left fields overwritten by the right fields. With
// [LeftJoin] a left record without matches is emitted as is: a
// map[string]any record is passed through by reference, other records are
// converted with [field.ToMap]. The result is re-keyed 0…n-1.
//
// No index is built, so Join costs O(len(left) × len(right)) comparisons;
// it is meant for small in-memory datasets.
//
//	users := collections.New(
//	    collections.Record{"id": 1, "name": "John"},
//	    collections.Record{"id": 2, "name": "Jane"},
//	)
//	orders := collections.New(
//	    collections.Record{"user_id": 1, "product": "Book"},
//	    collections.Record{"user_id": 1, "product": "Pen"},
//	    collections.Record{"user_id": 2, "product": "Notebook"},
//	)
//	joined, _ := collections.Join(users, orders, "id", "user_id", collections.InnerJoin)
//	// 3 records, the first {id:1 name:John user_id:1 product:Book}
func Join[L, R any](left *Collection[L], right *Collection[R], leftKey, rightKey string, kind JoinType) (*Collection[Record], error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}

	rightVals := make([]any, len(right.items))
	rightMaps := make([]Record, len(right.items))
	for i, r := range right.items {
		v, err := field.Resolve(r, rightKey)
		if err != nil {
			return nil, err
		}
		m, err := field.ToMap(r)
		if err != nil {
			return nil, err
		}
		rightVals[i], rightMaps[i] = v, m
	}

	out := make([]Record, 0, len(left.items))
	for _, l := range left.items {
		lv, err := field.Resolve(l, leftKey)
		if err != nil {
			return nil, err
		}
		var lm Record
		matched := false
		for i, rv := range rightVals {
			if !compare.StrictEqual(lv, rv) {
				continue
			}
			if lm == nil {
				if lm, err = field.ToMap(l); err != nil {
					return nil, err
				}
			}
			merged := make(Record, len(lm)+len(rightMaps[i]))
			for k, v := range lm {
				merged[k] = v
			}
			for k, v := range rightMaps[i] {
				merged[k] = v
			}
			out = append(out, merged)
			matched = true
		}
		if matched || kind != LeftJoin {
			continue
		}
		if m, ok := any(l).(map[string]any); ok {
			out = append(out, m)
			continue
		}
		m, err := field.ToMap(l)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return positional(out), nil
}

// Join is the method form of the package-level [Join] for two collections
// of the same record type.
func (c *Collection[T]) Join(right *Collection[T], leftKey, rightKey string, kind JoinType) (*Collection[Record], error) {
	return Join(c, right, leftKey, rightKey, kind)
}
