package collections

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-laravel-query/compare"
	"github.com/hasbyte1/go-laravel-query/field"
)

// GroupNode is one entry of a [Group]: either a leaf holding the records
// assigned to a key, or a branch holding the next grouping level.
type GroupNode[T any] struct {
	leaf   *Collection[T]
	branch *Group[T]
}

// IsLeaf reports whether n holds records rather than a nested Group.
func (n *GroupNode[T]) IsLeaf() bool { return n.leaf != nil }

// Collection returns the records of a leaf node, or nil for a branch.
func (n *GroupNode[T]) Collection() *Collection[T] { return n.leaf }

// Group returns the nested Group of a branch node, or nil for a leaf.
func (n *GroupNode[T]) Group() *Group[T] { return n.branch }

// Count returns the number of records under n at any depth.
func (n *GroupNode[T]) Count() int {
	if n.IsLeaf() {
		return n.leaf.Count()
	}
	return n.branch.Count()
}

// Group partitions a collection by key. Keys appear in the order in which
// they were first seen; each key maps to a [GroupNode].
//
// Keys compare with Go equality, so 35 and "35" are distinct groups. Keys
// that are not comparable (slices, maps) are matched by content.
type Group[T any] struct {
	keys  []any
	nodes []*GroupNode[T]
	index map[any]int
}

// Keys returns the group keys in first-seen order.
func (g *Group[T]) Keys() []any {
	out := make([]any, len(g.keys))
	copy(out, g.keys)
	return out
}

// Len returns the number of keys.
func (g *Group[T]) Len() int { return len(g.keys) }

// Count returns the number of records in the group at any depth.
func (g *Group[T]) Count() int {
	n := 0
	for _, node := range g.nodes {
		n += node.Count()
	}
	return n
}

// Get returns the node stored under key.
func (g *Group[T]) Get(key any) (*GroupNode[T], bool) {
	k, err := bucketKey(key)
	if err != nil {
		return nil, false
	}
	i, ok := g.index[k]
	if !ok {
		return nil, false
	}
	return g.nodes[i], true
}

// Collection returns the records stored under key when the node is a leaf.
func (g *Group[T]) Collection(key any) (*Collection[T], bool) {
	n, ok := g.Get(key)
	if !ok || !n.IsLeaf() {
		return nil, false
	}
	return n.leaf, true
}

// Each calls fn(key, node) for every key in order.
func (g *Group[T]) Each(fn func(key any, node *GroupNode[T])) {
	for i, k := range g.keys {
		fn(k, g.nodes[i])
	}
}

// Flatten concatenates every leaf depth-first into one collection re-keyed
// 0…n-1.
func (g *Group[T]) Flatten() *Collection[T] {
	out := make([]T, 0, g.Count())
	var walk func(*Group[T])
	walk = func(g *Group[T]) {
		for _, node := range g.nodes {
			if node.IsLeaf() {
				out = append(out, node.leaf.items...)
				continue
			}
			walk(node.branch)
		}
	}
	walk(g)
	return positional(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Building
// ─────────────────────────────────────────────────────────────────────────────

// groupBuilder accumulates records per key before they are frozen into
// leaf collections.
type groupBuilder[T any] struct {
	keys  []any
	items [][]T
	index map[any]int
}

func newGroupBuilder[T any]() *groupBuilder[T] {
	return &groupBuilder[T]{index: make(map[any]int)}
}

func (b *groupBuilder[T]) add(key any, item T) error {
	k, err := bucketKey(key)
	if err != nil {
		return err
	}
	i, ok := b.index[k]
	if !ok {
		i = len(b.keys)
		b.index[k] = i
		b.keys = append(b.keys, key)
		b.items = append(b.items, nil)
	}
	b.items[i] = append(b.items[i], item)
	return nil
}

func (b *groupBuilder[T]) build() *Group[T] {
	g := &Group[T]{
		keys:  b.keys,
		nodes: make([]*GroupNode[T], len(b.keys)),
		index: b.index,
	}
	for i := range b.keys {
		g.nodes[i] = &GroupNode[T]{leaf: positional(b.items[i])}
	}
	return g
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping operations
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy partitions the records by the value of a field. Records whose
// value is nil are left out of every group; records lacking the field fail
// the whole operation with [ErrFieldNotFound]. Each group is re-keyed
// 0…n-1.
//
//	g, _ := collections.From(orders).GroupBy("quantity")
//	g.Keys()                     // [35 9 12]
//	g.Collection(35)             // the two orders with quantity 35
func (c *Collection[T]) GroupBy(name string) (*Group[T], error) {
	b := newGroupBuilder[T]()
	for _, item := range c.items {
		v, err := field.Resolve(item, name)
		if err != nil {
			return nil, err
		}
		if field.IsNil(v) {
			continue
		}
		if err := b.add(v, item); err != nil {
			return nil, err
		}
	}
	return b.build(), nil
}

// GroupByFunc partitions the records by the key fn returns. A nil key
// leaves the record out of every group.
func (c *Collection[T]) GroupByFunc(fn func(T, Key) any) (*Group[T], error) {
	b := newGroupBuilder[T]()
	for i, item := range c.items {
		k := fn(item, c.keys[i])
		if field.IsNil(k) {
			continue
		}
		if err := b.add(k, item); err != nil {
			return nil, err
		}
	}
	return b.build(), nil
}

// GroupByMultiple groups by each field in turn, producing one nesting level
// per field. Leaves sit at the depth of the last field.
//
//	g, _ := c.GroupByMultiple("country", "city")
//	uk, _ := g.Get("UK")
//	london, _ := uk.Group().Collection("London")
func (c *Collection[T]) GroupByMultiple(names ...string) (*Group[T], error) {
	if len(names) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "group by multiple needs at least one field")
	}
	g, err := c.GroupBy(names[0])
	if err != nil {
		return nil, err
	}
	if len(names) == 1 {
		return g, nil
	}
	for i, node := range g.nodes {
		sub, err := node.leaf.GroupByMultiple(names[1:]...)
		if err != nil {
			return nil, err
		}
		g.nodes[i] = &GroupNode[T]{branch: sub}
	}
	return g, nil
}

// GroupByRange buckets records by a numeric field into half-open ranges of
// width interval. A value v lands in the bucket starting at
// floor(v/interval)*interval, keyed "{start}-{start+interval}":
//
//	collections.New(10, 15, 30, 35, 50).GroupByRange("", 20)
//	// "0-20" → [10 15], "20-40" → [30 35], "40-60" → [50]
//
// Records whose value is nil are left out, as in [Collection.GroupBy]. It
// fails with [ErrInvalidArgument] when interval is not positive or a value
// is not numeric.
func (c *Collection[T]) GroupByRange(name string, interval float64) (*Group[T], error) {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, errors.Wrapf(ErrInvalidArgument, "range interval %v", interval)
	}
	b := newGroupBuilder[T]()
	for _, item := range c.items {
		v, err := field.Resolve(item, name)
		if err != nil {
			return nil, err
		}
		if field.IsNil(v) {
			continue
		}
		n, ok := compare.ToNumber(v)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidArgument, "range value %v of field %q is not numeric", v, name)
		}
		start := math.Floor(n/interval) * interval
		if err := b.add(rangeLabel(start, start+interval), item); err != nil {
			return nil, err
		}
	}
	return b.build(), nil
}

func rangeLabel(start, end float64) string {
	return strconv.FormatFloat(start, 'f', -1, 64) + "-" + strconv.FormatFloat(end, 'f', -1, 64)
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting
// ─────────────────────────────────────────────────────────────────────────────

// Counts maps distinct values to the number of records holding them, in
// first-seen order.
type Counts struct {
	pairs []Pair[any, int]
	index map[any]int
}

// Keys returns the distinct values in first-seen order.
func (c *Counts) Keys() []any {
	out := make([]any, len(c.pairs))
	for i, p := range c.pairs {
		out[i] = p.First
	}
	return out
}

// Get returns the count for value, 0 when it never occurred.
func (c *Counts) Get(value any) int {
	k, err := bucketKey(value)
	if err != nil {
		return 0
	}
	if i, ok := c.index[k]; ok {
		return c.pairs[i].Second
	}
	return 0
}

// Len returns the number of distinct values.
func (c *Counts) Len() int { return len(c.pairs) }

// Total returns the sum of all counts.
func (c *Counts) Total() int {
	n := 0
	for _, p := range c.pairs {
		n += p.Second
	}
	return n
}

// Pairs returns (value, count) pairs in first-seen order.
func (c *Counts) Pairs() []Pair[any, int] {
	out := make([]Pair[any, int], len(c.pairs))
	copy(out, c.pairs)
	return out
}

// CountBy counts the records sharing each distinct value of a field. Like
// [Collection.GroupBy], nil values are not counted.
//
//	counts, _ := c.CountBy("status")
//	counts.Get("active") // 2
func (c *Collection[T]) CountBy(name string) (*Counts, error) {
	g, err := c.GroupBy(name)
	if err != nil {
		return nil, err
	}
	out := &Counts{
		pairs: make([]Pair[any, int], len(g.keys)),
		index: g.index,
	}
	for i, k := range g.keys {
		out.pairs[i] = Pair[any, int]{First: k, Second: g.nodes[i].Count()}
	}
	return out, nil
}
