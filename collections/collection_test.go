package collections_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/hasbyte1/go-laravel-query/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func keys(ks ...collections.Key) []collections.Key { return ks }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	c := collections.New(1, 2, 3)
	assertSlice(t, c.All(), []int{1, 2, 3})
	assertSlice(t, c.Keys(), keys(0, 1, 2))
}

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z" // mutate original – should not affect the collection
	if c.All()[0] != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestFromPairs(t *testing.T) {
	c := collections.FromPairs(
		collections.P[collections.Key]("x", 1),
		collections.P[collections.Key]("y", 2),
		collections.P[collections.Key]("x", 3),
	)
	assertSlice(t, c.Keys(), keys("x", "y"))
	assertSlice(t, c.All(), []int{3, 2})
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	if c.Count() != 0 || !c.IsEmpty() || c.IsNotEmpty() {
		t.Fatal("empty collection should have Count 0")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	c := ints(10, 20, 30)
	if v, ok := c.Get(1); !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	if _, ok := c.Get(5); ok {
		t.Fatal("Get(5) should be absent")
	}
	if _, ok := c.Get("1"); ok {
		t.Fatal(`Get("1") should not match int key 1`)
	}
	if c.GetOr(9, -1) != -1 {
		t.Fatal("GetOr did not return the default")
	}
	if !c.Has(2) || c.Has(3) {
		t.Fatal("Has failed")
	}
}

func TestPutForget(t *testing.T) {
	c := ints(1, 2, 3)
	put := c.Put(1, 20).Put("extra", 4)
	assertSlice(t, put.All(), []int{1, 20, 3, 4})
	assertSlice(t, put.Keys(), keys(0, 1, 2, "extra"))
	assertSlice(t, c.All(), []int{1, 2, 3})

	forgot := put.Forget(1)
	assertSlice(t, forgot.Keys(), keys(0, 2, "extra"))
}

func TestOnlyExcept(t *testing.T) {
	c := collections.FromPairs(
		collections.P[collections.Key]("a", 1),
		collections.P[collections.Key]("b", 2),
		collections.P[collections.Key]("c", 3),
	)
	only := c.Only("c", "a", "zz")
	assertSlice(t, only.All(), []int{1, 3})
	assertSlice(t, only.Keys(), keys("a", "c"))

	except := c.Except("b", []int{1})
	assertSlice(t, except.All(), []int{1, 3})
	assertSlice(t, except.Keys(), keys("a", "c"))

	if c.Only().Count() != 0 || c.Except().Count() != 3 {
		t.Fatal("empty key lists")
	}
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestHasAll(t *testing.T) {
	c := ints(10, 20, 30)
	if !c.HasAll(0, 2) {
		t.Fatal("HasAll(0, 2) = false")
	}
	if c.HasAll(0, 3) {
		t.Fatal("HasAll(0, 3) = true")
	}
	if !c.HasAll() {
		t.Fatal("HasAll() = false")
	}
	if c.HasAll(map[string]int{}) {
		t.Fatal("HasAll(map) = true")
	}
}

func TestEntries(t *testing.T) {
	e := ints(7, 8).Entries()
	if len(e) != 2 || e[1].First != 1 || e[1].Second != 8 {
		t.Fatalf("Entries = %v", e)
	}
	if s := e[0].String(); s != "(0, 7)" {
		t.Fatalf("Pair.String() = %q", s)
	}
}

func TestValues(t *testing.T) {
	c := ints(1, 2, 3, 4).Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
	assertSlice(t, c.Keys(), keys(1, 3))
	assertSlice(t, c.Values().Keys(), keys(0, 1))
}

func TestToJSON(t *testing.T) {
	b, err := ints(1, 2, 3).ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[1,2,3]" {
		t.Fatalf("ToJSON = %s", b)
	}
	if s := collections.Empty[int]().String(); s != "[]" {
		t.Fatalf("String() = %q; want []", s)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & search
// ─────────────────────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	var sum int
	var seen []collections.Key
	ints(1, 2, 3).Each(func(n int, k collections.Key) {
		sum += n
		seen = append(seen, k)
	})
	if sum != 6 {
		t.Fatalf("sum = %d", sum)
	}
	assertSlice(t, seen, keys(0, 1, 2))
}

func TestTap(t *testing.T) {
	called := 0
	c := ints(1, 2)
	if c.Tap(func(*collections.Collection[int]) { called++ }) != c || called != 1 {
		t.Fatal("Tap should call fn once and return the receiver")
	}
}

func TestFirstLast(t *testing.T) {
	c := ints(1, 2, 3, 4)
	even := func(n int) bool { return n%2 == 0 }

	if v, ok := c.First(); !ok || v != 1 {
		t.Fatalf("First() = %v", v)
	}
	if v, ok := c.First(even); !ok || v != 2 {
		t.Fatalf("First(even) = %v", v)
	}
	if v, ok := c.Last(even); !ok || v != 4 {
		t.Fatalf("Last(even) = %v", v)
	}
	if _, ok := collections.Empty[int]().Last(); ok {
		t.Fatal("Last on empty should fail")
	}
	if _, err := c.FirstOrFail(func(n int) bool { return n > 10 }); !errors.Is(err, collections.ErrNoMatchingItems) {
		t.Fatalf("FirstOrFail err = %v", err)
	}
	if _, err := c.LastOrFail(func(n int) bool { return n > 10 }); !errors.Is(err, collections.ErrNoMatchingItems) {
		t.Fatalf("LastOrFail err = %v", err)
	}
	if v, err := c.LastOrFail(even); err != nil || v != 4 {
		t.Fatalf("LastOrFail(even) = %v, %v", v, err)
	}
}

func TestContainsSearch(t *testing.T) {
	c := collections.FromPairs(
		collections.P[collections.Key]("a", 5),
		collections.P[collections.Key]("b", 6),
	)
	if !c.Contains(func(n int) bool { return n == 6 }) {
		t.Fatal("Contains failed")
	}
	if k, ok := c.Search(func(n int) bool { return n == 6 }); !ok || k != "b" {
		t.Fatalf("Search = %v, %v", k, ok)
	}
	if _, ok := c.Search(func(n int) bool { return n == 7 }); ok {
		t.Fatal("Search should fail")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestFilterKeepsKeys(t *testing.T) {
	c := ints(1, 2, 3, 4, 5).Filter(func(n int, _ collections.Key) bool { return n > 2 })
	assertSlice(t, c.All(), []int{3, 4, 5})
	assertSlice(t, c.Keys(), keys(2, 3, 4))
	if v, _ := c.Get(3); v != 4 {
		t.Fatalf("Get(3) after Filter = %v", v)
	}
}

func TestReject(t *testing.T) {
	c := ints(1, 2, 3, 4).Reject(func(n int, _ collections.Key) bool { return n%2 == 0 })
	assertSlice(t, c.All(), []int{1, 3})
}

func TestMapMethod(t *testing.T) {
	c := ints(1, 2).Map(func(n int, k collections.Key) any { return strconv.Itoa(n) + ":" + strconv.Itoa(k.(int)) })
	assertSlice(t, c.All(), []any{"1:0", "2:1"})
}

func TestReverse(t *testing.T) {
	c := ints(1, 2, 3).Reverse()
	assertSlice(t, c.All(), []int{3, 2, 1})
	assertSlice(t, c.Keys(), keys(2, 1, 0))
}

func TestShuffleRandom(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	s := c.Shuffle()
	if s.Count() != 5 {
		t.Fatal("Shuffle changed the count")
	}
	if collections.SumBy(s, func(n int) int { return n }) != 15 {
		t.Fatal("Shuffle lost items")
	}

	r, err := c.Random(2)
	if err != nil || r.Count() != 2 {
		t.Fatalf("Random(2) = %v, %v", r, err)
	}
	assertSlice(t, r.Keys(), keys(0, 1))

	all, err := c.Random(10)
	if err != nil || all.Count() != 5 {
		t.Fatalf("Random(10) = %v, %v", all, err)
	}
	if _, err := c.Random(0); !errors.Is(err, collections.ErrInvalidArgument) {
		t.Fatalf("Random(0) err = %v", err)
	}
}

func TestPushConcat(t *testing.T) {
	c := ints(1, 2).Filter(func(n int, _ collections.Key) bool { return n == 2 }).Push(3, 4)
	assertSlice(t, c.All(), []int{2, 3, 4})
	assertSlice(t, c.Keys(), keys(1, 2, 3))

	d := ints(1).Concat(ints(8, 9))
	assertSlice(t, d.All(), []int{1, 8, 9})
	assertSlice(t, d.Keys(), keys(0, 1, 2))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

func TestTakeSkipSlice(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	assertSlice(t, c.Take(2).All(), []int{1, 2})
	assertSlice(t, c.Take(-2).All(), []int{4, 5})
	assertSlice(t, c.Take(-2).Keys(), keys(3, 4))
	assertSlice(t, c.Take(10).All(), []int{1, 2, 3, 4, 5})
	assertSlice(t, c.Skip(3).All(), []int{4, 5})
	assertSlice(t, c.Skip(0).All(), []int{1, 2, 3, 4, 5})
	assertSlice(t, c.Skip(9).All(), []int{})
	assertSlice(t, c.Slice(1, 2).All(), []int{2, 3})
	assertSlice(t, c.Slice(-3, -1).All(), []int{3, 4, 5})
}

func TestChunk(t *testing.T) {
	chunks, err := ints(1, 2, 3, 4, 5).Chunk(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d", len(chunks))
	}
	assertSlice(t, chunks[2].All(), []int{5})
	assertSlice(t, chunks[1].Keys(), keys(2, 3))
	assertSlice(t, collections.Flatten(chunks...).All(), []int{1, 2, 3, 4, 5})

	if _, err := ints(1).Chunk(0); !errors.Is(err, collections.ErrInvalidArgument) {
		t.Fatalf("Chunk(0) err = %v", err)
	}
}

func TestPartitionImplode(t *testing.T) {
	evens, odds := ints(1, 2, 3, 4, 5).Partition(func(n int) bool { return n%2 == 0 })
	assertSlice(t, evens.All(), []int{2, 4})
	assertSlice(t, odds.All(), []int{1, 3, 5})
	assertSlice(t, odds.Keys(), keys(0, 2, 4))

	if s := ints(1, 2, 3).Implode("-", strconv.Itoa); s != "1-2-3" {
		t.Fatalf("Implode = %q", s)
	}
}

func TestWhenUnless(t *testing.T) {
	double := func(c *collections.Collection[int]) *collections.Collection[int] { return c.Push(c.All()...) }
	assertSlice(t, ints(1).When(true, double).All(), []int{1, 1})
	assertSlice(t, ints(1).When(false, double).All(), []int{1})
	assertSlice(t, ints(1).Unless(false, double).All(), []int{1, 1})
}

func TestImmutability(t *testing.T) {
	c := ints(3, 1, 2)
	c.Filter(func(n int, _ collections.Key) bool { return n > 1 })
	c.Reverse()
	c.Sort(collections.Asc)
	c.Push(9)
	assertSlice(t, c.All(), []int{3, 1, 2})
	assertSlice(t, c.Keys(), keys(0, 1, 2))
}
