package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-query/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

// makeRecords creates n map records with a few repeating field values.
func makeRecords(n int) *collections.Collection[collections.Record] {
	items := make([]collections.Record, n)
	statuses := []string{"paid", "open", "void"}
	for i := range items {
		items[i] = collections.Record{
			"id":     i,
			"price":  (i * 37) % 1000,
			"status": statuses[i%len(statuses)],
			"name":   "item",
		}
	}
	return collections.From(items)
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
	}
}

func BenchmarkWhere(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Where("price", ">=", 500)
	}
}

func BenchmarkWhereLike(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.WhereLike("status", "%ai%")
	}
}

func BenchmarkOrderBy(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.OrderBy("price", collections.Desc)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GroupBy("status")
	}
}

func BenchmarkGroupByRange(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GroupByRange("price", 100)
	}
}

func BenchmarkJoin(b *testing.B) {
	left := makeRecords(500)
	right := makeRecords(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.Join(left, right, "id", "price", collections.InnerJoin)
	}
}

func BenchmarkStats(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Stats("price")
	}
}

func BenchmarkUnique(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Unique("status")
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(n int, _ collections.Key) int { return n * 2 })
	}
}
