package collections

import "fmt"

// Pair holds two values of possibly different types.
//
// It is the entry type of keyed collections ([FromPairs], [Collection.Entries])
// and of [Counts.Pairs].
type Pair[A, B any] struct {
	First  A
	Second B
}

// P is shorthand for Pair[A, B]{First: a, Second: b}.
func P[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
