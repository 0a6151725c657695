package memo

// unit is the singleton key for zero-argument memoization.
type unit struct{}

// Pair is an ordered two-argument cache key. Two Pairs are equal only
// if both components are equal in order, so a memoizer called with
// (a, b) and (b, a) computes twice unless a == b.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// PairOf builds the cache key for an ordered argument pair.
func PairOf[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Triple is an ordered three-argument cache key.
type Triple[A, B, C comparable] struct {
	First  A
	Second B
	Third  C
}

// TripleOf builds the cache key for an ordered argument triple.
func TripleOf[A, B, C comparable](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}
