package memo

import "testing"

// TestPair_Equality verifies tuple keys compare componentwise in
// order.
func TestPair_Equality(t *testing.T) {
	tests := []struct {
		name string
		x, y Pair[string, int]
		want bool
	}{
		{"equal", PairOf("a", 1), PairOf("a", 1), true},
		{"first differs", PairOf("a", 1), PairOf("b", 1), false},
		{"second differs", PairOf("a", 1), PairOf("a", 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x == tt.y; got != tt.want {
				t.Errorf("%v == %v is %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestPair_OrderMatters verifies swapped components are distinct keys.
func TestPair_OrderMatters(t *testing.T) {
	if PairOf("a", "b") == PairOf("b", "a") {
		t.Error("swapped pair compared equal")
	}
	if PairOf("a", "a") != PairOf("a", "a") {
		t.Error("identical pair compared unequal")
	}
}

// TestTriple_MapKey verifies triples work as map keys, the property
// the result store relies on.
func TestTriple_MapKey(t *testing.T) {
	m := map[Triple[int, int, int]]string{}
	m[TripleOf(1, 2, 3)] = "a"
	m[TripleOf(3, 2, 1)] = "b"
	m[TripleOf(1, 2, 3)] = "c"

	if len(m) != 2 {
		t.Fatalf("map has %d entries, want 2", len(m))
	}
	if m[TripleOf(1, 2, 3)] != "c" {
		t.Errorf("lookup = %q, want %q", m[TripleOf(1, 2, 3)], "c")
	}
}
