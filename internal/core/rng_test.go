package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.Range(0, 1000), b.Range(0, 1000); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestRNGRangeInclusive(t *testing.T) {
	r := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.Range(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("Range(3,5) returned %d", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 5; v++ {
		if !seen[v] {
			t.Fatalf("Range(3,5) never produced %d", v)
		}
	}
	if got := r.Range(9, 9); got != 9 {
		t.Fatalf("degenerate range returned %d", got)
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 200; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !r.Chance(100) {
			t.Fatal("Chance(100) must always succeed")
		}
	}
}

func TestRNGSeedRestartsStream(t *testing.T) {
	r := NewRNG(99)
	first := r.Intn(1 << 30)
	r.Intn(1 << 30)
	r.Seed(99)
	if got := r.Intn(1 << 30); got != first {
		t.Fatalf("reseeded stream returned %d, want %d", got, first)
	}
}
