package core

import (
	"math"
	"testing"
)

func TestChanceExtremes(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 100; i++ {
		if r.Chance(0) || r.Chance(-1) || r.Chance(math.NaN()) {
			t.Fatal("non-positive probability fired")
		}
		if !r.Chance(1) || !r.Chance(2) {
			t.Fatal("probability >= 1 did not fire")
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 32; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}
