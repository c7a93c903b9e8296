package core

import (
	"math"
	"testing"
)

func TestNewRectNormalisesCorners(t *testing.T) {
	r := NewRect(5, -2, -3, 4)
	want := Rect{X0: -3, Y0: -2, X1: 5, Y1: 4}
	if r != want {
		t.Fatalf("NewRect = %v, want %v", r, want)
	}
	if r.Width() != 9 || r.Height() != 7 || r.Area() != 63 {
		t.Fatalf("unexpected dimensions %dx%d area %d", r.Width(), r.Height(), r.Area())
	}
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := NewRect(0, 0, 2, 2)
	for _, c := range []Cell{{0, 0}, {2, 2}, {0, 2}, {1, 1}} {
		if !r.Contains(c) {
			t.Fatalf("expected %v inside %v", c, r)
		}
	}
	for _, c := range []Cell{{-1, 0}, {3, 1}, {1, 3}} {
		if r.Contains(c) {
			t.Fatalf("expected %v outside %v", c, r)
		}
	}
}

func TestRectAreaSaturates(t *testing.T) {
	r := NewRect(math.MinInt64, math.MinInt64, math.MaxInt64, math.MaxInt64)
	if r.Area() != math.MaxUint64 {
		t.Fatalf("expected saturated area, got %d", r.Area())
	}
}

func TestRectInsetClamps(t *testing.T) {
	r := NewRect(math.MaxInt64-1, math.MinInt64+1, math.MaxInt64, math.MinInt64+1).Inset(2)
	if r.X1 != math.MaxInt64 || r.Y0 != math.MinInt64 {
		t.Fatalf("inset did not clamp: %v", r)
	}
	if r.X0 != math.MaxInt64-3 {
		t.Fatalf("inset moved X0 to %d", r.X0)
	}
}
