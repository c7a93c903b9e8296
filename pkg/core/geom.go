package core

import (
	"fmt"
	"math"
)

// Cell is a coordinate on the unbounded grid.
type Cell struct {
	X, Y int64
}

// Add offsets c by d.
func (c Cell) Add(d Cell) Cell { return Cell{X: c.X + d.X, Y: c.Y + d.Y} }

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Rect is an inclusive, axis-aligned rectangle of cells.
type Rect struct {
	X0, Y0 int64
	X1, Y1 int64
}

// NewRect builds a rectangle from two opposite corners in any order.
func NewRect(x0, y0, x1, y1 int64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Contains reports whether c lies inside r, edges included.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X0 && c.X <= r.X1 && c.Y >= r.Y0 && c.Y <= r.Y1
}

// Width returns the number of columns, saturating at math.MaxUint64.
func (r Rect) Width() uint64 { return span(r.X0, r.X1) }

// Height returns the number of rows, saturating at math.MaxUint64.
func (r Rect) Height() uint64 { return span(r.Y0, r.Y1) }

// Area returns the number of cells in r, saturating at math.MaxUint64.
func (r Rect) Area() uint64 {
	w, h := r.Width(), r.Height()
	if w == 0 || h == 0 {
		return 0
	}
	if w > math.MaxUint64/h {
		return math.MaxUint64
	}
	return w * h
}

// Inset grows r by n cells on every side (shrinks for negative n), clamping
// at the int64 limits.
func (r Rect) Inset(n int64) Rect {
	return Rect{
		X0: subClamp(r.X0, n),
		Y0: subClamp(r.Y0, n),
		X1: addClamp(r.X1, n),
		Y1: addClamp(r.Y1, n),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", r.X0, r.Y0, r.X1, r.Y1)
}

func span(lo, hi int64) uint64 {
	if hi < lo {
		return 0
	}
	d := uint64(hi) - uint64(lo)
	if d == math.MaxUint64 {
		return d
	}
	return d + 1
}

func addClamp(v, n int64) int64 {
	if n > 0 && v > math.MaxInt64-n {
		return math.MaxInt64
	}
	if n < 0 && v < math.MinInt64-n {
		return math.MinInt64
	}
	return v + n
}

func subClamp(v, n int64) int64 {
	if n == math.MinInt64 {
		return addClamp(addClamp(v, math.MaxInt64), 1)
	}
	return addClamp(v, -n)
}
