package life

import "lifegrid/pkg/core"

// Pattern is a named, immutable set of live-cell offsets relative to an
// anchor.
type Pattern struct {
	name  string
	cells []core.Cell
}

func newPattern(name string, offsets [][2]int64) Pattern {
	cells := make([]core.Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = core.Cell{X: o[0], Y: o[1]}
	}
	return Pattern{name: name, cells: cells}
}

// Name returns the preset identifier.
func (p Pattern) Name() string { return p.name }

// Len returns the number of live cells in the pattern.
func (p Pattern) Len() int { return len(p.cells) }

// Cells returns a copy of the offsets.
func (p Pattern) Cells() []core.Cell {
	return append([]core.Cell(nil), p.cells...)
}

// Bounds returns the bounding box of the offsets relative to the anchor.
func (p Pattern) Bounds() core.Rect {
	if len(p.cells) == 0 {
		return core.Rect{}
	}
	r := core.Rect{X0: p.cells[0].X, Y0: p.cells[0].Y, X1: p.cells[0].X, Y1: p.cells[0].Y}
	for _, c := range p.cells[1:] {
		r.X0 = min(r.X0, c.X)
		r.Y0 = min(r.Y0, c.Y)
		r.X1 = max(r.X1, c.X)
		r.Y1 = max(r.Y1, c.Y)
	}
	return r
}

// StampPattern sets every cell of p alive, anchored at (x, y). Cells outside
// the pattern are untouched.
func (w *World) StampPattern(p Pattern, x, y int64) {
	anchor := core.Cell{X: x, Y: y}
	for _, c := range p.cells {
		d := anchor.Add(c)
		w.SetAlive(d.X, d.Y, true)
	}
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = newPattern("glider", [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})

	// LWSS is the lightweight spaceship.
	LWSS = newPattern("lwss", [][2]int64{
		{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3},
	})

	// Pulsar is a period-3 oscillator.
	Pulsar = newPattern("pulsar", [][2]int64{
		{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
		{0, 2}, {5, 2}, {7, 2}, {12, 2},
		{0, 3}, {5, 3}, {7, 3}, {12, 3},
		{0, 4}, {5, 4}, {7, 4}, {12, 4},
		{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
		{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
		{0, 8}, {5, 8}, {7, 8}, {12, 8},
		{0, 9}, {5, 9}, {7, 9}, {12, 9},
		{0, 10}, {5, 10}, {7, 10}, {12, 10},
		{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
	})

	// GosperGun emits a glider every 30 generations.
	GosperGun = newPattern("gosper", [][2]int64{
		{24, 0}, {22, 1}, {24, 1}, {12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3}, {0, 4}, {1, 4}, {10, 4},
		{16, 4}, {20, 4}, {21, 4}, {0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5},
		{22, 5}, {24, 5}, {10, 6}, {16, 6}, {24, 6}, {11, 7}, {15, 7}, {12, 8}, {13, 8},
	})
)

// Patterns returns the presets in menu order.
func Patterns() []Pattern {
	return []Pattern{Glider, LWSS, Pulsar, GosperGun}
}

// PatternByName looks up a preset.
func PatternByName(name string) (Pattern, bool) {
	for _, p := range Patterns() {
		if p.name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
