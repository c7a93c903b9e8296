// Package life implements Conway's Game of Life, and Life-like rules, over an
// unbounded grid that stores only its live cells.
package life

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"lifegrid/pkg/core"

	"github.com/aquilax/go-perlin"
)

// World is the sparse live-cell set plus the state needed to advance and
// reseed it. A cell is alive iff it is present in the set.
type World struct {
	cfg   Config
	name  string
	cells map[core.Cell]struct{}
	gen   int

	rng   *core.RNG
	noise *perlin.Perlin
}

// New returns an empty Conway world using the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns an empty world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Rule.IsZero() {
		cfg.Rule = Conway
	}
	w := &World{cfg: cfg, name: "life", cells: make(map[core.Cell]struct{})}
	w.reseed(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Rule returns the birth/survival rule in effect.
func (w *World) Rule() Rule { return w.cfg.Rule }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Generation returns the number of steps since the last clear or reset.
func (w *World) Generation() int { return w.gen }

// Population returns the number of live cells.
func (w *World) Population() int { return len(w.cells) }

// IsAlive reports whether (x, y) is a live cell.
func (w *World) IsAlive(x, y int64) bool {
	_, ok := w.cells[core.Cell{X: x, Y: y}]
	return ok
}

// SetAlive brings (x, y) to the requested state. Setting a cell to the state
// it already has is a no-op.
func (w *World) SetAlive(x, y int64, alive bool) {
	c := core.Cell{X: x, Y: y}
	if alive {
		w.cells[c] = struct{}{}
		return
	}
	delete(w.cells, c)
}

// Toggle flips the state of (x, y).
func (w *World) Toggle(x, y int64) {
	w.SetAlive(x, y, !w.IsAlive(x, y))
}

// Clear kills every cell and restarts the generation count.
func (w *World) Clear() {
	clear(w.cells)
	w.gen = 0
}

// Reset clears the world and rebuilds the configured starting state: the
// named start pattern at the origin, or a random fill of the start area
// centred on the origin. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.Clear()
	w.reseed(seed)
	if p, ok := PatternByName(w.cfg.Pattern); ok {
		w.StampPattern(p, 0, 0)
		return
	}
	w.RandomizeRegion(w.startArea(), w.cfg.Density)
}

// Step advances the world by one generation. Every live cell adds one to the
// count of each of its eight neighbours; only cells that received a count
// are candidates, so a live cell with no live neighbours is dropped.
func (w *World) Step() {
	counts := make(map[core.Cell]uint8, len(w.cells)*4)
	for c := range w.cells {
		eachNeighbor(c, func(n core.Cell) {
			counts[n]++
		})
	}

	next := make(map[core.Cell]struct{}, len(w.cells))
	for c, n := range counts {
		_, alive := w.cells[c]
		if w.cfg.Rule.Next(alive, int(n)) {
			next[c] = struct{}{}
		}
	}
	w.cells = next
	w.gen++
}

// LiveCellsInRange yields the live cells inside r, in no particular order.
// The sequence is evaluated lazily against the world as it is when iterated
// and can be ranged over repeatedly. The world must not be mutated while an
// iteration is in progress.
func (w *World) LiveCellsInRange(r core.Rect) iter.Seq[core.Cell] {
	return func(yield func(core.Cell) bool) {
		if r.X1 < r.X0 || r.Y1 < r.Y0 || len(w.cells) == 0 {
			return
		}
		if r.Area() < uint64(len(w.cells)) {
			eachCell(r, func(c core.Cell) bool {
				if _, ok := w.cells[c]; ok {
					return yield(c)
				}
				return true
			})
			return
		}
		for c := range w.cells {
			if r.Contains(c) && !yield(c) {
				return
			}
		}
	}
}

// Snapshot returns the live cells sorted by row, then column.
func (w *World) Snapshot() []core.Cell {
	out := make([]core.Cell, 0, len(w.cells))
	for c := range w.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

// Bounds returns the smallest rectangle holding every live cell. ok is false
// for an empty world.
func (w *World) Bounds() (r core.Rect, ok bool) {
	for c := range w.cells {
		if !ok {
			r = core.Rect{X0: c.X, Y0: c.Y, X1: c.X, Y1: c.Y}
			ok = true
			continue
		}
		r.X0 = min(r.X0, c.X)
		r.Y0 = min(r.Y0, c.Y)
		r.X1 = max(r.X1, c.X)
		r.Y1 = max(r.Y1, c.Y)
	}
	return r, ok
}

func (w *World) reseed(seed int64) {
	w.rng = core.NewRNG(seed)
	w.noise = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
}

func (w *World) startArea() core.Rect {
	hw := int64(w.cfg.Width / 2)
	hh := int64(w.cfg.Height / 2)
	return core.NewRect(-hw, -hh, int64(w.cfg.Width)-hw-1, int64(w.cfg.Height)-hh-1)
}

// eachNeighbor calls fn for the Moore neighbourhood of c. Neighbours that
// would fall outside the int64 range are skipped rather than wrapped.
func eachNeighbor(c core.Cell, fn func(core.Cell)) {
	for dy := int64(-1); dy <= 1; dy++ {
		if (dy < 0 && c.Y == math.MinInt64) || (dy > 0 && c.Y == math.MaxInt64) {
			continue
		}
		for dx := int64(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if (dx < 0 && c.X == math.MinInt64) || (dx > 0 && c.X == math.MaxInt64) {
				continue
			}
			fn(core.Cell{X: c.X + dx, Y: c.Y + dy})
		}
	}
}

// eachCell walks r row by row until fn returns false. The loops stop on the
// last index instead of comparing past it so that rectangles touching the
// int64 limits terminate.
func eachCell(r core.Rect, fn func(core.Cell) bool) {
	if r.X1 < r.X0 || r.Y1 < r.Y0 {
		return
	}
	for y := r.Y0; ; y++ {
		for x := r.X0; ; x++ {
			if !fn(core.Cell{X: x, Y: y}) {
				return
			}
			if x == r.X1 {
				break
			}
		}
		if y == r.Y1 {
			return
		}
	}
}

func compareCells(a, b core.Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("highlife", func(cfg map[string]string) core.Sim {
		c := DefaultConfig()
		c.Rule = HighLife
		w := NewWithConfig(c.Merge(cfg))
		w.name = "highlife"
		return w
	})
}
