package life

import "lifegrid/pkg/core"

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// RandomizeRegion brings each cell of r to life independently with
// probability density. Cells that roll dead keep their current state, so the
// call only ever adds cells. density is clamped to [0, 1].
func (w *World) RandomizeRegion(r core.Rect, density float64) {
	density = clampUnit(density)
	if density == 0 {
		return
	}
	eachCell(r, func(c core.Cell) bool {
		if w.rng.Chance(density) {
			w.SetAlive(c.X, c.Y, true)
		}
		return true
	})
}

// SeedNoise brings to life the cells of r whose Perlin noise sample exceeds
// threshold, producing clustered blobs instead of uniform static. Like
// RandomizeRegion it never kills cells.
func (w *World) SeedNoise(r core.Rect, threshold float64) {
	scale := w.cfg.NoiseScale
	if !(scale > 0) {
		scale = DefaultConfig().NoiseScale
	}
	eachCell(r, func(c core.Cell) bool {
		if w.noise.Noise2D(float64(c.X)*scale, float64(c.Y)*scale) > threshold {
			w.SetAlive(c.X, c.Y, true)
		}
		return true
	})
}
