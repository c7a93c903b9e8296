package render

import (
	"image/color"
	"iter"

	"lifegrid/pkg/core"
)

// CellSource yields the live cells inside a rectangle.
type CellSource interface {
	LiveCellsInRange(r core.Rect) iter.Seq[core.Cell]
}

// MaxRasterCells bounds the window a Raster will allocate for.
const MaxRasterCells = 1 << 22

// Raster holds an RGBA buffer with one pixel per cell of a window.
type Raster struct {
	window core.Rect
	w, h   int
	buf    []byte
}

// Window returns the cell rectangle currently covered by the buffer.
func (r *Raster) Window() core.Rect { return r.window }

// Size returns the buffer dimensions in pixels.
func (r *Raster) Size() (int, int) { return r.w, r.h }

// Pixels exposes the RGBA buffer in row-major order.
func (r *Raster) Pixels() []byte { return r.buf }

// Fill paints window from src: on for live cells, off for the rest. It
// reports false, leaving the buffer untouched, when the window is empty or
// larger than MaxRasterCells.
func (r *Raster) Fill(src CellSource, window core.Rect, on, off color.Color) bool {
	area := window.Area()
	if area == 0 || area > MaxRasterCells {
		return false
	}
	w, h := int(window.Width()), int(window.Height())
	if need := 4 * w * h; cap(r.buf) < need {
		r.buf = make([]byte, need)
	} else {
		r.buf = r.buf[:need]
	}
	r.window, r.w, r.h = window, w, h

	offPx := rgba(off)
	for i := 0; i < len(r.buf); i += 4 {
		copy(r.buf[i:i+4], offPx[:])
	}
	onPx := rgba(on)
	for c := range src.LiveCellsInRange(window) {
		base := (int(c.Y-window.Y0)*w + int(c.X-window.X0)) * 4
		copy(r.buf[base:base+4], onPx[:])
	}
	return true
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
