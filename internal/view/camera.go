// Package view maps between screen pixels and cells of the unbounded grid.
package view

import (
	"errors"
	"fmt"
	"math"

	"lifegrid/pkg/core"
)

const (
	MinZoom  = 0.2
	MaxZoom  = 4.0
	ZoomStep = 0.1

	// RenderMargin is the number of extra cells drawn beyond each edge of
	// the viewport.
	RenderMargin = 2
)

// ErrInvalidView is returned for non-positive viewport or cell sizes.
var ErrInvalidView = errors.New("invalid view")

// Camera tracks the pan offset and zoom of the viewport. Offsets are kept in
// unzoomed world pixels (cell coordinate times cell size).
type Camera struct {
	cellSize     float64
	zoom         float64
	offX, offY   float64
	viewW, viewH int

	maxCells uint64
}

// NewCamera returns a camera at zoom 1 with the origin cell in the middle of
// a viewW x viewH viewport.
func NewCamera(viewW, viewH, cellSize int) (*Camera, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidView, cellSize)
	}
	c := &Camera{cellSize: float64(cellSize), zoom: 1}
	if err := c.Resize(viewW, viewH); err != nil {
		return nil, err
	}
	c.CenterOn(core.Cell{})
	return c, nil
}

// MaxVisibleCells bounds the area of Visible(RenderMargin) for a viewW x
// viewH viewport at MinZoom, wherever the camera is panned.
func MaxVisibleCells(viewW, viewH, cellSize int) uint64 {
	if viewW <= 0 || viewH <= 0 || cellSize <= 0 {
		return 0
	}
	axis := func(px int) uint64 {
		return uint64(math.Ceil(float64(px)/(float64(cellSize)*MinZoom))) + 3 + 2*RenderMargin
	}
	return axis(viewW) * axis(viewH)
}

// LimitCells makes Resize reject viewports whose fully zoomed-out visible
// area would exceed n cells. Zero removes the limit.
func (c *Camera) LimitCells(n uint64) {
	c.maxCells = n
}

// Resize changes the viewport dimensions, keeping the top-left corner fixed.
func (c *Camera) Resize(viewW, viewH int) error {
	if viewW <= 0 || viewH <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidView, viewW, viewH)
	}
	if c.maxCells > 0 {
		if area := MaxVisibleCells(viewW, viewH, int(c.cellSize)); area > c.maxCells {
			return fmt.Errorf("%w: viewport %dx%d shows up to %d cells, limit %d", ErrInvalidView, viewW, viewH, area, c.maxCells)
		}
	}
	c.viewW, c.viewH = viewW, viewH
	return nil
}

// Size returns the viewport dimensions in screen pixels.
func (c *Camera) Size() (int, int) { return c.viewW, c.viewH }

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// CellPixels returns the on-screen edge length of one cell.
func (c *Camera) CellPixels() float64 { return c.cellSize * c.zoom }

// Pan moves the view so that content follows a drag of (dx, dy) screen
// pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.offX -= dx / c.zoom
	c.offY -= dy / c.zoom
}

// ZoomAt changes the zoom by steps increments of ZoomStep, keeping the world
// point under (sx, sy) fixed on screen. The result is clamped to
// [MinZoom, MaxZoom].
func (c *Camera) ZoomAt(sx, sy float64, steps int) {
	if steps == 0 {
		return
	}
	wx := sx/c.zoom + c.offX
	wy := sy/c.zoom + c.offY
	z := c.zoom + float64(steps)*ZoomStep
	z = math.Round(z*10) / 10
	c.zoom = math.Max(MinZoom, math.Min(z, MaxZoom))
	c.offX = wx - sx/c.zoom
	c.offY = wy - sy/c.zoom
}

// CenterOn pans so that cell sits in the middle of the viewport.
func (c *Camera) CenterOn(cell core.Cell) {
	cx := (float64(cell.X) + 0.5) * c.cellSize
	cy := (float64(cell.Y) + 0.5) * c.cellSize
	c.offX = cx - float64(c.viewW)/2/c.zoom
	c.offY = cy - float64(c.viewH)/2/c.zoom
}

// CellAt returns the cell under the screen pixel (sx, sy).
func (c *Camera) CellAt(sx, sy float64) core.Cell {
	return core.Cell{
		X: toCell((sx/c.zoom + c.offX) / c.cellSize),
		Y: toCell((sy/c.zoom + c.offY) / c.cellSize),
	}
}

// ScreenOf returns the screen position of the top-left corner of cell.
func (c *Camera) ScreenOf(cell core.Cell) (float64, float64) {
	return (float64(cell.X)*c.cellSize - c.offX) * c.zoom,
		(float64(cell.Y)*c.cellSize - c.offY) * c.zoom
}

// Center returns the cell in the middle of the viewport.
func (c *Camera) Center() core.Cell {
	return c.CellAt(float64(c.viewW)/2, float64(c.viewH)/2)
}

// Visible returns the cells covered by the viewport, grown by margin cells on
// every side.
func (c *Camera) Visible(margin int64) core.Rect {
	x0 := toCell(c.offX / c.cellSize)
	y0 := toCell(c.offY / c.cellSize)
	x1 := toCell(math.Ceil((c.offX + float64(c.viewW)/c.zoom) / c.cellSize))
	y1 := toCell(math.Ceil((c.offY + float64(c.viewH)/c.zoom) / c.cellSize))
	return core.NewRect(x0, y0, x1, y1).Inset(margin)
}

// toCell floors v and saturates it to the int64 range.
func toCell(v float64) int64 {
	v = math.Floor(v)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}
