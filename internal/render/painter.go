//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/view"
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter rasterises the visible cells into a single image and draws it
// scaled to the camera.
type CellPainter struct {
	raster Raster
	img    *ebiten.Image
	on     color.Color
	off    color.Color
}

// NewCellPainter returns a painter using the given live/dead colours.
func NewCellPainter(on, off color.Color) *CellPainter {
	return &CellPainter{on: on, off: off}
}

// Draw paints the cells of src visible through cam onto dst.
func (p *CellPainter) Draw(dst *ebiten.Image, src CellSource, cam *view.Camera) {
	window := cam.Visible(view.RenderMargin)
	if !p.raster.Fill(src, window, p.on, p.off) {
		dst.Fill(p.off)
		return
	}
	w, h := p.raster.Size()
	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(w, h)
	}
	p.img.WritePixels(p.raster.Pixels())

	sx, sy := cam.ScreenOf(core.Cell{X: window.X0, Y: window.Y0})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cam.CellPixels(), cam.CellPixels())
	op.GeoM.Translate(sx, sy)
	dst.DrawImage(p.img, op)
}
