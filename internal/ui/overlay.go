//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"lifegrid/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// minGridPixels is the on-screen cell size below which grid lines are
// hidden.
const minGridPixels = 8

const helpText = "space play  n step  f speed  r random  p noise  c clear  1-4 patterns  g grid  h help"

// Overlay draws grid lines and the status and help lines over the cells.
type Overlay struct {
	showGrid bool
	showHelp bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{showGrid: true, showHelp: true}
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay for the viewport described by cam.
func (o *Overlay) Draw(screen *ebiten.Image, cam *view.Camera, status string) {
	if o.showGrid {
		o.drawGrid(screen, cam)
	}
	face := basicfont.Face7x13
	text.Draw(screen, status, face, 8, 16, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	if o.showHelp {
		_, h := cam.Size()
		text.Draw(screen, helpText, face, 8, h-8, color.RGBA{R: 150, G: 150, B: 160, A: 255})
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, cam *view.Camera) {
	step := cam.CellPixels()
	if step < minGridPixels {
		return
	}
	w, h := cam.Size()
	origin := cam.CellAt(0, 0)
	sx, sy := cam.ScreenOf(origin)
	col := color.RGBA{R: 40, G: 40, B: 48, A: 255}
	for x := sx; x <= float64(w); x += step {
		px := float32(math.Round(x))
		vector.StrokeLine(screen, px, 0, px, float32(h), 1, col, false)
	}
	for y := sy; y <= float64(h); y += step {
		py := float32(math.Round(y))
		vector.StrokeLine(screen, 0, py, float32(w), py, 1, col, false)
	}
}
