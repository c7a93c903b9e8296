//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var patternKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.CellPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	dragging     bool
	lastX, lastY int
}

// New constructs a Game for the provided session.
func New(s *Session, hudWidth int) *Game {
	s.Camera.LimitCells(render.MaxRasterCells)
	return &Game{
		session: s,
		painter: render.NewCellPainter(color.RGBA{R: 120, G: 220, B: 140, A: 255}, color.RGBA{R: 10, G: 10, B: 14, A: 255}),
		hud:     ui.NewHUD(s.World, hudWidth),
		overlay: ui.NewOverlay(),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.CycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.RandomizeView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.SeedNoiseView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	for i, key := range patternKeys {
		if i < len(life.Patterns()) && inpututil.IsKeyJustPressed(key) {
			// Names come from the preset list, so the lookup cannot fail.
			_ = s.StampPattern(life.Patterns()[i].Name())
		}
	}

	g.overlay.Update()
	viewW, _ := s.Camera.Size()
	consumed := g.hud.Update(viewW)
	g.handleMouse(viewW, consumed)

	s.Tick(time.Now())
	return nil
}

func (g *Game) handleMouse(viewW int, hudConsumed bool) {
	cam := g.session.Camera
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && mx < viewW

	if !hudConsumed && inView && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.ToggleAt(float64(mx), float64(my))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging {
			cam.Pan(float64(mx-g.lastX), float64(my-g.lastY))
		}
		g.dragging = true
		g.lastX, g.lastY = mx, my
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 && inView {
		steps := 1
		if wy < 0 {
			steps = -1
		}
		cam.ZoomAt(float64(mx), float64(my), steps)
	}
}

// Draw renders the visible cells, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.session.Camera
	g.painter.Draw(screen, g.session.World, cam)
	g.overlay.Draw(screen, cam, g.session.Status())
	viewW, viewH := cam.Size()
	g.hud.Draw(screen, viewW, viewH)
}

// Layout sizes the camera to the window minus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	viewW := outsideWidth - g.hud.Width()
	// Windows too small, or too large for the raster at MinZoom, keep the
	// previous viewport.
	_ = g.session.Camera.Resize(viewW, outsideHeight)
	return outsideWidth, outsideHeight
}
