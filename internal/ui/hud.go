//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []hudControlState
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: sim.Name() + " controls"}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons. It reports whether the click was consumed by the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawSnapshot()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			break
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			break
		}
	}
	return true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.floatSetter == nil || direction == 0 {
		return
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*controlStep(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if h.floatSetter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.floatSetter == nil || !state.hasValue {
		return false
	}
	target := state.floatValue + float64(direction)*controlStep(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
		return false
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+infoSpacing, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, y, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

// drawSnapshot lists the read-only parameters below the controls.
func (h *HUD) drawSnapshot() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	adjustable := map[string]bool{}
	for _, state := range h.controls {
		adjustable[state.control.Key] = true
	}
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += snapshotLine
		for _, p := range group.Params {
			if adjustable[p.Key] {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
			y += snapshotLine
		}
		y += snapshotLine / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := controlStep(ctrl); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	snapshotLine   = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
