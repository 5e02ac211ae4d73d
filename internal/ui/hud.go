//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"torus-life/internal/core"
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the status lines and rule controls to the right of the grid.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	controls    []control
	controlsTop int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

// NewHUD constructs a HUD for sim. A zero width disables it.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, controls: newControls(sim)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes control values and handles clicks on the +/- buttons.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(snap)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pointInRect(px, my, c.minusRect):
			c.adjust(-1, h.intSetter, h.floatSetter)
			return
		case pointInRect(px, my, c.plusRect):
			c.adjust(1, h.intSetter, h.floatSetter)
			return
		}
	}
}

// Draw paints the panel at offsetX with the session status on top.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int, status Status) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Life", face, panelPadding, y, titleColor)
	for _, line := range status.Lines() {
		y += textLine
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}

	top := y + textLine
	if top != h.controlsTop {
		h.controlsTop = top
		layoutControls(h.controls, h.width, top)
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(h.panel, c.spec.Label, face, panelPadding, labelY, textColor)

		valueColor := textColor
		if !c.hasValue {
			valueColor = dimColor
		}
		valueX := c.minusRect.Min.X - buttonGap - text.BoundString(face, c.value).Dx()
		text.Draw(h.panel, c.value, face, valueX, labelY, valueColor)

		h.drawButton(c.minusRect, "-", c.canAdjust(-1))
		h.drawButton(c.plusRect, "+", c.canAdjust(1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
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
