//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/sims/life"
)

var (
	markedTint = color.RGBA{R: 255, G: 200, B: 40, A: 160}
	gridColor  = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	brushColor = color.RGBA{R: 200, G: 220, B: 255, A: 200}
)

// Overlay draws optional visuals on top of the grid: a highlight over the
// cells kept alive by the secondary rule, grid lines and the brush outline.
type Overlay struct {
	sim   *life.Life
	scale int

	showMarked bool
	showGrid   bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image

	cursorX, cursorY, radius int
	hasCursor                bool
}

// NewOverlay constructs an overlay for sim drawn at scale.
func NewOverlay(sim *life.Life, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers: 1 for marked cells, 2 for grid lines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMarked = !o.showMarked
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// SetCursor records the brush position and radius in cell coordinates.
func (o *Overlay) SetCursor(x, y, radius int) {
	o.cursorX, o.cursorY, o.radius = x, y, radius
	o.hasCursor = true
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showMarked {
		o.drawMarked(screen, o.sim.Cells(), size.W, size.H, scale)
	}
	if o.showGrid && scale >= 4 {
		o.drawGrid(screen, size.W, size.H, scale)
	}
	if o.hasCursor {
		o.drawBrush(screen, scale)
	}
}

func (o *Overlay) drawMarked(screen *ebiten.Image, cells []uint8, w, h, scale int) {
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != w || o.maskImg.Bounds().Dy() != h {
		o.maskImg = ebiten.NewImage(w, h)
		o.maskBuf = make([]byte, 4*w*h)
	}
	if len(cells) != w*h {
		return
	}
	for i, code := range cells {
		base := i * 4
		s, err := life.DecodeState(code)
		if err != nil || !s.Marked {
			o.maskBuf[base+0], o.maskBuf[base+1], o.maskBuf[base+2], o.maskBuf[base+3] = 0, 0, 0, 0
			continue
		}
		// Premultiplied alpha.
		a := uint32(markedTint.A)
		o.maskBuf[base+0] = uint8(uint32(markedTint.R) * a / 255)
		o.maskBuf[base+1] = uint8(uint32(markedTint.G) * a / 255)
		o.maskBuf[base+2] = uint8(uint32(markedTint.B) * a / 255)
		o.maskBuf[base+3] = markedTint.A
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawGrid(screen *ebiten.Image, w, h, scale int) {
	width, height := float64(w*scale), float64(h*scale)
	for x := 0; x <= w; x++ {
		o.drawRect(screen, float64(x*scale), 0, 1, height, gridColor)
	}
	for y := 0; y <= h; y++ {
		o.drawRect(screen, 0, float64(y*scale), width, 1, gridColor)
	}
}

func (o *Overlay) drawBrush(screen *ebiten.Image, scale int) {
	cx := (float64(o.cursorX) + 0.5) * float64(scale)
	cy := (float64(o.cursorY) + 0.5) * float64(scale)
	r := (float64(o.radius) + 0.5) * float64(scale)
	const segments = 32
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		o.drawLine(screen, cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), 1, brushColor)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
