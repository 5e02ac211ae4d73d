//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/render"
	"torus-life/internal/ui"
)

// patternKeys places a pattern under the cursor.
var patternKeys = map[ebiten.Key]string{
	ebiten.KeyF1: "glider",
	ebiten.KeyF2: "lwss",
	ebiten.KeyF3: "pulsar",
	ebiten.KeyF4: "pentadecathlon",
	ebiten.KeyF5: "gosper-gun",
	ebiten.KeyF6: "simkin-gun",
	ebiten.KeyF7: "blinker",
	ebiten.KeyF8: "toad",
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
}

// New constructs a Game for the provided session.
func New(session *Session, scale, hudWidth int) *Game {
	sim := session.Sim()
	size := sim.Size()
	if hudWidth < 0 {
		hudWidth = 0
	}
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H, sim.Palette()),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && !ebiten.IsKeyPressed(ebiten.KeyControl) {
		s.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := s.Clear(); err != nil {
			logger.Errorf("clear: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := s.NextRulePack(); err != nil {
			logger.Errorf("rule pack: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		s.NextColor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		s.AdjustRadius(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		s.AdjustRadius(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			if err := s.Save(); err != nil {
				logger.Errorf("save: %v", err)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			if err := s.Load(); err != nil {
				logger.Errorf("load: %v", err)
			}
		}
	}

	g.handleMouse()

	g.overlay.Update()
	g.hud.Update(g.gridWidth())

	s.Tick()
	return nil
}

func (g *Game) handleMouse() {
	s := g.session
	mx, my := ebiten.CursorPosition()
	if mx >= g.gridWidth() {
		return
	}
	x, y := mx/g.scale, my/g.scale
	g.overlay.SetCursor(x, y, s.Radius())

	for key, name := range patternKeys {
		if inpututil.IsKeyJustPressed(key) {
			if _, err := s.Place(name, x, y); err != nil {
				logger.Debugf("place %s: %v", name, err)
			}
		}
	}

	var err error
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyShift):
		_, err = s.Scatter(x, y, 0.3)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		_, err = s.Paint(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		_, err = s.Erase(x, y)
	}
	if err != nil {
		logger.Debugf("brush: %v", err)
	}
}

// Draw renders the current generation, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale, g.session.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

func (g *Game) gridWidth() int {
	return g.session.Sim().Size().W * g.scale
}
