package app

import (
	"os"
	"time"

	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"
	"torus-life/internal/ui"
)

var logger = loggo.GetLogger("torus-life.app")

// Session holds the interactive state of the viewer: pacing, pause, the
// rule packs and paint color the user cycles through, and the brush. Every
// change to the grid goes through the Life engine's public operations.
type Session struct {
	sim   *life.Life
	timer *core.FixedStep

	packs    []*life.RulePack
	packIdx  int
	colorIdx int
	radius   int

	paused   bool
	tickOnce bool
	seed     int64
	fillSeed uint32

	snapshotPath string
}

// NewSession wraps sim. packs lists the rule packs available for cycling;
// the first one matching the active pack's name becomes current.
func NewSession(sim *life.Life, packs []*life.RulePack, tps int, seed int64) *Session {
	s := &Session{
		sim:    sim,
		timer:  core.NewFixedStep(tps),
		packs:  packs,
		radius: 2,
		seed:   seed,
	}
	active := sim.RulePack().Name()
	for i, p := range packs {
		if p.Name() == active {
			s.packIdx = i
			break
		}
	}
	return s
}

// Sim returns the driven simulation.
func (s *Session) Sim() *life.Life { return s.sim }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause suspends or resumes automatic stepping.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	if !s.paused {
		s.timer.Reset()
	}
}

// StepOnce requests a single generation on the next tick, even when paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// Tick advances the simulation when the pacing timer allows it or a single
// step was requested. It reports whether a generation was computed.
func (s *Session) Tick() bool {
	due := s.timer.ShouldStep()
	if s.tickOnce || (!s.paused && due) {
		s.tickOnce = false
		s.sim.Step()
		return true
	}
	return false
}

// SetClock replaces the pacing clock.
func (s *Session) SetClock(now func() time.Time) { s.timer.SetClock(now) }

// Reset rerandomizes the board with seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
	s.tickOnce = false
	logger.Infof("board reset with seed %d", seed)
}

// Reseed resets the board with the previous seed.
func (s *Session) Reseed() { s.Reset(s.seed) }

// Clear kills every cell by resizing to the current dimensions.
func (s *Session) Clear() error {
	size := s.sim.Size()
	return s.sim.Resize(size.W, size.H)
}

// RulePack returns the active rule pack.
func (s *Session) RulePack() *life.RulePack { return s.sim.RulePack() }

// NextRulePack activates the next pack in the cycle.
func (s *Session) NextRulePack() error {
	if len(s.packs) == 0 {
		return nil
	}
	s.packIdx = (s.packIdx + 1) % len(s.packs)
	if err := s.sim.SetRulePack(s.packs[s.packIdx]); err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	if !s.RulePack().Colors().Contains(s.Color()) {
		s.colorIdx = 0
	}
	return nil
}

// Color returns the paint color, chosen from the active pack's color set.
func (s *Session) Color() life.Color {
	colors := s.RulePack().Colors()
	if s.colorIdx >= colors.Len() {
		s.colorIdx = 0
	}
	return colors.At(s.colorIdx)
}

// NextColor cycles the paint color through the active pack's color set.
func (s *Session) NextColor() life.Color {
	s.colorIdx = (s.colorIdx + 1) % s.RulePack().Colors().Len()
	return s.Color()
}

// Radius returns the brush radius.
func (s *Session) Radius() int { return s.radius }

// AdjustRadius grows or shrinks the brush, never below zero.
func (s *Session) AdjustRadius(delta int) int {
	s.radius += delta
	if s.radius < 0 {
		s.radius = 0
	}
	return s.radius
}

// Paint fills the brush disc around (x, y) with the paint color.
func (s *Session) Paint(x, y int) (int, error) {
	return s.sim.PaintArea(x, y, s.radius, s.Color())
}

// Erase clears the brush disc around (x, y).
func (s *Session) Erase(x, y int) (int, error) {
	return s.sim.ClearArea(x, y, s.radius)
}

// Scatter randomly fills the brush disc around (x, y) at density. Each call
// draws a fresh pattern.
func (s *Session) Scatter(x, y int, density float64) (int, error) {
	s.fillSeed++
	return s.sim.RandomFill(x, y, s.radius, density, s.fillSeed, s.Color())
}

// Place puts the named pattern at (x, y) in the paint color.
func (s *Session) Place(name string, x, y int) (int, error) {
	p, ok := life.LookupPattern(name)
	if !ok {
		return 0, errgo.Newf("unknown pattern %q", name)
	}
	return s.sim.PlacePattern(p, x, y, s.Color())
}

// SetSnapshotPath sets the file used by Save and Load.
func (s *Session) SetSnapshotPath(path string) { s.snapshotPath = path }

// Save writes a snapshot of the committed generation.
func (s *Session) Save() error {
	f, err := os.Create(s.snapshotPath)
	if err != nil {
		return errgo.Mask(err)
	}
	defer f.Close()
	if err := s.sim.SaveSnapshot(f); err != nil {
		return errgo.NoteMask(err, s.snapshotPath, errgo.Any)
	}
	logger.Infof("saved snapshot to %s", s.snapshotPath)
	return f.Close()
}

// Load replaces the board with the snapshot file. The paused state is kept.
func (s *Session) Load() error {
	f, err := os.Open(s.snapshotPath)
	if err != nil {
		return errgo.Mask(err)
	}
	defer f.Close()
	if err := s.sim.LoadSnapshot(f); err != nil {
		return errgo.NoteMask(err, s.snapshotPath, errgo.Any)
	}
	s.colorIdx = 0
	return nil
}

// Status summarizes the session for the HUD.
func (s *Session) Status() ui.Status {
	return ui.Status{
		Generation: s.sim.Generation(),
		Paused:     s.paused,
		Rule:       s.RulePack().String(),
		Color:      s.Color().String(),
		Radius:     s.radius,
		Census:     s.sim.Census(),
	}
}
