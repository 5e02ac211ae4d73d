package life

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/juju/loggo"
	"golang.org/x/sync/errgroup"
	errgo "gopkg.in/errgo.v1"

	"torus-life/internal/core"
)

var logger = loggo.GetLogger("torus-life.life")

// Placement seeds one cell when initializing a grid.
type Placement struct {
	X, Y  int
	State State
}

// Life evolves a toroidal grid under the active rule pack. Step, painting and
// rule-pack swaps are serialized, so readers only ever observe fully
// committed generations.
type Life struct {
	mu sync.Mutex

	cfg        Config
	buf        *BufferPair
	display    *core.ByteGrid
	pack       *RulePack
	seed       int64
	generation uint32
	workers    int
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a dead grid configured from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	pack, err := cfg.RulePack()
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	l := &Life{
		cfg:     cfg,
		pack:    pack,
		seed:    cfg.Seed,
		workers: workers,
	}
	if err := l.Initialize(cfg.Width, cfg.Height, nil); err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Size()
}

// Cells exposes the encoded display buffer of the committed generation.
func (l *Life) Cells() []uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.display.Cells()
}

// Generation reports how many generations have been committed since the last
// initialization or reset.
func (l *Life) Generation() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

// Initialize allocates both buffers at w*h and seeds the front buffer with
// cells; every other cell is dead. The active rule pack is kept.
func (l *Life) Initialize(w, h int, cells []Placement) error {
	buf, err := NewBufferPair(w, h)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	for _, p := range cells {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			return outOfBounds(p.X, p.Y, w, h)
		}
		if !p.State.Valid() {
			return errgo.WithCausef(nil, ErrInvalidCellState, "invalid state %+v at (%d,%d)", p.State, p.X, p.Y)
		}
		buf.setFront(p.X, p.Y, p.State)
	}
	l.install(buf, 0)
	logger.Debugf("initialized %dx%d grid with %d cells", w, h, len(cells))
	return nil
}

// InitializeDense replaces the grid with w*h row-major cells.
func (l *Life) InitializeDense(w, h int, cells []State) error {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return errgo.WithCausef(nil, ErrInvalidDimensions, "%d cells do not fill a %dx%d grid", len(cells), w, h)
	}
	buf, err := NewBufferPair(w, h)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	for i, s := range cells {
		if !s.Valid() {
			return errgo.WithCausef(nil, ErrInvalidCellState, "invalid state %+v at index %d", s, i)
		}
	}
	copy(buf.frontCells(), cells)
	l.install(buf, 0)
	return nil
}

// Resize discards the current grid and allocates a dead one at w*h.
func (l *Life) Resize(w, h int) error {
	if err := l.Initialize(w, h, nil); err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	logger.Infof("resized grid to %dx%d", w, h)
	return nil
}

func (l *Life) install(buf *BufferPair, generation uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.installLocked(buf, generation)
}

func (l *Life) installLocked(buf *BufferPair, generation uint32) {
	l.buf = buf
	l.generation = generation
	l.display = core.NewByteGrid(buf.w, buf.h)
	l.rebuildDisplay()
}

// Reset randomizes the board using the provided seed: each cell is alive in
// the active pack's default color with probability Config.Density.
func (l *Life) Reset(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seed = seed
	l.buf.reset()
	rng := core.NewRNG(seed)
	alive := Alive(l.pack.colors.Default())
	cells := l.buf.frontCells()
	for i := range cells {
		if rng.Chance(l.cfg.Density) {
			cells[i] = alive
		}
	}
	l.generation = 0
	l.rebuildDisplay()
	logger.Debugf("reset %dx%d grid with seed %d", l.buf.w, l.buf.h, seed)
}

// RulePack returns the active rule pack.
func (l *Life) RulePack() *RulePack {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pack
}

// SetRulePack makes p the active pack from the next generation on. Cell
// states and buffers are untouched.
func (l *Life) SetRulePack(p *RulePack) error {
	if p == nil {
		return invalidRules("nil rule pack")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pack = p
	logger.Infof("rule pack changed to %s", p)
	return nil
}

// Step advances the simulation by one generation under the active rule pack,
// seeding the pseudo-random draws from the reset seed and generation number.
func (l *Life) Step() {
	l.mu.Lock()
	defer l.mu.Unlock()
	seed := uint32(l.seed)*2654435761 + l.generation
	if err := l.advance(seed, l.pack); err != nil {
		panic(err)
	}
}

// StepWith advances one generation under pack, consuming seed for this
// generation's pseudo-random draws. The active pack is not changed.
func (l *Life) StepWith(seed uint32, pack *RulePack) error {
	if pack == nil {
		return invalidRules("nil rule pack")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.advance(seed, pack)
}

// advance evaluates every cell from the front buffer into the back buffer in
// row bands, waits for all bands, then swaps.
func (l *Life) advance(seed uint32, pack *RulePack) error {
	front := l.buf.Front()
	back := l.buf.back()
	w, h := l.buf.w, l.buf.h

	rows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				back.Set(x, y, EvaluateCell(front, x, y, pack, seed))
			}
		}
	}

	bands := l.workers
	if bands > h {
		bands = h
	}
	if bands <= 1 {
		rows(0, h)
	} else {
		var g errgroup.Group
		g.SetLimit(l.workers)
		for b := 0; b < bands; b++ {
			y0, y1 := b*h/bands, (b+1)*h/bands
			g.Go(func() error {
				rows(y0, y1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return errgo.NoteMask(err, fmt.Sprintf("generation %d", l.generation), errgo.Any)
		}
	}

	l.buf.Swap()
	l.generation++
	l.rebuildDisplay()
	return nil
}

// ReadGrid returns a read-only view of the committed generation. The next
// step writes into the buffer behind it, so use CopyGrid for cells that must
// outlive the next step.
func (l *Life) ReadGrid() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Front()
}

// CopyGrid returns a row-major copy of the committed generation.
func (l *Life) CopyGrid() []State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]State(nil), l.buf.frontCells()...)
}

// PaintCell makes (x, y) alive with color c in the committed generation.
func (l *Life) PaintCell(x, y int, c Color) error {
	if !c.Valid() {
		return errgo.WithCausef(nil, ErrUnknownColor, "cannot paint with color %d", uint8(c))
	}
	return l.setCell(x, y, Alive(c))
}

// ClearCell kills (x, y) in the committed generation.
func (l *Life) ClearCell(x, y int) error {
	return l.setCell(x, y, Dead)
}

func (l *Life) setCell(x, y int, s State) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if x < 0 || x >= l.buf.w || y < 0 || y >= l.buf.h {
		return outOfBounds(x, y, l.buf.w, l.buf.h)
	}
	l.putFront(x, y, s)
	return nil
}

// putFront writes a committed cell and its display value; callers hold mu
// and have bounds-checked (x, y).
func (l *Life) putFront(x, y int, s State) {
	l.buf.setFront(x, y, s)
	l.display.Set(x, y, s.Encode())
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		l, err := NewWithConfig(c)
		if err != nil {
			logger.Warningf("invalid life config, using defaults: %v", err)
			l, err = NewWithConfig(DefaultConfig())
			if err != nil {
				panic(err)
			}
		}
		l.Reset(c.Seed)
		return l
	})
}
