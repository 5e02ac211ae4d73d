package life

import (
	errgo "gopkg.in/errgo.v1"

	"torus-life/internal/core"
)

// View is read-only access to a committed generation. A View obtained from
// the engine stays valid until the next step; use CopyGrid to retain cells.
type View struct {
	g *core.Grid[State]
}

// Width returns the number of columns.
func (v View) Width() int { return v.g.W }

// Height returns the number of rows.
func (v View) Height() int { return v.g.H }

// At returns the state at (x, y). Out-of-range coordinates panic.
func (v View) At(x, y int) State { return v.g.At(x, y) }

// Wrap maps (x, y) onto the torus.
func (v View) Wrap(x, y int) (int, int) { return v.g.Wrap(x, y) }

// writer is write-only access to the generation being computed.
type writer struct {
	g *core.Grid[State]
}

func (w writer) Set(x, y int, s State) { w.g.Set(x, y, s) }

// BufferPair owns the front (committed) and back (in-flight) generations.
// Readers only ever see the front; the per-cell kernel only ever writes the back.
type BufferPair struct {
	w, h  int
	grids [2]*core.Grid[State]
	front int
}

// NewBufferPair allocates two dead w*h buffers.
func NewBufferPair(w, h int) (*BufferPair, error) {
	if w <= 0 || h <= 0 {
		return nil, errgo.WithCausef(nil, ErrInvalidDimensions, "grid size %dx%d must be positive", w, h)
	}
	return &BufferPair{
		w:     w,
		h:     h,
		grids: [2]*core.Grid[State]{core.NewGrid[State](w, h), core.NewGrid[State](w, h)},
	}, nil
}

// Size returns the grid dimensions.
func (b *BufferPair) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Front returns the committed generation.
func (b *BufferPair) Front() View { return View{g: b.grids[b.front]} }

// Read returns the front state at (x, y).
func (b *BufferPair) Read(x, y int) State { return b.grids[b.front].At(x, y) }

// Write stores s into the back buffer at (x, y).
func (b *BufferPair) Write(x, y int, s State) { b.back().Set(x, y, s) }

func (b *BufferPair) back() writer { return writer{g: b.grids[1-b.front]} }

// Swap commits the back buffer as the new front.
func (b *BufferPair) Swap() { b.front = 1 - b.front }

// setFront mutates the committed generation between steps.
func (b *BufferPair) setFront(x, y int, s State) { b.grids[b.front].Set(x, y, s) }

// frontCells exposes the committed cells in row-major order.
func (b *BufferPair) frontCells() []State { return b.grids[b.front].Cells() }

// reset kills every cell in both buffers.
func (b *BufferPair) reset() {
	b.grids[0].Clear()
	b.grids[1].Clear()
	b.front = 0
}
