package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// ByteGrid is the byte-valued grid used for display buffers.
type ByteGrid = Grid[uint8]

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// produce an empty grid; callers that need to reject them validate first.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		return &Grid[T]{}
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// NewByteGrid allocates a byte grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid { return NewGrid[uint8](w, h) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-range coordinates panic.
func (g *Grid[T]) At(x, y int) T {
	if !g.InBounds(x, y) {
		panic("core: grid read out of range")
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-range coordinates panic.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		panic("core: grid write out of range")
	}
	g.data[y*g.W+x] = v
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	return WrapCoord(x, g.W), WrapCoord(y, g.H)
}

// WrapCoord maps v onto [0, n) with true modular wrap, so -1 becomes n-1 and
// n becomes 0.
func WrapCoord(v, n int) int {
	return (v%n + n) % n
}

// Clear fills the grid with zero values.
func (g *Grid[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}
