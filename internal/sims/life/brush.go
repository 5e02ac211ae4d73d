package life

import (
	"math"

	errgo "gopkg.in/errgo.v1"
)

// randomFillSalt separates brush draws from the secondary-rule draws made
// with the same seed.
const randomFillSalt = 0x5bd1e995

// PaintArea makes every cell within radius of (cx, cy) alive in color c and
// returns the number of cells painted. The disc may extend past the grid
// edges; only on-grid cells are touched.
func (l *Life) PaintArea(cx, cy, radius int, c Color) (int, error) {
	if !c.Valid() {
		return 0, errgo.WithCausef(nil, ErrUnknownColor, "cannot paint with color %d", uint8(c))
	}
	return l.brush(cx, cy, radius, func(x, y int) (State, bool) {
		return Alive(c), true
	})
}

// ClearArea kills every cell within radius of (cx, cy).
func (l *Life) ClearArea(cx, cy, radius int) (int, error) {
	return l.brush(cx, cy, radius, func(x, y int) (State, bool) {
		return Dead, true
	})
}

// RandomFill paints cells within radius of (cx, cy) with probability density.
// Which cells are painted depends only on their coordinates and seed.
func (l *Life) RandomFill(cx, cy, radius int, density float64, seed uint32, c Color) (int, error) {
	if !c.Valid() {
		return 0, errgo.WithCausef(nil, ErrUnknownColor, "cannot paint with color %d", uint8(c))
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return 0, errgo.WithCausef(nil, ErrInvalidBrush, "density %v outside [0,1]", density)
	}
	return l.brush(cx, cy, radius, func(x, y int) (State, bool) {
		return Alive(c), Hash(x, y, seed^randomFillSalt) < density
	})
}

func (l *Life) brush(cx, cy, radius int, paint func(x, y int) (State, bool)) (int, error) {
	if radius < 0 {
		return 0, errgo.WithCausef(nil, ErrInvalidBrush, "negative radius %d", radius)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	w, h := l.buf.w, l.buf.h
	r2 := radius * radius
	touched := 0
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= w {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			s, ok := paint(x, y)
			if !ok {
				continue
			}
			l.putFront(x, y, s)
			touched++
		}
	}
	logger.Debugf("brush at (%d,%d) radius %d touched %d cells", cx, cy, radius, touched)
	return touched, nil
}
