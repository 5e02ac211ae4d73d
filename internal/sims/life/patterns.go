package life

import (
	"sort"

	errgo "gopkg.in/errgo.v1"
)

// Pattern is a named set of live-cell offsets relative to an anchor.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var patterns = map[string]Pattern{
	"blinker": {Name: "blinker", Cells: [][2]int{{0, -1}, {0, 0}, {0, 1}}},
	"toad": {Name: "toad", Cells: [][2]int{
		{-1, 0}, {0, 0}, {1, 0},
		{-2, 1}, {-1, 1}, {0, 1},
	}},
	"block": {Name: "block", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	"glider": {Name: "glider", Cells: [][2]int{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}},
	"lwss": {Name: "lwss", Cells: [][2]int{
		{0, 1}, {0, 3},
		{1, 0},
		{2, 0},
		{3, 0}, {3, 3},
		{4, 0}, {4, 1}, {4, 2},
	}},
	"pulsar": {Name: "pulsar", Cells: [][2]int{
		{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
		{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
		{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
		{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
		{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10},
		{5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10},
		{7, 2}, {7, 3}, {7, 4}, {7, 8}, {7, 9}, {7, 10},
		{12, 2}, {12, 3}, {12, 4}, {12, 8}, {12, 9}, {12, 10},
	}},
	"pentadecathlon": {Name: "pentadecathlon", Cells: [][2]int{
		{1, 0}, {2, 0}, {3, -1}, {3, 1}, {4, 0},
		{5, 0}, {6, 0}, {7, 0}, {8, -1}, {8, 1},
		{9, 0}, {10, 0},
	}},
	"gosper-gun": {Name: "gosper-gun", Cells: [][2]int{
		{1, 5}, {1, 6}, {2, 5}, {2, 6},
		{11, 5}, {11, 6}, {11, 7},
		{12, 4}, {12, 8},
		{13, 3}, {13, 9},
		{14, 3}, {14, 9},
		{15, 6},
		{16, 4}, {16, 8},
		{17, 5}, {17, 6}, {17, 7},
		{18, 6},
		{21, 3}, {21, 4}, {21, 5},
		{22, 3}, {22, 4}, {22, 5},
		{23, 2}, {23, 6},
		{25, 1}, {25, 2}, {25, 6}, {25, 7},
		{35, 3}, {35, 4}, {36, 3}, {36, 4},
	}},
	"simkin-gun": {Name: "simkin-gun", Cells: [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{4, 0}, {4, 1}, {5, 0}, {5, 1},
		{10, 2}, {10, 3}, {11, 2}, {11, 3},
		{12, 0}, {13, 0}, {12, 1}, {13, 1},
		{14, 10}, {14, 11}, {15, 10}, {15, 11},
		{16, 8}, {16, 9}, {17, 7}, {18, 7},
		{17, 11}, {18, 11}, {19, 9}, {19, 10},
		{20, 10},
		{21, 8},
		{22, 9}, {22, 10}, {22, 11},
		{24, 10}, {24, 9}, {24, 8},
		{24, 7}, {25, 7},
		{26, 8}, {26, 6},
		{27, 6}, {27, 10},
		{28, 9},
	}},
}

// LookupPattern returns the named pattern.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the known patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the min and max offsets covered by the pattern.
func (p Pattern) Bounds() (minX, minY, maxX, maxY int) {
	for i, c := range p.Cells {
		if i == 0 || c[0] < minX {
			minX = c[0]
		}
		if i == 0 || c[1] < minY {
			minY = c[1]
		}
		if i == 0 || c[0] > maxX {
			maxX = c[0]
		}
		if i == 0 || c[1] > maxY {
			maxY = c[1]
		}
	}
	return minX, minY, maxX, maxY
}

// PlacePattern paints p anchored at (x, y) in color c and returns the number
// of cells placed. The anchor must lie on the grid; pattern cells that fall
// off the grid are skipped.
func (l *Life) PlacePattern(p Pattern, x, y int, c Color) (int, error) {
	if !c.Valid() {
		return 0, errgo.WithCausef(nil, ErrUnknownColor, "cannot place pattern with color %d", uint8(c))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	w, h := l.buf.w, l.buf.h
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, outOfBounds(x, y, w, h)
	}
	placed := 0
	for _, cell := range p.Cells {
		cx, cy := x+cell[0], y+cell[1]
		if cx < 0 || cx >= w || cy < 0 || cy >= h {
			continue
		}
		l.putFront(cx, cy, Alive(c))
		placed++
	}
	logger.Infof("placed %s at (%d,%d): %d cells", p.Name, x, y, placed)
	return placed, nil
}

// PlaceCentered places p so that its bounding box is centered on the grid.
func (l *Life) PlaceCentered(p Pattern, c Color) (int, error) {
	size := l.Size()
	minX, minY, maxX, maxY := p.Bounds()
	x := size.W/2 - (minX+maxX)/2
	y := size.H/2 - (minY+maxY)/2
	return l.PlacePattern(p, x, y, c)
}
