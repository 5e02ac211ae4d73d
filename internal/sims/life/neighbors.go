package life

type offset struct{ dx, dy int }

// mooreOffsets lists the 8 Moore neighbors in row-major order.
var mooreOffsets = [8]offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountLiveNeighbors counts the live cells among the 8 toroidally wrapped
// neighbors of (x, y). The result is always in [0, 8].
func CountLiveNeighbors(front View, x, y int) int {
	n := 0
	for _, o := range mooreOffsets {
		nx, ny := front.Wrap(x+o.dx, y+o.dy)
		if front.At(nx, ny).Alive {
			n++
		}
	}
	return n
}
