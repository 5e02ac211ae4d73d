package life

// ResolveBirthColor picks the color of a newborn cell at (x, y) by majority
// vote among its live neighbors. Marked cells vote for their base color and
// colors outside the set vote for the default. Ties go to the color with the
// lowest index in colors; with no live neighbors the default color wins.
func ResolveBirthColor(front View, x, y int, colors ColorSet) Color {
	var tally [numColors]int
	for _, o := range mooreOffsets {
		nx, ny := front.Wrap(x+o.dx, y+o.dy)
		s := front.At(nx, ny)
		if !s.Alive {
			continue
		}
		idx, _ := colors.Index(s.Color)
		tally[idx]++
	}
	best, bestCount := 0, 0
	for i := 0; i < colors.Len(); i++ {
		if tally[i] > bestCount {
			best, bestCount = i, tally[i]
		}
	}
	if colors.Len() == 0 {
		return ColorWhite
	}
	return colors.At(best)
}
