package ui

import (
	"fmt"
	"sort"

	"torus-life/internal/sims/life"
)

// Status is the per-frame session summary shown at the top of the HUD.
type Status struct {
	Generation uint32
	Paused     bool
	Rule       string
	Color      string
	Radius     int
	Census     life.Census
}

// Lines renders the status as HUD text lines.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("Gen %d (%s)", s.Generation, state),
		s.Rule,
		fmt.Sprintf("Brush %s r=%d", s.Color, s.Radius),
		fmt.Sprintf("Live %d  lucky %d", s.Census.Live, s.Census.Marked),
	}
	colors := make([]life.Color, 0, len(s.Census.PerColor))
	for c, n := range s.Census.PerColor {
		if n > 0 {
			colors = append(colors, c)
		}
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	for _, c := range colors {
		lines = append(lines, fmt.Sprintf("  %-7s %d", c, s.Census.PerColor[c]))
	}
	return lines
}
