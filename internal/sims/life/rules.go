package life

import (
	"fmt"
	"math"
)

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// RuleParams are the thresholds of a survival/birth rule, plus the optional
// secondary ("lucky") rule that lets a dying cell survive as Marked.
type RuleParams struct {
	SurvivalMin int
	SurvivalMax int
	BirthCount  int

	Lucky       bool
	LuckyChance float64
}

// Validate checks 0 <= SurvivalMin <= SurvivalMax <= 8, 0 <= BirthCount <= 8
// and 0 <= LuckyChance <= 1. Values are never clamped.
func (p RuleParams) Validate() error {
	switch {
	case p.SurvivalMin < 0 || p.SurvivalMin > MaxNeighbors:
		return invalidRules("survival_min %d outside [0,%d]", p.SurvivalMin, MaxNeighbors)
	case p.SurvivalMax < 0 || p.SurvivalMax > MaxNeighbors:
		return invalidRules("survival_max %d outside [0,%d]", p.SurvivalMax, MaxNeighbors)
	case p.SurvivalMin > p.SurvivalMax:
		return invalidRules("survival_min %d greater than survival_max %d", p.SurvivalMin, p.SurvivalMax)
	case p.BirthCount < 0 || p.BirthCount > MaxNeighbors:
		return invalidRules("birth_count %d outside [0,%d]", p.BirthCount, MaxNeighbors)
	case math.IsNaN(p.LuckyChance) || p.LuckyChance < 0 || p.LuckyChance > 1:
		return invalidRules("lucky_chance %v outside [0,1]", p.LuckyChance)
	}
	return nil
}

// String renders the rule in S/B notation, e.g. "S2-3/B3 lucky=10%".
func (p RuleParams) String() string {
	s := fmt.Sprintf("S%d-%d/B%d", p.SurvivalMin, p.SurvivalMax, p.BirthCount)
	if p.Lucky {
		s += fmt.Sprintf(" lucky=%g%%", p.LuckyChance*100)
	}
	return s
}

func (p RuleParams) survives(n int) bool {
	return n >= p.SurvivalMin && n <= p.SurvivalMax
}

// Transition applies the rule to a cell in state s with n live neighbors.
// draw is the cell's pseudo-random value for this generation and is consulted
// only when a live cell would die with the secondary rule enabled. When born
// is true the cell comes alive and its color must be resolved by the caller;
// next then holds the placeholder Alive(ColorWhite).
//
// A surviving cell keeps its state unchanged, including its color and mark:
// a marked cell stays marked until it dies.
func (p RuleParams) Transition(s State, n int, draw float64) (next State, born bool) {
	if n < 0 || n > MaxNeighbors {
		panic(fmt.Sprintf("life: neighbor count %d outside [0,%d]", n, MaxNeighbors))
	}
	if s.Alive {
		if p.survives(n) {
			return s, false
		}
		if p.Lucky && draw < p.LuckyChance {
			return Marked(s.Color), false
		}
		return Dead, false
	}
	if n == p.BirthCount {
		return Alive(ColorWhite), true
	}
	return Dead, false
}

// EvaluateCell computes the next state of (x, y) from the committed front
// generation. It reads only front and the pack, so every cell can be
// evaluated independently and in any order.
func EvaluateCell(front View, x, y int, pack *RulePack, seed uint32) State {
	s := front.At(x, y)
	n := CountLiveNeighbors(front, x, y)
	draw := 1.0
	if s.Alive && pack.params.Lucky && !pack.params.survives(n) {
		draw = Hash(x, y, seed)
	}
	next, born := pack.params.Transition(s, n, draw)
	if born {
		next = Alive(ResolveBirthColor(front, x, y, pack.colors))
	}
	return next
}
