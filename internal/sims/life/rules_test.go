package life

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"
)

var conwayParams = RuleParams{SurvivalMin: 2, SurvivalMax: 3, BirthCount: 3}

func TestConwayTransitions(t *testing.T) {
	c := qt.New(t)
	for n := 0; n <= MaxNeighbors; n++ {
		next, born := conwayParams.Transition(Alive(ColorRed), n, 0)
		c.Assert(born, qt.IsFalse)
		if n == 2 || n == 3 {
			c.Assert(next, qt.Equals, Alive(ColorRed), qt.Commentf("n=%d", n))
		} else {
			c.Assert(next, qt.Equals, Dead, qt.Commentf("n=%d", n))
		}

		next, born = conwayParams.Transition(Dead, n, 0)
		c.Assert(born, qt.Equals, n == 3, qt.Commentf("n=%d", n))
		if !born {
			c.Assert(next, qt.Equals, Dead)
		}
	}
}

func TestSurvivalKeepsMark(t *testing.T) {
	c := qt.New(t)
	next, born := conwayParams.Transition(Marked(ColorGreen), 2, 0.5)
	c.Assert(born, qt.IsFalse)
	c.Assert(next, qt.Equals, Marked(ColorGreen))
}

func TestMarkPersistsWhileSurviving(t *testing.T) {
	c := qt.New(t)
	l := newTestLife(c, 6, 6, PresetConway)
	block := make([]Placement, 0, 4)
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		block = append(block, Placement{X: p[0], Y: p[1], State: Marked(ColorRed)})
	}
	c.Assert(l.Initialize(6, 6, block), qt.IsNil)
	for i := 0; i < 3; i++ {
		l.Step()
	}
	for _, p := range block {
		c.Assert(l.ReadGrid().At(p.X, p.Y), qt.Equals, Marked(ColorRed))
	}
	c.Assert(l.LiveCount(), qt.Equals, 4)
}

func TestLuckyTransition(t *testing.T) {
	c := qt.New(t)
	p := conwayParams
	p.Lucky = true
	p.LuckyChance = 0.25

	next, _ := p.Transition(Alive(ColorBlue), 1, 0.1)
	c.Assert(next, qt.Equals, Marked(ColorBlue))

	next, _ = p.Transition(Alive(ColorBlue), 1, 0.25)
	c.Assert(next, qt.Equals, Dead)

	// Dead cells never become marked.
	next, born := p.Transition(Dead, 1, 0)
	c.Assert(born, qt.IsFalse)
	c.Assert(next, qt.Equals, Dead)
}

func TestTransitionPanicsOnBadCount(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { conwayParams.Transition(Dead, 9, 0) }, qt.PanicMatches, `life: neighbor count 9 outside \[0,8\]`)
	c.Assert(func() { conwayParams.Transition(Dead, -1, 0) }, qt.PanicMatches, `life: neighbor count -1 outside \[0,8\]`)
}

func TestRuleParamsValidate(t *testing.T) {
	c := qt.New(t)
	valid := []RuleParams{
		conwayParams,
		{SurvivalMin: 0, SurvivalMax: 8, BirthCount: 0},
		{SurvivalMin: 8, SurvivalMax: 8, BirthCount: 8, Lucky: true, LuckyChance: 1},
		{SurvivalMin: 2, SurvivalMax: 3, BirthCount: 3, Lucky: true, LuckyChance: 0},
	}
	for _, p := range valid {
		c.Assert(p.Validate(), qt.IsNil, qt.Commentf("%v", p))
	}

	invalid := []struct {
		params RuleParams
		expect string
	}{{
		params: RuleParams{SurvivalMin: 4, SurvivalMax: 3, BirthCount: 3},
		expect: `invalid rule parameters: survival_min 4 greater than survival_max 3`,
	}, {
		params: RuleParams{SurvivalMin: -1, SurvivalMax: 3, BirthCount: 3},
		expect: `invalid rule parameters: survival_min -1 outside \[0,8\]`,
	}, {
		params: RuleParams{SurvivalMin: 2, SurvivalMax: 9, BirthCount: 3},
		expect: `invalid rule parameters: survival_max 9 outside \[0,8\]`,
	}, {
		params: RuleParams{SurvivalMin: 2, SurvivalMax: 3, BirthCount: 9},
		expect: `invalid rule parameters: birth_count 9 outside \[0,8\]`,
	}, {
		params: RuleParams{SurvivalMin: 2, SurvivalMax: 3, BirthCount: 3, LuckyChance: 1.5},
		expect: `invalid rule parameters: lucky_chance 1.5 outside \[0,1\]`,
	}, {
		params: RuleParams{SurvivalMin: 2, SurvivalMax: 3, BirthCount: 3, LuckyChance: math.NaN()},
		expect: `invalid rule parameters: lucky_chance NaN outside \[0,1\]`,
	}}
	for _, test := range invalid {
		err := test.params.Validate()
		c.Assert(err, qt.ErrorMatches, test.expect)
		c.Assert(errgo.Cause(err), qt.Equals, ErrInvalidRuleParameters)
	}
}

func TestRuleParamsString(t *testing.T) {
	c := qt.New(t)
	c.Assert(conwayParams.String(), qt.Equals, "S2-3/B3")
	p := conwayParams
	p.Lucky = true
	p.LuckyChance = 0.1
	c.Assert(p.String(), qt.Equals, "S2-3/B3 lucky=10%")
}

func TestResolveBirthColor(t *testing.T) {
	c := qt.New(t)
	buf, err := NewBufferPair(5, 5)
	c.Assert(err, qt.IsNil)
	full := FullColorSet()

	// No live neighbors: the default color.
	c.Assert(ResolveBirthColor(buf.Front(), 2, 2, full), qt.Equals, ColorWhite)

	buf.setFront(1, 1, Alive(ColorYellow))
	buf.setFront(2, 1, Marked(ColorYellow))
	buf.setFront(3, 1, Alive(ColorGreen))
	c.Assert(ResolveBirthColor(buf.Front(), 2, 2, full), qt.Equals, ColorYellow)

	// Tie between green and yellow goes to green, which comes first.
	buf.setFront(3, 3, Alive(ColorGreen))
	c.Assert(ResolveBirthColor(buf.Front(), 2, 2, full), qt.Equals, ColorGreen)

	// With yellow first in the set, yellow wins the tie.
	set, err := NewColorSet(ColorYellow, ColorGreen)
	c.Assert(err, qt.IsNil)
	c.Assert(ResolveBirthColor(buf.Front(), 2, 2, set), qt.Equals, ColorYellow)

	// Colors outside the set vote for the default.
	set, err = NewColorSet(ColorBlue, ColorGreen)
	c.Assert(err, qt.IsNil)
	c.Assert(ResolveBirthColor(buf.Front(), 2, 2, set), qt.Equals, ColorBlue)
}

func TestResolveBirthColorWraps(t *testing.T) {
	c := qt.New(t)
	buf, err := NewBufferPair(4, 4)
	c.Assert(err, qt.IsNil)
	buf.setFront(3, 3, Alive(ColorPurple))
	buf.setFront(3, 0, Alive(ColorPurple))
	buf.setFront(1, 1, Alive(ColorRed))
	c.Assert(ResolveBirthColor(buf.Front(), 0, 0, FullColorSet()), qt.Equals, ColorPurple)
}
