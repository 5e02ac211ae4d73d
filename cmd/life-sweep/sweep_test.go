package main

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"torus-life/internal/sims/life"
)

func presetPacks(c *qt.C) []*life.RulePack {
	packs, err := life.LoadRulePacks("")
	c.Assert(err, qt.IsNil)
	return packs
}

func TestParseChances(t *testing.T) {
	c := qt.New(t)
	got, err := parseChances(" 0, 0.5 ,1,")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, []float64{0, 0.5, 1})

	_, err = parseChances("0.1,lots")
	c.Assert(err, qt.ErrorMatches, `bad lucky chance "lots": .*`)
	_, err = parseChances(" , ")
	c.Assert(err, qt.ErrorMatches, `no lucky chances given`)
}

func TestBuildScenarios(t *testing.T) {
	c := qt.New(t)
	packs := presetPacks(c)
	scenarios, err := buildScenarios(packs, []float64{0, 0.1})
	c.Assert(err, qt.IsNil)
	c.Assert(scenarios, qt.HasLen, 2*len(packs))
	c.Assert(scenarios[0].String(), qt.Equals, "conway S2-3/B3")
	c.Assert(scenarios[1].String(), qt.Equals, "conway S2-3/B3 lucky=10%")

	_, err = buildScenarios(packs, []float64{2})
	c.Assert(err, qt.ErrorMatches, `lucky chance 2: rule pack "conway": invalid rule parameters: .*`)

	doubled, err := buildScenarios(packs[:1], []float64{0.1, 0.1})
	c.Assert(err, qt.IsNil)
	c.Assert(doubled, qt.HasLen, 1)
}

func TestSweepDeterministic(t *testing.T) {
	c := qt.New(t)
	scenarios, err := buildScenarios(presetPacks(c), []float64{0, 0.25})
	c.Assert(err, qt.IsNil)
	cfg := sweepConfig{steps: 20, workers: 3, size: 24, seed: 5, density: 0.3}

	first, err := sweep(cfg, scenarios)
	c.Assert(err, qt.IsNil)
	c.Assert(first, qt.HasLen, len(scenarios))
	cfg.workers = 1
	second, err := sweep(cfg, scenarios)
	c.Assert(err, qt.IsNil)
	for i := range first {
		c.Assert(first[i].summary(), qt.Equals, second[i].summary())
		c.Assert(first[i].sim.CopyGrid(), qt.DeepEquals, second[i].sim.CopyGrid())
	}
	for i := 1; i < len(first); i++ {
		c.Assert(first[i-1].finalLive >= first[i].finalLive, qt.IsTrue)
	}
}

func TestRunScenarioTracksExtinction(t *testing.T) {
	c := qt.New(t)
	conway, err := life.Preset(life.PresetConway)
	c.Assert(err, qt.IsNil)
	cfg := sweepConfig{steps: 10, size: 6, seed: 1}
	board := make([]life.State, 36)
	board[14] = life.Alive(life.ColorWhite)

	res, err := runScenario(cfg, board, scenario{pack: conway})
	c.Assert(err, qt.IsNil)
	c.Assert(res.extinctAt, qt.Equals, 1)
	c.Assert(res.finalLive, qt.Equals, 0)
	c.Assert(res.peakLive, qt.Equals, 1)
	c.Assert(res.summary(), qt.Equals, "live=0      lucky=0     peak=1@0 extinct=1 rules=conway S2-3/B3")
}
