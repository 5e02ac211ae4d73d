package app

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"torus-life/internal/sims/life"
)

func TestConfigBind(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()
	fs := gnuflag.NewFlagSet("ca", gnuflag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse(true, []string{
		"--scale", "2",
		"--rule", "highlife",
		"--lucky",
		"--lucky-chance", "0.2",
		"-w", "64",
		"--seed=9",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Scale, qt.Equals, 2)
	c.Assert(cfg.Width, qt.Equals, 64)
	c.Assert(cfg.Seed, qt.Equals, int64(9))

	sim := life.FromMap(cfg.SimConfig())
	c.Assert(sim.Width, qt.Equals, 64)
	c.Assert(sim.Height, qt.Equals, life.DefaultConfig().Height)
	c.Assert(sim.Rule, qt.Equals, life.PresetHighLife)
	c.Assert(sim.Lucky, qt.IsTrue)
	c.Assert(sim.LuckyChance, qt.Equals, 0.2)
	c.Assert(sim.Seed, qt.Equals, int64(9))
}

func TestConfigRulePacks(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()
	packs, err := cfg.RulePacks()
	c.Assert(err, qt.IsNil)
	c.Assert(packs, qt.HasLen, len(life.PresetNames()))

	cfg.RulesFile = filepath.Join(c.TempDir(), "packs.yaml")
	err = os.WriteFile(cfg.RulesFile, []byte("- {name: maze, survival_min: 1, survival_max: 5, birth_count: 3}\n"), 0o644)
	c.Assert(err, qt.IsNil)
	packs, err = cfg.RulePacks()
	c.Assert(err, qt.IsNil)
	c.Assert(packs[len(packs)-1].Name(), qt.Equals, "maze")

	cfg.RulesFile = filepath.Join(c.TempDir(), "nope.yaml")
	_, err = cfg.RulePacks()
	c.Assert(err, qt.ErrorMatches, `cannot read rule packs: .*`)
}

func TestConfigureLogging(t *testing.T) {
	c := qt.New(t)
	defer loggo.ResetLogging()
	cfg := NewConfig()
	cfg.Log = "torus-life.app=DEBUG"
	c.Assert(cfg.ConfigureLogging(), qt.IsNil)
	c.Assert(logger.EffectiveLogLevel(), qt.Equals, loggo.DEBUG)

	cfg.Log = "torus-life.app=LOUD"
	c.Assert(cfg.ConfigureLogging(), qt.ErrorMatches, `bad -log value: .*`)
}
