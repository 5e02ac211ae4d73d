package app

import (
	"strconv"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"

	"torus-life/internal/sims/life"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width   int
	Height  int
	Density float64
	Workers int

	Rule        string
	RulesFile   string
	Lucky       bool
	LuckyChance float64

	HUDWidth int
	Snapshot string
	Log      string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:         "life",
		Scale:       3,
		TPS:         30,
		Seed:        def.Seed,
		Width:       def.Width,
		Height:      def.Height,
		Density:     def.Density,
		Rule:        def.Rule,
		LuckyChance: def.LuckyChance,
		HUDWidth:    220,
		Snapshot:    "life-snapshot.yaml",
		Log:         "<root>=INFO",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *gnuflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board randomization")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after a reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel row bands per generation (0 means GOMAXPROCS)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "initial rule pack")
	fs.StringVar(&c.RulesFile, "rules-file", c.RulesFile, "YAML file of extra rule packs")
	fs.BoolVar(&c.Lucky, "lucky", c.Lucky, "enable the secondary survival rule")
	fs.Float64Var(&c.LuckyChance, "lucky-chance", c.LuckyChance, "secondary survival probability")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "file used by the save and load keys")
	fs.StringVar(&c.Log, "log", c.Log, "logging configuration, e.g. <root>=DEBUG")
}

// SimConfig renders the simulation settings in the key/value form accepted
// by registered factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":            strconv.Itoa(c.Width),
		"h":            strconv.Itoa(c.Height),
		"seed":         strconv.FormatInt(c.Seed, 10),
		"density":      strconv.FormatFloat(c.Density, 'g', -1, 64),
		"workers":      strconv.Itoa(c.Workers),
		"rule":         c.Rule,
		"lucky":        strconv.FormatBool(c.Lucky),
		"lucky_chance": strconv.FormatFloat(c.LuckyChance, 'g', -1, 64),
	}
}

// ConfigureLogging applies the -log specification.
func (c *Config) ConfigureLogging() error {
	if err := loggo.ConfigureLoggers(c.Log); err != nil {
		return errgo.Notef(err, "bad -log value")
	}
	return nil
}

// RulePacks returns the built-in presets followed by the packs in RulesFile.
func (c *Config) RulePacks() ([]*life.RulePack, error) {
	return life.LoadRulePacks(c.RulesFile)
}
