//go:build ebiten

package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

var logger = loggo.GetLogger("torus-life.ca")

func main() {
	cfg := app.NewConfig()
	cfg.Bind(gnuflag.CommandLine)
	gnuflag.Parse(true)
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ca: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	if err := cfg.ConfigureLogging(); err != nil {
		return errgo.Mask(err)
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return errgo.Newf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}
	sim, ok := factory(cfg.SimConfig()).(*life.Life)
	if !ok {
		return errgo.Newf("sim %q is not viewable", cfg.Sim)
	}
	packs, err := cfg.RulePacks()
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	session := app.NewSession(sim, packs, cfg.TPS, cfg.Seed)
	session.SetSnapshotPath(cfg.Snapshot)

	game := app.New(session, cfg.Scale, cfg.HUDWidth)
	size := sim.Size()
	ebiten.SetWindowTitle("torus-life: " + sim.RulePack().String())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)
	logger.Infof("running %dx%d at %d generations per second", size.W, size.H, cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return errgo.Mask(err)
	}
	return nil
}
