// Command life-sweep runs every rule pack, with and without the secondary
// survival rule, from one seeded board and reports the resulting populations.
package main

import (
	"fmt"
	"image/png"
	"os"
	"runtime"
	"time"

	flag "github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"github.com/kr/pretty"
	errgo "gopkg.in/errgo.v1"

	"torus-life/internal/render"
	"torus-life/internal/sims/life"
)

var logger = loggo.GetLogger("torus-life.sweep")

var (
	steps     = flag.Int("steps", 240, "generations to simulate per scenario")
	workers   = flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size      = flag.Int("size", 128, "grid width and height")
	seed      = flag.Int64("seed", 1337, "seed for the initial board and secondary-rule draws")
	density   = flag.Float64("density", 0.25, "initial fraction of live cells")
	chances   = flag.String("chances", "0,0.05,0.1,0.25", "comma-separated secondary survival probabilities")
	rulesFile = flag.String("rules-file", "", "YAML file of extra rule packs")
	out       = flag.String("out", "", "write the best scenario's final snapshot to this file")
	pngOut    = flag.String("png", "", "write the best scenario's final board as a PNG image")
	top       = flag.Int("top", 10, "number of results to print")
	verbose   = flag.Bool("v", false, "dump the best result in full")
	logSpec   = flag.String("log", "<root>=INFO", "logging configuration")
)

func main() {
	flag.Parse(true)
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "life-sweep: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		return errgo.Notef(err, "bad -log value")
	}
	if *workers < 1 {
		*workers = 1
	}
	packs, err := life.LoadRulePacks(*rulesFile)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	probs, err := parseChances(*chances)
	if err != nil {
		return errgo.Mask(err)
	}
	scenarios, err := buildScenarios(packs, probs)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, *size, *size)
	start := time.Now()
	cfg := sweepConfig{steps: *steps, workers: *workers, size: *size, seed: *seed, density: *density}
	results, err := sweep(cfg, scenarios)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i].summary())
	}
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	if *verbose {
		pretty.Printf("\nBest overall: %# v\n", best.sim.Census())
	}
	if *out != "" {
		if err := saveSnapshot(best.sim, *out); err != nil {
			return errgo.Mask(err)
		}
	}
	if *pngOut != "" {
		if err := savePNG(best.sim, *pngOut); err != nil {
			return errgo.Mask(err)
		}
	}
	return nil
}

func saveSnapshot(l *life.Life, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errgo.Mask(err)
	}
	defer f.Close()
	if err := l.SaveSnapshot(f); err != nil {
		return errgo.Mask(err)
	}
	logger.Infof("wrote snapshot %s", path)
	return f.Close()
}

func savePNG(l *life.Life, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errgo.Mask(err)
	}
	defer f.Close()
	s := l.Size()
	img := render.Image(s.W, s.H, l.Cells(), l.Palette(), 2)
	if err := png.Encode(f, img); err != nil {
		return errgo.Notef(err, "cannot encode %s", path)
	}
	logger.Infof("wrote image %s", path)
	return f.Close()
}
