package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	errgo "gopkg.in/errgo.v1"

	"torus-life/internal/sims/life"
)

// scenario is one rule pack run from the shared initial board.
type scenario struct {
	pack *life.RulePack
}

func (s scenario) String() string { return s.pack.String() }

type scenarioResult struct {
	scenario  scenario
	finalLive int
	marked    int
	peakLive  int
	peakGen   uint32
	extinctAt int
	sim       *life.Life
}

type sweepConfig struct {
	steps   int
	workers int
	size    int
	seed    int64
	density float64
}

// buildScenarios crosses every pack with every lucky chance. A chance of
// zero runs the pack with the secondary rule switched off.
func buildScenarios(packs []*life.RulePack, chances []float64) ([]scenario, error) {
	var out []scenario
	seen := make(map[string]bool)
	for _, p := range packs {
		for _, chance := range chances {
			params := p.Params()
			params.Lucky = chance > 0
			params.LuckyChance = chance
			variant, err := p.WithParams(params)
			if err != nil {
				return nil, errgo.NoteMask(err, fmt.Sprintf("lucky chance %v", chance), errgo.Any)
			}
			key := variant.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, scenario{pack: variant})
		}
	}
	return out, nil
}

func parseChances(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errgo.Notef(err, "bad lucky chance %q", field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errgo.New("no lucky chances given")
	}
	return out, nil
}

// sweep runs every scenario on a pool of workers and returns the results
// sorted by final population, largest first.
func sweep(cfg sweepConfig, scenarios []scenario) ([]scenarioResult, error) {
	board, err := initialBoard(cfg)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	errs := make(chan error, len(scenarios))
	var wg sync.WaitGroup

	for i := 0; i < cfg.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := runScenario(cfg, board, sc)
				if err != nil {
					errs <- errgo.NoteMask(err, sc.String(), errgo.Any)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		logger.Debugf("%s: live=%d peak=%d", res.scenario, res.finalLive, res.peakLive)
		all = append(all, res)
	}
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].finalLive != all[j].finalLive {
			return all[i].finalLive > all[j].finalLive
		}
		return all[i].scenario.String() < all[j].scenario.String()
	})
	return all, nil
}

// initialBoard randomizes the shared starting generation.
func initialBoard(cfg sweepConfig) ([]life.State, error) {
	lc := life.DefaultConfig()
	lc.Width, lc.Height = cfg.size, cfg.size
	lc.Density = cfg.density
	lc.Workers = 1
	l, err := life.NewWithConfig(lc)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	l.Reset(cfg.seed)
	return l.CopyGrid(), nil
}

func runScenario(cfg sweepConfig, board []life.State, sc scenario) (scenarioResult, error) {
	lc := life.DefaultConfig()
	lc.Width, lc.Height = cfg.size, cfg.size
	lc.Workers = 1
	l, err := life.NewWithConfig(lc)
	if err != nil {
		return scenarioResult{}, errgo.Mask(err, errgo.Any)
	}
	if err := l.InitializeDense(cfg.size, cfg.size, board); err != nil {
		return scenarioResult{}, errgo.Mask(err, errgo.Any)
	}
	if err := l.SetRulePack(sc.pack); err != nil {
		return scenarioResult{}, errgo.Mask(err, errgo.Any)
	}

	res := scenarioResult{scenario: sc, extinctAt: -1, sim: l}
	res.peakLive = l.LiveCount()
	for step := 0; step < cfg.steps; step++ {
		seed := uint32(cfg.seed) ^ uint32(step)*0x9E3779B9
		if err := l.StepWith(seed, sc.pack); err != nil {
			return scenarioResult{}, errgo.Mask(err, errgo.Any)
		}
		live := l.LiveCount()
		if live > res.peakLive {
			res.peakLive = live
			res.peakGen = l.Generation()
		}
		if live == 0 {
			res.extinctAt = int(l.Generation())
			break
		}
	}
	census := l.Census()
	res.finalLive = census.Live
	res.marked = census.Marked
	return res, nil
}

func (r scenarioResult) summary() string {
	extinct := "-"
	if r.extinctAt >= 0 {
		extinct = strconv.Itoa(r.extinctAt)
	}
	return fmt.Sprintf("live=%-6d lucky=%-5d peak=%d@%d extinct=%s rules=%s",
		r.finalLive, r.marked, r.peakLive, r.peakGen, extinct, r.scenario)
}
