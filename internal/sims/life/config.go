package life

import (
	"strconv"
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// Config controls the Life simulation dimensions, initial board and rules.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Density float64

	Rule        string
	Lucky       bool
	LuckyChance float64

	// Workers bounds the number of row bands evaluated in parallel; zero
	// means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       256,
		Height:      256,
		Seed:        1337,
		Density:     0.25,
		Rule:        PresetConway,
		LuckyChance: DefaultLuckyChance,
	}
}

// RulePack resolves the configured preset, applying the lucky override.
func (c Config) RulePack() (*RulePack, error) {
	pack, err := Preset(c.Rule)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	if !c.Lucky {
		return pack, nil
	}
	params := pack.Params()
	params.Lucky = true
	params.LuckyChance = c.LuckyChance
	return pack.WithParams(params)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		name := strings.ToLower(strings.TrimSpace(v))
		if _, known := presets[name]; known {
			c.Rule = name
		}
	}
	if v, ok := cfg["lucky"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Lucky = parsed
		}
	}
	if v, ok := cfg["lucky_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LuckyChance = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
