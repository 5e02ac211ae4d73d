package life

import (
	"fmt"
	"os"
	"sort"
	"strings"

	errgo "gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"
)

// RulePack is a named, immutable bundle of rule parameters and the color set
// used for births. Packs are swapped wholesale between generations.
type RulePack struct {
	name   string
	params RuleParams
	colors ColorSet
}

// LoadRulePack validates params and colors and returns a pack. Invalid
// parameters fail with ErrInvalidRuleParameters; nothing is clamped.
func LoadRulePack(name string, params RuleParams, colors ColorSet) (*RulePack, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidRules("rule pack needs a name")
	}
	if err := params.Validate(); err != nil {
		return nil, errgo.NoteMask(err, fmt.Sprintf("rule pack %q", name), errgo.Any)
	}
	if colors.Len() == 0 {
		return nil, invalidRules("rule pack %q has no colors", name)
	}
	return &RulePack{name: name, params: params, colors: colors}, nil
}

// Name returns the pack name.
func (p *RulePack) Name() string { return p.name }

// Params returns the rule thresholds.
func (p *RulePack) Params() RuleParams { return p.params }

// Colors returns the birth color set.
func (p *RulePack) Colors() ColorSet { return p.colors }

// WithParams derives a pack with the same name and colors but new parameters.
func (p *RulePack) WithParams(params RuleParams) (*RulePack, error) {
	return LoadRulePack(p.name, params, p.colors)
}

func (p *RulePack) String() string { return p.name + " " + p.params.String() }

// Preset names.
const (
	PresetConway      = "conway"
	PresetHighLife    = "highlife"
	PresetDayAndNight = "day-and-night"
	PresetLuckyConway = "lucky-conway"
)

// DefaultLuckyChance is the secondary-rule probability used when the rule is
// switched on without an explicit chance.
const DefaultLuckyChance = 0.10

var presets = map[string]RuleParams{
	PresetConway: {SurvivalMin: 2, SurvivalMax: 3, BirthCount: 3},
	// Single birth count: B6 stands in for HighLife's B36.
	PresetHighLife:    {SurvivalMin: 2, SurvivalMax: 3, BirthCount: 6},
	PresetDayAndNight: {SurvivalMin: 3, SurvivalMax: 8, BirthCount: 3},
	PresetLuckyConway: {SurvivalMin: 2, SurvivalMax: 3, BirthCount: 3, Lucky: true, LuckyChance: DefaultLuckyChance},
}

// Preset returns the named built-in rule pack with the full color set.
func Preset(name string) (*RulePack, error) {
	params, ok := presets[name]
	if !ok {
		return nil, invalidRules("unknown rule pack %q", name)
	}
	return LoadRulePack(name, params, FullColorSet())
}

// PresetNames lists the built-in packs in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rulePackDoc is the YAML form of a rule pack. Thresholds are pointers so a
// missing field is an error rather than a silent zero.
type rulePackDoc struct {
	Name        string   `yaml:"name"`
	SurvivalMin *int     `yaml:"survival_min"`
	SurvivalMax *int     `yaml:"survival_max"`
	BirthCount  *int     `yaml:"birth_count"`
	Lucky       bool     `yaml:"lucky,omitempty"`
	LuckyChance float64  `yaml:"lucky_chance,omitempty"`
	Colors      []string `yaml:"colors,omitempty"`
}

func (p *RulePack) doc() rulePackDoc {
	smin, smax, birth := p.params.SurvivalMin, p.params.SurvivalMax, p.params.BirthCount
	return rulePackDoc{
		Name:        p.name,
		SurvivalMin: &smin,
		SurvivalMax: &smax,
		BirthCount:  &birth,
		Lucky:       p.params.Lucky,
		LuckyChance: p.params.LuckyChance,
		Colors:      p.colors.Names(),
	}
}

func (d rulePackDoc) pack() (*RulePack, error) {
	switch {
	case d.SurvivalMin == nil:
		return nil, invalidRules("rule pack %q: missing survival_min", d.Name)
	case d.SurvivalMax == nil:
		return nil, invalidRules("rule pack %q: missing survival_max", d.Name)
	case d.BirthCount == nil:
		return nil, invalidRules("rule pack %q: missing birth_count", d.Name)
	}
	colors := FullColorSet()
	if len(d.Colors) > 0 {
		var err error
		colors, err = ParseColorSet(d.Colors)
		if err != nil {
			return nil, errgo.NoteMask(err, fmt.Sprintf("rule pack %q", d.Name), errgo.Any)
		}
	}
	params := RuleParams{
		SurvivalMin: *d.SurvivalMin,
		SurvivalMax: *d.SurvivalMax,
		BirthCount:  *d.BirthCount,
		Lucky:       d.Lucky,
		LuckyChance: d.LuckyChance,
	}
	return LoadRulePack(d.Name, params, colors)
}

// ParseRulePacks decodes a YAML list of rule packs. Every entry is validated
// and names must be unique.
func ParseRulePacks(data []byte) ([]*RulePack, error) {
	var docs []rulePackDoc
	if err := yaml.UnmarshalStrict(data, &docs); err != nil {
		return nil, errgo.WithCausef(err, ErrInvalidRuleParameters, "cannot parse rule packs")
	}
	packs := make([]*RulePack, 0, len(docs))
	seen := make(map[string]bool)
	for _, d := range docs {
		p, err := d.pack()
		if err != nil {
			return nil, errgo.Mask(err, errgo.Any)
		}
		if seen[p.name] {
			return nil, invalidRules("duplicate rule pack %q", p.name)
		}
		seen[p.name] = true
		packs = append(packs, p)
	}
	return packs, nil
}

// LoadRulePackFile reads rule packs from a YAML file.
func LoadRulePackFile(path string) ([]*RulePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errgo.Notef(err, "cannot read rule packs")
	}
	packs, err := ParseRulePacks(data)
	if err != nil {
		return nil, errgo.NoteMask(err, path, errgo.Any)
	}
	logger.Debugf("loaded %d rule packs from %s", len(packs), path)
	return packs, nil
}

// MarshalRulePacks encodes packs in the format read by ParseRulePacks.
func MarshalRulePacks(packs []*RulePack) ([]byte, error) {
	docs := make([]rulePackDoc, len(packs))
	for i, p := range packs {
		docs[i] = p.doc()
	}
	data, err := yaml.Marshal(docs)
	if err != nil {
		return nil, errgo.Mask(err)
	}
	return data, nil
}

// LoadRulePacks returns the presets followed by the packs in the YAML file at
// path. An empty path yields only the presets.
func LoadRulePacks(path string) ([]*RulePack, error) {
	packs := make([]*RulePack, 0, len(presets))
	for _, name := range PresetNames() {
		p, err := Preset(name)
		if err != nil {
			return nil, errgo.Mask(err, errgo.Any)
		}
		packs = append(packs, p)
	}
	if path == "" {
		return packs, nil
	}
	extra, err := LoadRulePackFile(path)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	return append(packs, extra...), nil
}
