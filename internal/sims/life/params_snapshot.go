package life

import (
	"strconv"

	"torus-life/internal/core"
)

// Parameters reports the grid, rule pack and color set for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	params := l.pack.params
	colorParams := make([]core.Parameter, 0, l.pack.colors.Len())
	for i, name := range l.pack.colors.Names() {
		label := "Color " + strconv.Itoa(i)
		if i == 0 {
			label = "Default color"
		}
		colorParams = append(colorParams, stringParam("color_"+strconv.Itoa(i), label, name))
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.buf.w),
				intParam("h", "Height", l.buf.h),
				int64Param("seed", "Seed", l.seed),
				int64Param("generation", "Generation", int64(l.generation)),
			},
		},
		{
			Name:    "Rules",
			Summary: params.String(),
			Params: []core.Parameter{
				stringParam("rule", "Rule pack", l.pack.name),
				intParam("survival_min", "Survival min", params.SurvivalMin),
				intParam("survival_max", "Survival max", params.SurvivalMax),
				intParam("birth_count", "Birth count", params.BirthCount),
				boolParam("lucky", "Lucky rule", params.Lucky),
				floatParam("lucky_chance", "Lucky chance", params.LuckyChance),
			},
		},
		{
			Name:   "Colors",
			Params: colorParams,
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule thresholds adjustable from the HUD.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "survival_min", Label: "Survival min", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxNeighbors, HasMin: true, HasMax: true},
		{Key: "survival_max", Label: "Survival max", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxNeighbors, HasMin: true, HasMax: true},
		{Key: "birth_count", Label: "Birth count", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxNeighbors, HasMin: true, HasMax: true},
		{Key: "lucky", Label: "Lucky rule", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "lucky_chance", Label: "Lucky chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter derives a new rule pack with one threshold changed and
// swaps it in. Values that would make the pack invalid are rejected.
func (l *Life) SetIntParameter(key string, value int) bool {
	return l.updateParams(func(p *RuleParams) bool {
		switch key {
		case "survival_min":
			p.SurvivalMin = value
		case "survival_max":
			p.SurvivalMax = value
		case "birth_count":
			p.BirthCount = value
		case "lucky":
			if value != 0 && value != 1 {
				return false
			}
			p.Lucky = value == 1
		default:
			return false
		}
		return true
	})
}

// SetFloatParameter updates the secondary-rule probability.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != "lucky_chance" {
		return false
	}
	return l.updateParams(func(p *RuleParams) bool {
		p.LuckyChance = value
		return true
	})
}

func (l *Life) updateParams(edit func(*RuleParams) bool) bool {
	current := l.RulePack()
	params := current.Params()
	if !edit(&params) {
		return false
	}
	next, err := current.WithParams(params)
	if err != nil {
		logger.Debugf("rejected rule change: %v", err)
		return false
	}
	return l.SetRulePack(next) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	v := 0
	if value {
		v = 1
	}
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(v),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
