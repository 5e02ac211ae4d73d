package ui

import (
	"image"
	"math"
	"strconv"

	"torus-life/internal/core"
)

// control tracks one adjustable parameter and its +/- button geometry.
type control struct {
	spec  core.ParameterControl
	value string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControls(sim core.Sim) []control {
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	specs := provider.ParameterControls()
	controls := make([]control, len(specs))
	for i, spec := range specs {
		controls[i] = control{spec: spec, value: "--"}
	}
	return controls
}

// refresh reads the control's current value from snap.
func (c *control) refresh(snap core.ParameterSnapshot) {
	c.hasValue = false
	c.value = "--"
	param, ok := snap.Lookup(c.spec.Key)
	if !ok {
		return
	}
	switch c.spec.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		c.intValue, c.floatValue = v, float64(v)
		c.value = strconv.Itoa(v)
		c.hasValue = true
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		c.floatValue = v
		c.value = formatFloat(c.spec, v)
		c.hasValue = true
	}
}

func (c *control) intStep() int {
	step := int(math.Round(c.spec.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func (c *control) floatStep() float64 {
	if c.spec.Step <= 0 {
		return 0.05
	}
	return c.spec.Step
}

// canAdjust reports whether one step in direction stays within the bounds.
func (c *control) canAdjust(direction int) bool {
	if !c.hasValue || direction == 0 {
		return false
	}
	switch c.spec.Type {
	case core.ParamTypeInt:
		target := float64(c.intValue + direction*c.intStep())
		return c.inBounds(target)
	case core.ParamTypeFloat:
		target := c.floatValue + float64(direction)*c.floatStep()
		return c.inBounds(math.Round(target*1e9) / 1e9)
	}
	return false
}

func (c *control) inBounds(v float64) bool {
	if c.spec.HasMin && v < c.spec.Min {
		return false
	}
	if c.spec.HasMax && v > c.spec.Max {
		return false
	}
	return true
}

// adjust moves the control one step in direction through the setters. The
// simulation may reject the new value, in which case nothing changes.
func (c *control) adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !c.canAdjust(direction) {
		return false
	}
	switch c.spec.Type {
	case core.ParamTypeInt:
		if ints == nil {
			return false
		}
		target := c.intValue + direction*c.intStep()
		if !ints.SetIntParameter(c.spec.Key, target) {
			return false
		}
		c.intValue, c.floatValue = target, float64(target)
		c.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if floats == nil {
			return false
		}
		target := math.Round((c.floatValue+float64(direction)*c.floatStep())*1e9) / 1e9
		if !floats.SetFloatParameter(c.spec.Key, target) {
			return false
		}
		c.floatValue = target
		c.value = formatFloat(c.spec, target)
		return true
	}
	return false
}

// layoutControls stacks the controls below top inside a panel of width.
func layoutControls(controls []control, width, top int) {
	for i := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = rowTop
		controls[i].minusRect = minus
		controls[i].plusRect = plus
	}
}

func formatFloat(spec core.ParameterControl, value float64) string {
	precision := 1
	switch step := spec.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 30
	textLine       = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
)
