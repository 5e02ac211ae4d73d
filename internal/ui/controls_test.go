package ui

import (
	"image"
	"testing"

	qt "github.com/frankban/quicktest"

	"torus-life/internal/sims/life"
)

func newLife(c *qt.C) *life.Life {
	l, err := life.New(8, 8)
	c.Assert(err, qt.IsNil)
	return l
}

func findControl(c *qt.C, controls []control, key string) *control {
	for i := range controls {
		if controls[i].spec.Key == key {
			return &controls[i]
		}
	}
	c.Fatalf("no control %q", key)
	return nil
}

func TestControlsRefresh(t *testing.T) {
	c := qt.New(t)
	l := newLife(c)
	controls := newControls(l)
	c.Assert(controls, qt.HasLen, len(l.ParameterControls()))

	snap := l.Parameters()
	for i := range controls {
		controls[i].refresh(snap)
		c.Assert(controls[i].hasValue, qt.IsTrue, qt.Commentf("control %q", controls[i].spec.Key))
	}
	c.Assert(findControl(c, controls, "birth_count").value, qt.Equals, "3")
	c.Assert(findControl(c, controls, "lucky_chance").value, qt.Equals, "0.00")
	c.Assert(findControl(c, controls, "lucky").value, qt.Equals, "0")
}

func TestControlAdjust(t *testing.T) {
	c := qt.New(t)
	l := newLife(c)
	controls := newControls(l)
	snap := l.Parameters()
	for i := range controls {
		controls[i].refresh(snap)
	}

	birth := findControl(c, controls, "birth_count")
	c.Assert(birth.adjust(1, l, l), qt.IsTrue)
	c.Assert(birth.value, qt.Equals, "4")
	c.Assert(l.RulePack().Params().BirthCount, qt.Equals, 4)

	// survival_min may not pass survival_max: the engine rejects it.
	smin := findControl(c, controls, "survival_min")
	c.Assert(smin.adjust(1, l, l), qt.IsTrue)
	c.Assert(smin.adjust(1, l, l), qt.IsFalse)
	c.Assert(smin.value, qt.Equals, "3")

	chance := findControl(c, controls, "lucky_chance")
	c.Assert(chance.adjust(1, l, l), qt.IsTrue)
	c.Assert(l.RulePack().Params().LuckyChance, qt.Equals, 0.05)
	c.Assert(chance.value, qt.Equals, "0.05")

	lucky := findControl(c, controls, "lucky")
	c.Assert(lucky.canAdjust(-1), qt.IsFalse)
	c.Assert(lucky.adjust(1, l, l), qt.IsTrue)
	c.Assert(lucky.canAdjust(1), qt.IsFalse)
	c.Assert(l.RulePack().Params().Lucky, qt.IsTrue)

	// Without setters nothing changes.
	c.Assert(birth.adjust(1, nil, nil), qt.IsFalse)
	c.Assert(birth.value, qt.Equals, "4")
}

func TestControlWithoutValue(t *testing.T) {
	c := qt.New(t)
	controls := newControls(newLife(c))
	c.Assert(controls[0].hasValue, qt.IsFalse)
	c.Assert(controls[0].canAdjust(1), qt.IsFalse)
	c.Assert(controls[0].value, qt.Equals, "--")
}

func TestLayoutControls(t *testing.T) {
	c := qt.New(t)
	controls := make([]control, 2)
	layoutControls(controls, 200, 100)
	c.Assert(controls[1].top, qt.Equals, 100+lineHeight)
	c.Assert(controls[0].plusRect.Max.X, qt.Equals, 200-panelPadding)
	c.Assert(controls[0].minusRect.Max.X, qt.Equals, controls[0].plusRect.Min.X-buttonGap)
	c.Assert(controls[0].minusRect.Overlaps(controls[0].plusRect), qt.IsFalse)
	c.Assert(pointInRect(controls[0].plusRect.Min.X, controls[0].plusRect.Min.Y, controls[0].plusRect), qt.IsTrue)
	c.Assert(pointInRect(0, 0, image.Rectangle{}), qt.IsFalse)
}
