package life

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c := qt.New(t)
	src := newTestLife(c, 12, 9, PresetLuckyConway)
	src.Reset(5)
	for i := 0; i < 6; i++ {
		src.Step()
	}
	c.Assert(src.PaintCell(0, 0, ColorPurple), qt.IsNil)

	var buf bytes.Buffer
	c.Assert(src.SaveSnapshot(&buf), qt.IsNil)

	dst := newTestLife(c, 3, 3, PresetConway)
	c.Assert(dst.LoadSnapshot(&buf), qt.IsNil)
	c.Assert(dst.Size(), qt.Equals, src.Size())
	c.Assert(dst.Generation(), qt.Equals, uint32(6))
	c.Assert(dst.RulePack().String(), qt.Equals, src.RulePack().String())
	c.Assert(dst.RulePack().Colors().Names(), qt.DeepEquals, src.RulePack().Colors().Names())
	c.Assert(dst.CopyGrid(), qt.DeepEquals, src.CopyGrid())
	c.Assert(dst.Cells(), qt.DeepEquals, src.Cells())

	// Both continue identically since the seed travels with the snapshot.
	for i := 0; i < 4; i++ {
		src.Step()
		dst.Step()
	}
	c.Assert(dst.CopyGrid(), qt.DeepEquals, src.CopyGrid())
}

func TestSnapshotFormat(t *testing.T) {
	c := qt.New(t)
	l := newTestLife(c, 3, 2, PresetConway)
	c.Assert(l.Initialize(3, 2, []Placement{
		{X: 1, Y: 0, State: Marked(ColorRed)},
		{X: 2, Y: 1, State: Alive(ColorPurple)},
	}), qt.IsNil)
	var buf bytes.Buffer
	c.Assert(l.SaveSnapshot(&buf), qt.IsNil)
	var doc snapshotDoc
	c.Assert(yaml.Unmarshal(buf.Bytes(), &doc), qt.IsNil)
	c.Assert(doc.Width, qt.Equals, 3)
	c.Assert(doc.Height, qt.Equals, 2)
	c.Assert(doc.Rows, qt.DeepEquals, []string{"0b0", "007"})
	c.Assert(doc.Rules.Name, qt.Equals, PresetConway)
}

func TestLoadSnapshotErrors(t *testing.T) {
	c := qt.New(t)
	rules := `
rules:
  name: conway
  survival_min: 2
  survival_max: 3
  birth_count: 3
`
	tests := []struct {
		testName string
		doc      string
		cause    error
	}{{
		testName: "row-count",
		doc:      "width: 2\nheight: 2\nrows: [\"01\"]" + rules,
		cause:    ErrInvalidSnapshot,
	}, {
		testName: "row-width",
		doc:      "width: 2\nheight: 1\nrows: [\"011\"]" + rules,
		cause:    ErrInvalidSnapshot,
	}, {
		testName: "bad-digit",
		doc:      "width: 2\nheight: 1\nrows: [\"0z\"]" + rules,
		cause:    ErrInvalidSnapshot,
	}, {
		testName: "unused-code",
		doc:      "width: 2\nheight: 1\nrows: [\"09\"]" + rules,
		cause:    ErrInvalidSnapshot,
	}, {
		testName: "dimensions",
		doc:      "width: 0\nheight: 1\nrows: [\"\"]" + rules,
		cause:    ErrInvalidDimensions,
	}, {
		testName: "rules",
		doc:      "width: 1\nheight: 1\nrows: [\"0\"]\nrules: {name: x, survival_min: 4, survival_max: 3, birth_count: 3}",
		cause:    ErrInvalidRuleParameters,
	}, {
		testName: "huge-header",
		doc:      "width: 3037000500\nheight: 3037000500\nrows: []" + rules,
		cause:    ErrInvalidSnapshot,
	}, {
		testName: "huge-width",
		doc:      "width: 4611686018427387904\nheight: 1\nrows: [\"0\"]" + rules,
		cause:    ErrInvalidSnapshot,
	}, {
		testName: "not-yaml",
		doc:      "width: [",
		cause:    ErrInvalidSnapshot,
	}}
	for _, test := range tests {
		c.Run(test.testName, func(c *qt.C) {
			l := newTestLife(c, 4, 4, PresetConway)
			c.Assert(l.PaintCell(1, 1, ColorRed), qt.IsNil)
			before := l.CopyGrid()
			err := l.LoadSnapshot(strings.NewReader(test.doc))
			c.Assert(errgo.Cause(err), qt.Equals, test.cause)
			c.Assert(l.CopyGrid(), qt.DeepEquals, before)
			c.Assert(l.RulePack().Name(), qt.Equals, PresetConway)
		})
	}
}
