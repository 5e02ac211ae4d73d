package core

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestFixedStepAccumulates(t *testing.T) {
	c := qt.New(t)
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	c.Assert(fs.Interval(), qt.Equals, 100*time.Millisecond)
	// The first call fires immediately because the accumulator starts full.
	c.Assert(fs.ShouldStep(), qt.IsTrue)
	c.Assert(fs.ShouldStep(), qt.IsFalse)

	clock = clock.Add(60 * time.Millisecond)
	c.Assert(fs.ShouldStep(), qt.IsFalse)
	clock = clock.Add(60 * time.Millisecond)
	c.Assert(fs.ShouldStep(), qt.IsTrue)
}

func TestFixedStepResetDropsBacklog(t *testing.T) {
	c := qt.New(t)
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	fs.Reset()
	clock = clock.Add(time.Second)
	c.Assert(fs.ShouldStep(), qt.IsFalse)
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	c := qt.New(t)
	fs := NewFixedStep(0)
	c.Assert(fs.Interval(), qt.Equals, time.Second/60)
}
