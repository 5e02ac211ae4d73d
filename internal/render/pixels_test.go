package render

import (
	"image/color"
	"testing"

	qt "github.com/frankban/quicktest"
)

var testPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, A: 255},
}

func TestFillRGBA(t *testing.T) {
	c := qt.New(t)
	buf := make([]byte, 16)
	FillRGBA(buf, []uint8{0, 1, 2, 9}, testPalette)
	c.Assert(buf, qt.DeepEquals, []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
		255, 0, 0, 255,
		255, 0, 0, 255,
	})
}

func TestFillRGBAEmptyPalette(t *testing.T) {
	c := qt.New(t)
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	FillRGBA(buf, []uint8{1, 1}, nil)
	c.Assert(buf, qt.DeepEquals, make([]byte, 8))
}

func TestImageScales(t *testing.T) {
	c := qt.New(t)
	img := Image(2, 1, []uint8{1, 2}, testPalette, 2)
	c.Assert(img.Bounds().Dx(), qt.Equals, 4)
	c.Assert(img.Bounds().Dy(), qt.Equals, 2)
	c.Assert(img.RGBAAt(1, 1), qt.Equals, testPalette[1])
	c.Assert(img.RGBAAt(2, 0), qt.Equals, testPalette[2])
	c.Assert(img.RGBAAt(3, 1), qt.Equals, testPalette[2])

	blank := Image(2, 2, []uint8{1}, testPalette, 1)
	c.Assert(blank.RGBAAt(0, 0), qt.Equals, color.RGBA{})
}
