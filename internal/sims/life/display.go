package life

import "image/color"

var lifePalette = buildLifePalette()

// Palette maps encoded cell values (see State.Encode) to colors.
func (l *Life) Palette() []color.RGBA {
	return lifePalette
}

func buildLifePalette() []color.RGBA {
	palette := make([]color.RGBA, len(decodeTable))
	for code, s := range decodeTable {
		palette[code] = stateColor(s)
	}
	return palette
}

func stateColor(s State) color.RGBA {
	if !s.Valid() {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	if !s.Alive {
		return color.RGBA{A: 255}
	}
	base := baseColor(s.Color)
	if !s.Marked {
		return base
	}
	if s.Color == ColorWhite {
		// Marked white gets its own hue so lucky survivors stand out.
		return color.RGBA{R: 255, G: 170, B: 40, A: 255}
	}
	return lighten(base, 0.5)
}

func baseColor(c Color) color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 230, G: 60, B: 60, A: 255}
	case ColorGreen:
		return color.RGBA{R: 70, G: 200, B: 90, A: 255}
	case ColorBlue:
		return color.RGBA{R: 70, G: 110, B: 235, A: 255}
	case ColorYellow:
		return color.RGBA{R: 235, G: 220, B: 60, A: 255}
	case ColorPurple:
		return color.RGBA{R: 170, G: 80, B: 220, A: 255}
	default:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	}
}

func lighten(c color.RGBA, t float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*t + 0.5) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// rebuildDisplay re-encodes the committed generation; callers hold mu.
func (l *Life) rebuildDisplay() {
	cells := l.buf.frontCells()
	display := l.display.Cells()
	for i, s := range cells {
		display[i] = s.Encode()
	}
}
