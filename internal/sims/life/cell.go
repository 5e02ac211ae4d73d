package life

import (
	"fmt"
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// Color enumerates the supported cell colors. The declaration order is the
// enumeration order used by FullColorSet.
type Color uint8

const (
	ColorWhite Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple

	numColors
)

var colorNames = [numColors]string{"white", "red", "green", "blue", "yellow", "purple"}

// Valid reports whether c is one of the enumerated colors.
func (c Color) Valid() bool { return c < numColors }

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor maps a color name (case-insensitive) to its Color.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, errgo.WithCausef(nil, ErrUnknownColor, "unknown color %q", name)
}

// State is the per-cell value: dead, alive with a color, or alive and marked
// because it survived through the secondary rule. The zero value is dead.
type State struct {
	Alive  bool
	Marked bool
	Color  Color
}

// Dead is the state of an empty cell.
var Dead State

// Alive returns a live cell of color c.
func Alive(c Color) State { return State{Alive: true, Color: c} }

// Marked returns a live cell of color c that survived through the secondary rule.
func Marked(c Color) State { return State{Alive: true, Marked: true, Color: c} }

// Valid reports whether s maps to exactly one category: dead cells carry no
// flags or color and live cells carry an enumerated color.
func (s State) Valid() bool {
	if !s.Alive {
		return s == Dead
	}
	return s.Color.Valid()
}

func (s State) String() string {
	switch {
	case !s.Alive:
		return "dead"
	case s.Marked:
		return "marked-" + s.Color.String()
	default:
		return s.Color.String()
	}
}

const markedBit = 0x08

// colorCodes holds the encoded value of each live color; marked-white uses the
// reserved value 2 and other marked colors set markedBit on their base value.
var colorCodes = [numColors]uint8{1, 3, 4, 5, 6, 7}

const markedWhiteCode = 2

var decodeTable = buildDecodeTable()

func buildDecodeTable() [16]State {
	var table [16]State
	for i := range table {
		table[i] = State{Color: numColors}
	}
	table[0] = Dead
	for c, code := range colorCodes {
		table[code] = Alive(Color(c))
		if Color(c) == ColorWhite {
			table[markedWhiteCode] = Marked(ColorWhite)
			continue
		}
		table[code|markedBit] = Marked(Color(c))
	}
	return table
}

// Encode packs s into a single byte in [0, 16). The mapping is bijective over
// valid states. Invalid states panic.
func (s State) Encode() uint8 {
	if !s.Valid() {
		panic(fmt.Sprintf("life: encoding invalid state %+v", s))
	}
	if !s.Alive {
		return 0
	}
	if !s.Marked {
		return colorCodes[s.Color]
	}
	if s.Color == ColorWhite {
		return markedWhiteCode
	}
	return colorCodes[s.Color] | markedBit
}

// DecodeState is the inverse of State.Encode.
func DecodeState(v uint8) (State, error) {
	if int(v) >= len(decodeTable) || !decodeTable[v].Valid() {
		return Dead, errgo.WithCausef(nil, ErrInvalidCellState, "no cell state encodes as %d", v)
	}
	return decodeTable[v], nil
}

// ColorSet is an ordered, duplicate-free set of colors. Index 0 is the
// default color. The zero value is empty and rejected by LoadRulePack.
type ColorSet struct {
	colors []Color
}

// NewColorSet builds a color set in the given order.
func NewColorSet(colors ...Color) (ColorSet, error) {
	if len(colors) == 0 {
		return ColorSet{}, invalidRules("empty color set")
	}
	var seen [numColors]bool
	for _, c := range colors {
		if !c.Valid() {
			return ColorSet{}, errgo.WithCausef(nil, ErrUnknownColor, "unknown color %d in color set", uint8(c))
		}
		if seen[c] {
			return ColorSet{}, invalidRules("duplicate color %s in color set", c)
		}
		seen[c] = true
	}
	return ColorSet{colors: append([]Color(nil), colors...)}, nil
}

// ParseColorSet builds a color set from color names.
func ParseColorSet(names []string) (ColorSet, error) {
	colors := make([]Color, 0, len(names))
	for _, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return ColorSet{}, errgo.Mask(err, errgo.Any)
		}
		colors = append(colors, c)
	}
	return NewColorSet(colors...)
}

// FullColorSet contains every color in enumeration order, white first.
func FullColorSet() ColorSet {
	colors := make([]Color, numColors)
	for i := range colors {
		colors[i] = Color(i)
	}
	return ColorSet{colors: colors}
}

// Len reports the number of colors in the set.
func (s ColorSet) Len() int { return len(s.colors) }

// At returns the color at index i.
func (s ColorSet) At(i int) Color { return s.colors[i] }

// Default returns the set's base color.
func (s ColorSet) Default() Color {
	if len(s.colors) == 0 {
		return ColorWhite
	}
	return s.colors[0]
}

// Index returns the position of c in the set.
func (s ColorSet) Index(c Color) (int, bool) {
	for i, sc := range s.colors {
		if sc == c {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether c belongs to the set.
func (s ColorSet) Contains(c Color) bool {
	_, ok := s.Index(c)
	return ok
}

// Colors returns a copy of the ordered colors.
func (s ColorSet) Colors() []Color { return append([]Color(nil), s.colors...) }

// Names returns the color names in order.
func (s ColorSet) Names() []string {
	names := make([]string, len(s.colors))
	for i, c := range s.colors {
		names[i] = c.String()
	}
	return names
}
