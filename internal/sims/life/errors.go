package life

import errgo "gopkg.in/errgo.v1"

// Error kinds surfaced at the engine boundary. Callers compare with
// errgo.Cause(err).
var (
	ErrInvalidDimensions     = errgo.New("invalid grid dimensions")
	ErrOutOfBounds           = errgo.New("coordinate out of bounds")
	ErrInvalidRuleParameters = errgo.New("invalid rule parameters")
	ErrUnknownColor          = errgo.New("unknown cell color")
	ErrInvalidCellState      = errgo.New("invalid cell state")
	ErrInvalidBrush          = errgo.New("invalid brush")
	ErrInvalidSnapshot       = errgo.New("invalid snapshot")
)

func outOfBounds(x, y, w, h int) error {
	return errgo.WithCausef(nil, ErrOutOfBounds, "cell (%d,%d) outside %dx%d grid", x, y, w, h)
}

func invalidRules(format string, args ...interface{}) error {
	return errgo.WithCausef(nil, ErrInvalidRuleParameters, "invalid rule parameters: "+format, args...)
}
