package life

import (
	"io"
	"strings"

	errgo "gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"
)

const hexDigits = "0123456789abcdef"

// snapshotDoc is the persisted grid: the dimensions, the active rule pack and
// the committed cells as dense row-major rows of encoded states, one hex digit
// per cell.
type snapshotDoc struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Generation uint32      `yaml:"generation"`
	Seed       int64       `yaml:"seed"`
	Rules      rulePackDoc `yaml:"rules"`
	Rows       []string    `yaml:"rows"`
}

// SaveSnapshot writes the committed generation and active rule pack to w.
func (l *Life) SaveSnapshot(w io.Writer) error {
	l.mu.Lock()
	doc := snapshotDoc{
		Width:      l.buf.w,
		Height:     l.buf.h,
		Generation: l.generation,
		Seed:       l.seed,
		Rules:      l.pack.doc(),
		Rows:       make([]string, l.buf.h),
	}
	cells := l.buf.frontCells()
	var row strings.Builder
	for y := 0; y < l.buf.h; y++ {
		row.Reset()
		for _, s := range cells[y*l.buf.w : (y+1)*l.buf.w] {
			row.WriteByte(hexDigits[s.Encode()])
		}
		doc.Rows[y] = row.String()
	}
	l.mu.Unlock()

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errgo.Mask(err)
	}
	if _, err := w.Write(data); err != nil {
		return errgo.Notef(err, "cannot write snapshot")
	}
	logger.Debugf("saved %dx%d snapshot at generation %d", doc.Width, doc.Height, doc.Generation)
	return nil
}

// LoadSnapshot replaces the grid, generation counter, seed and active rule
// pack with the snapshot read from r. On error the simulation is unchanged.
func (l *Life) LoadSnapshot(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errgo.Notef(err, "cannot read snapshot")
	}
	var doc snapshotDoc
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return errgo.WithCausef(err, ErrInvalidSnapshot, "cannot parse snapshot")
	}
	pack, err := doc.Rules.pack()
	if err != nil {
		return errgo.NoteMask(err, "snapshot rules", errgo.Any)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return errgo.WithCausef(nil, ErrInvalidDimensions, "snapshot size %dx%d must be positive", doc.Width, doc.Height)
	}
	// Rows must agree with the header before anything is allocated.
	if len(doc.Rows) != doc.Height {
		return errgo.WithCausef(nil, ErrInvalidSnapshot, "snapshot has %d rows, want %d", len(doc.Rows), doc.Height)
	}
	for y, row := range doc.Rows {
		if len(row) != doc.Width {
			return errgo.WithCausef(nil, ErrInvalidSnapshot, "row %d has %d cells, want %d", y, len(row), doc.Width)
		}
	}
	buf, err := NewBufferPair(doc.Width, doc.Height)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	cells := buf.frontCells()
	for y, row := range doc.Rows {
		for x := 0; x < len(row); x++ {
			code := strings.IndexByte(hexDigits, row[x])
			if code < 0 {
				return errgo.WithCausef(nil, ErrInvalidSnapshot, "row %d column %d: bad digit %q", y, x, row[x])
			}
			s, err := DecodeState(uint8(code))
			if err != nil {
				return errgo.WithCausef(err, ErrInvalidSnapshot, "row %d column %d", y, x)
			}
			cells[y*doc.Width+x] = s
		}
	}

	l.mu.Lock()
	l.installLocked(buf, doc.Generation)
	l.pack = pack
	l.seed = doc.Seed
	l.mu.Unlock()
	logger.Infof("loaded %dx%d snapshot at generation %d with %s", doc.Width, doc.Height, doc.Generation, pack)
	return nil
}
