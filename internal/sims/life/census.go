package life

// Census summarizes the committed generation.
type Census struct {
	Live     int
	Marked   int
	PerColor map[Color]int
}

// LiveCount returns the number of live cells, marked ones included.
func (l *Life) LiveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, s := range l.buf.frontCells() {
		if s.Alive {
			n++
		}
	}
	return n
}

// Census counts live cells by color; marked cells count toward their color.
func (l *Life) Census() Census {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := Census{PerColor: make(map[Color]int)}
	for _, s := range l.buf.frontCells() {
		if !s.Alive {
			continue
		}
		c.Live++
		if s.Marked {
			c.Marked++
		}
		c.PerColor[s.Color]++
	}
	return c
}
