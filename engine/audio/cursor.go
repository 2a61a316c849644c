package audio

// Cursor walks a sample buffer one sample per rendered frame. It only moves
// forward and stops at the end; it never wraps.
type Cursor struct {
	samples []int16
	pos     int
}

func NewCursor(samples []int16) *Cursor { return &Cursor{samples: samples} }

// Next returns the sample under the cursor and advances past it. ok is false
// once the cursor has reached the end of the buffer.
func (c *Cursor) Next() (s int16, ok bool) {
	if c.pos >= len(c.samples) {
		return 0, false
	}
	s = c.samples[c.pos]
	c.pos++
	return s, true
}

// Done reports whether every sample has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.samples) }

func (c *Cursor) Pos() int { return c.pos }
func (c *Cursor) Len() int { return len(c.samples) }
