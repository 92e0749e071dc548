package parser

// Cursor is a (position, remaining length) view over the input buffer. It is
// threaded by reference through every production; productions that consume
// input advance it in place, and any combinator that fails after partial
// consumption restores it atomically via Mark/ResetTo so an enclosing
// alternation can retry over the original bytes.
type Cursor struct {
	data []byte
	off  int
	high int
}

// NewCursor returns a cursor positioned at the start of data. The cursor
// aliases data; it never writes to it.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// EOF reports whether the entire input has been consumed.
func (c *Cursor) EOF() bool {
	return c.off == len(c.data)
}

// Len returns the total input size in bytes.
func (c *Cursor) Len() int {
	return len(c.data)
}

// HighWater returns the furthest position any production has consumed to,
// regardless of later ResetTo calls. When a parse fails and the high-water
// mark sits at the end of the input, some production ran out of bytes
// mid-match, which distinguishes a truncated table from one that simply
// does not follow the grammar.
func (c *Cursor) HighWater() int {
	return c.high
}

// Mark captures the current position for a later ResetTo.
func (c *Cursor) Mark() int {
	return c.off
}

// ResetTo restores the cursor to a position previously captured with Mark.
func (c *Cursor) ResetTo(mark int) {
	c.off = mark
}

// Peek returns the next byte without consuming it. The second return value
// is false at end of input.
func (c *Cursor) Peek() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.data[c.off], true
}

// PeekN returns the next n bytes without consuming them. Productions that
// validate a fixed-width span before accepting it use this so a rejected
// span never counts as consumed. Returns false when fewer than n bytes
// remain.
func (c *Cursor) PeekN(n int) ([]byte, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	return c.data[c.off : c.off+n], true
}

// ReadByte consumes and returns the next byte. The second return value is
// false at end of input, in which case the cursor is unchanged.
func (c *Cursor) ReadByte() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	b := c.data[c.off]
	c.off++
	if c.off > c.high {
		c.high = c.off
	}
	return b, true
}

// Take consumes n bytes and returns them as a view into the input buffer.
// Callers that keep the bytes must copy them (the allocator does this when
// building a node payload). Returns false without consuming anything when
// fewer than n bytes remain.
func (c *Cursor) Take(n int) ([]byte, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	span := c.data[c.off : c.off+n]
	c.off += n
	if c.off > c.high {
		c.high = c.off
	}
	return span, true
}
