package navigate

import "fmt"

// Cursor is an index into a fixed-length sequence, kept in [0, n).
type Cursor struct {
	pos int
	n   int
}

// NewCursor returns a cursor at 0 over n elements.
func NewCursor(n int) (*Cursor, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrEmptyStack, n)
	}
	return &Cursor{n: n}, nil
}

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the sequence length.
func (c *Cursor) Len() int { return c.n }

// Move shifts the cursor by delta with wraparound and returns the new position.
func (c *Cursor) Move(delta int) int {
	c.pos = Mod(c.pos+delta, c.n)
	return c.pos
}

// Mod is the Euclidean remainder: always in [0, n) for n > 0.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
