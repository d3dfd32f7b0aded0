package trace

import "github.com/katalvlaran/algostep/stepper"

// Cursor walks a run forward and backward.
//
// Position counts the snapshots delivered so far; the current snapshot is
// number Position (1-based). Prev never buffers: it rebuilds the stepper from
// the factory and advances it Position-1 times.
type Cursor[S any] struct {
	factory Factory[S]
	live    stepper.Stepper[S]
	cur     S
	pos     int
	done    bool
}

// NewCursor returns a cursor positioned before the first snapshot.
func NewCursor[S any](f Factory[S]) *Cursor[S] {
	return &Cursor[S]{factory: f, live: f()}
}

// Next delivers the following snapshot, or false once the run is exhausted.
func (c *Cursor[S]) Next() (S, bool) {
	if c.done {
		var zero S
		return zero, false
	}
	s, ok := c.live.Advance()
	if !ok {
		c.done = true
		var zero S
		return zero, false
	}
	c.cur = s
	c.pos++

	return s, true
}

// Prev steps back one snapshot. It returns false, leaving the cursor
// unchanged, when there is no earlier snapshot.
func (c *Cursor[S]) Prev() (S, bool) {
	if c.pos <= 1 {
		var zero S
		return zero, false
	}
	target := c.pos - 1
	c.Reset()
	for c.pos < target {
		c.Next()
	}

	return c.cur, true
}

// Reset rewinds to before the first snapshot.
func (c *Cursor[S]) Reset() {
	var zero S
	c.live = c.factory()
	c.cur, c.pos, c.done = zero, 0, false
}

// Current returns the snapshot last delivered.
func (c *Cursor[S]) Current() (S, bool) { return c.cur, c.pos > 0 }

// Position reports how many snapshots have been delivered.
func (c *Cursor[S]) Position() int { return c.pos }

// Done reports whether Next has run past the terminal snapshot.
func (c *Cursor[S]) Done() bool { return c.done }
