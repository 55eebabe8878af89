package sorting

import (
	"iter"
	"strings"
)

// Sorter turns an input sequence into a lazy trace. The input is copied when
// iteration starts and is never modified. Each range over the returned
// sequence is an independent run.
type Sorter func(items []Item) iter.Seq[Step]

const completeDescription = "Sorting complete! All elements are now in their correct positions."

// ComparePrefix starts the description of every step that compares two items.
const ComparePrefix = "Comparing "

const (
	bubbleCompare    = ComparePrefix + "element %d with %d."
	selectionCompare = ComparePrefix + "%d with current minimum %d."
	quickCompare     = ComparePrefix + "%d with pivot %d."
)

// IsComparison reports whether the step narrates a comparison of its two
// highlighted items.
func (s Step) IsComparison() bool {
	return len(s.Highlights) == 2 && strings.HasPrefix(s.Description, ComparePrefix)
}

// Cursor pulls steps from a trace one at a time. The algorithm is suspended
// between calls to Next and resumes where it stopped. A Cursor is single-use.
type Cursor struct {
	next   func() (Step, bool)
	stop   func()
	pulled int
	done   bool
}

func NewCursor(seq iter.Seq[Step]) *Cursor {
	next, stop := iter.Pull(seq)
	return &Cursor{next: next, stop: stop}
}

// Next returns the next step, or false once the trace is exhausted or the
// cursor was stopped.
func (c *Cursor) Next() (Step, bool) {
	if c.done {
		return Step{}, false
	}
	step, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
		return Step{}, false
	}
	c.pulled++
	return step, true
}

// Stop abandons the run. It is safe to call more than once.
func (c *Cursor) Stop() {
	c.done = true
	c.stop()
}

func (c *Cursor) Pulled() int { return c.pulled }
func (c *Cursor) Done() bool  { return c.done }
