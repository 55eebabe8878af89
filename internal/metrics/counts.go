package metrics

import "github.com/san-kum/flipsort/internal/sorting"

type StepCount struct {
	n int
}

func NewStepCount() *StepCount { return &StepCount{} }

func (s *StepCount) Name() string              { return "steps" }
func (s *StepCount) Observe(step sorting.Step) { s.n++ }
func (s *StepCount) Value() float64            { return float64(s.n) }
func (s *StepCount) Reset()                    { s.n = 0 }

// Comparisons counts traced comparisons. Insertion sort's position scan is
// not traced and so is not counted.
type Comparisons struct {
	n int
}

func NewComparisons() *Comparisons { return &Comparisons{} }

func (c *Comparisons) Name() string { return "comparisons" }

func (c *Comparisons) Observe(step sorting.Step) {
	if step.IsComparison() {
		c.n++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.n) }
func (c *Comparisons) Reset()         { c.n = 0 }

// Swaps counts steps that exchanged exactly two items.
type Swaps struct {
	prev []int
	n    int
}

func NewSwaps() *Swaps { return &Swaps{} }

func (s *Swaps) Name() string { return "swaps" }

func (s *Swaps) Observe(step sorting.Step) {
	ids := step.IDs()
	if s.prev != nil && len(ids) == len(s.prev) && displaced(s.prev, ids) == 2 {
		s.n++
	}
	s.prev = ids
}

func (s *Swaps) Value() float64 { return float64(s.n) }

func (s *Swaps) Reset() {
	s.prev = nil
	s.n = 0
}

// Moves counts every change of position of any item between consecutive
// steps.
type Moves struct {
	prev []int
	n    int
}

func NewMoves() *Moves { return &Moves{} }

func (m *Moves) Name() string { return "moves" }

func (m *Moves) Observe(step sorting.Step) {
	ids := step.IDs()
	if m.prev != nil && len(ids) == len(m.prev) {
		m.n += displaced(m.prev, ids)
	}
	m.prev = ids
}

func (m *Moves) Value() float64 { return float64(m.n) }

func (m *Moves) Reset() {
	m.prev = nil
	m.n = 0
}

func displaced(a, b []int) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
