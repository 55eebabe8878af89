package metrics

import "github.com/san-kum/flipsort/internal/sorting"

// Inversions tracks the number of out-of-order pairs in the latest step.
type Inversions struct {
	last int
}

func NewInversions() *Inversions { return &Inversions{} }

func (v *Inversions) Name() string { return "inversions" }

func (v *Inversions) Observe(step sorting.Step) {
	v.last = CountInversions(step.Items)
}

func (v *Inversions) Value() float64 { return float64(v.last) }
func (v *Inversions) Reset()         { v.last = 0 }

// CountInversions counts pairs i < j with items[i].Value > items[j].Value.
func CountInversions(items []sorting.Item) int {
	n := 0
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if items[i].Value > items[j].Value {
				n++
			}
		}
	}
	return n
}

// Curve returns the inversion count of every step, in trace order.
func Curve(steps []sorting.Step) []float64 {
	out := make([]float64, len(steps))
	for i, s := range steps {
		out[i] = float64(CountInversions(s.Items))
	}
	return out
}
