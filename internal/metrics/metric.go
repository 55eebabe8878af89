// Package metrics accumulates statistics over a step trace.
package metrics

import "github.com/san-kum/flipsort/internal/sorting"

type Metric interface {
	Name() string
	Observe(step sorting.Step)
	Value() float64
	Reset()
}

func Defaults() []Metric {
	return []Metric{
		NewStepCount(),
		NewComparisons(),
		NewSwaps(),
		NewMoves(),
		NewInversions(),
	}
}

// Collect resets ms, feeds every step through them and returns the values by
// name.
func Collect(steps []sorting.Step, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Defaults()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range steps {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
