package sorting

import "iter"

// Record drains seq into a slice, in order, for consumers that need random
// access to the trace.
func Record(seq iter.Seq[Step]) []Step {
	steps := make([]Step, 0)
	for step := range seq {
		steps = append(steps, step)
	}
	return steps
}

// Run records the full trace of s over items.
func Run(s Sorter, items []Item) []Step {
	return Record(s(items))
}
