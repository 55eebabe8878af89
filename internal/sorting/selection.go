package sorting

import (
	"fmt"
	"iter"
)

// Selection scans the unsorted suffix for its minimum and swaps it into the
// front of that suffix, one pass per position.
func Selection(items []Item) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		w := newWorkspace(items)

		if !yield(w.step("Starting selection sort. Will repeatedly select the minimum remaining element and place it in its correct position.")) {
			return
		}

		n := w.len()
		for i := 0; i < n-1; i++ {
			minIndex := i

			first, ok := w.at(i)
			if !ok {
				continue
			}
			if !yield(w.step(fmt.Sprintf("Starting a new pass. Assuming element %d is the current minimum.", first.Value), first.ID)) {
				return
			}

			for j := i + 1; j < n; j++ {
				current, ok := w.at(j)
				if !ok {
					continue
				}
				currentMin, ok := w.at(minIndex)
				if !ok {
					continue
				}

				if !yield(w.step(fmt.Sprintf(selectionCompare, current.Value, currentMin.Value), current.ID, currentMin.ID)) {
					return
				}

				if current.Value < currentMin.Value {
					minIndex = j
					if !yield(w.step(fmt.Sprintf("Found a new minimum: %d.", current.Value), current.ID)) {
						return
					}
				}
			}

			if minIndex != i {
				prev, _ := w.at(i)
				next, _ := w.at(minIndex)
				w.swap(i, minIndex)
				if !yield(w.step(fmt.Sprintf("Swapped %d with new minimum %d.", prev.Value, next.Value), prev.ID, next.ID)) {
					return
				}
			} else {
				if !yield(w.step(fmt.Sprintf("No smaller element found. %d remains in place.", first.Value), first.ID)) {
					return
				}
			}
		}

		yield(w.step(completeDescription))
	}
}
