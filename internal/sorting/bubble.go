package sorting

import (
	"fmt"
	"iter"
)

// Bubble compares adjacent pairs and swaps them when out of order. A pass
// without swaps ends the sort early.
func Bubble(items []Item) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		w := newWorkspace(items)

		if !yield(w.step("Starting bubble sort. Will repeatedly swap adjacent elements if they are out of order.")) {
			return
		}

		n := w.len()
		for i := 0; i < n-1; i++ {
			swapped := false

			for j := 0; j < n-i-1; j++ {
				current, ok := w.at(j)
				if !ok {
					continue
				}
				next, ok := w.at(j + 1)
				if !ok {
					continue
				}

				if !yield(w.step(fmt.Sprintf(bubbleCompare, current.Value, next.Value), current.ID, next.ID)) {
					return
				}

				if current.Value > next.Value {
					w.swap(j, j+1)
					swapped = true
					if !yield(w.step(fmt.Sprintf("Swapped element %d with %d.", next.Value, current.Value), next.ID, current.ID)) {
						return
					}
				} else {
					if !yield(w.step(fmt.Sprintf("No swap needed; %d is <= %d.", current.Value, next.Value), current.ID, next.ID)) {
						return
					}
				}
			}

			if !swapped {
				if !yield(w.step("No swaps in this pass, array is now sorted.")) {
					return
				}
				break
			}
		}

		yield(w.step(completeDescription))
	}
}
