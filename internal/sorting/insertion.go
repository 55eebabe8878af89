package sorting

import (
	"fmt"
	"iter"
)

// Insertion grows a sorted prefix by relocating each next item (the key) to
// its place in one move. The scan that finds the target is not traced; only
// its outcome is.
func Insertion(items []Item) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		w := newWorkspace(items)

		if !yield(w.step("Starting insertion sort. The first element is already considered sorted.")) {
			return
		}

		for i := 1; i < w.len(); i++ {
			key, ok := w.at(i)
			if !ok {
				continue
			}

			if !yield(w.step(fmt.Sprintf("Selecting element %d at position %d. Now finding its correct position in the sorted portion.", key.Value, i), key.ID)) {
				return
			}

			j := i - 1
			for j >= 0 {
				scanned, ok := w.at(j)
				if !ok || scanned.Value <= key.Value {
					break
				}
				j--
			}

			target := j + 1
			w.move(i, target)

			var desc string
			if target == i {
				desc = fmt.Sprintf("Element %d is already in the correct position. No movement needed.", key.Value)
			} else {
				desc = fmt.Sprintf("Inserted element %d at position %d. Elements %d position(s) were shifted right.", key.Value, target, i-target)
			}
			if !yield(w.step(desc, key.ID)) {
				return
			}
		}

		yield(w.step(completeDescription))
	}
}
