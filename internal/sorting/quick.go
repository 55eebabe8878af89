package sorting

import (
	"fmt"
	"iter"
)

// Quick partitions around the rightmost item of each range (Lomuto scheme)
// and recurses into the left range before the right one.
func Quick(items []Item) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		w := newWorkspace(items)

		if !yield(w.step("Starting quick sort. Selecting pivots and recursively partitioning the array.")) {
			return
		}
		if !quickRange(w, 0, w.len()-1, yield) {
			return
		}
		yield(w.step(completeDescription))
	}
}

// quickRange sorts w[left..right] and reports false once the consumer has
// stopped pulling steps.
func quickRange(w *workspace, left, right int, yield func(Step) bool) bool {
	if left >= right {
		return true
	}

	pivot, ok := w.at(right)
	if !ok {
		return true
	}
	i := left - 1

	if !yield(w.step(fmt.Sprintf("Choosing pivot %d at position %d.", pivot.Value, right), pivot.ID)) {
		return false
	}

	for j := left; j < right; j++ {
		current, ok := w.at(j)
		if !ok {
			continue
		}

		if !yield(w.step(fmt.Sprintf(quickCompare, current.Value, pivot.Value), current.ID, pivot.ID)) {
			return false
		}

		if current.Value < pivot.Value {
			i++
			if i != j {
				a, _ := w.at(i)
				w.swap(i, j)
				if !yield(w.step(fmt.Sprintf("Swapped %d with %d because %d < pivot %d.", current.Value, a.Value, current.Value, pivot.Value), a.ID, current.ID)) {
					return false
				}
			}
		}
	}

	target := i + 1
	if target != right {
		a, _ := w.at(target)
		w.swap(target, right)
		if !yield(w.step(fmt.Sprintf("Moved pivot %d to its final position.", pivot.Value), a.ID, pivot.ID)) {
			return false
		}
	}

	if !yield(w.step(fmt.Sprintf("Pivot %d is now in the correct position.", pivot.Value), pivot.ID)) {
		return false
	}

	if !quickRange(w, left, target-1, yield) {
		return false
	}
	return quickRange(w, target+1, right, yield)
}
