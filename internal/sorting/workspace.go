package sorting

import (
	"fmt"
	"log/slog"
	"slices"
)

// strictBounds turns a skipped out-of-range read into a panic. Tests enable it
// so a logic error cannot hide behind the skip.
var strictBounds = false

// onSnapshot, when set, runs every time an algorithm takes a snapshot.
var onSnapshot func()

// workspace is the algorithm-owned copy of the input.
type workspace struct {
	arr []Item
}

func newWorkspace(items []Item) *workspace {
	return &workspace{arr: cloneItems(items)}
}

func (w *workspace) len() int { return len(w.arr) }

func (w *workspace) at(i int) (Item, bool) {
	if i < 0 || i >= len(w.arr) {
		if strictBounds {
			panic(fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(w.arr)))
		}
		slog.Debug("sorting: skipped out-of-range slot", "index", i, "len", len(w.arr))
		return Item{}, false
	}
	return w.arr[i], true
}

func (w *workspace) swap(i, j int) {
	w.arr[i], w.arr[j] = w.arr[j], w.arr[i]
}

// move removes the item at from and reinserts it at to, shifting the items in
// between by one position.
func (w *workspace) move(from, to int) {
	if from == to {
		return
	}
	it := w.arr[from]
	w.arr = slices.Delete(w.arr, from, from+1)
	w.arr = slices.Insert(w.arr, to, it)
}

func (w *workspace) step(description string, highlights ...int) Step {
	if onSnapshot != nil {
		onSnapshot()
	}
	h := make([]int, len(highlights))
	copy(h, highlights)
	return Step{
		Items:       cloneItems(w.arr),
		Highlights:  h,
		Description: description,
	}
}
