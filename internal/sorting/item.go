// Package sorting runs classic comparison sorts over a small sequence of
// identity-bearing items and yields every intermediate state as a Step.
package sorting

// Item is one element being sorted. ID is assigned once when the input is
// built and never changes; algorithms only move items between positions.
type Item struct {
	ID    int `json:"id" yaml:"id"`
	Value int `json:"value" yaml:"value"`
}

// Step is an immutable snapshot of the working sequence after one action.
type Step struct {
	Items       []Item `json:"items"`
	Highlights  []int  `json:"highlights"`
	Description string `json:"description"`
}

// NewItems builds an input sequence with ids 1..n in the order given.
func NewItems(values ...int) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{ID: i + 1, Value: v}
	}
	return items
}

func (s Step) Clone() Step {
	h := make([]int, len(s.Highlights))
	copy(h, s.Highlights)
	return Step{
		Items:       cloneItems(s.Items),
		Highlights:  h,
		Description: s.Description,
	}
}

func (s Step) Values() []int {
	values := make([]int, len(s.Items))
	for i, it := range s.Items {
		values[i] = it.Value
	}
	return values
}

func (s Step) IDs() []int {
	ids := make([]int, len(s.Items))
	for i, it := range s.Items {
		ids[i] = it.ID
	}
	return ids
}

// Highlighted reports whether id is one of the step's highlighted items.
func (s Step) Highlighted(id int) bool {
	for _, h := range s.Highlights {
		if h == id {
			return true
		}
	}
	return false
}

// IsSorted reports whether items are in non-decreasing value order.
func IsSorted(items []Item) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1].Value > items[i].Value {
			return false
		}
	}
	return true
}

func cloneItems(items []Item) []Item {
	c := make([]Item, len(items))
	copy(c, items)
	return c
}
