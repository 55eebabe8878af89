package sorting

import (
	"slices"
	"testing"
)

func TestQuickDuplicates(t *testing.T) {
	input := NewItems(5, 3, 5, 1)
	steps := Run(Quick, input)
	last := steps[len(steps)-1]

	if !slices.Equal(last.Values(), []int{1, 3, 5, 5}) {
		t.Fatalf("final values = %v, want [1 3 5 5]", last.Values())
	}

	var tied []int
	for _, it := range last.Items {
		if it.Value == 5 {
			tied = append(tied, it.ID)
		}
	}
	slices.Sort(tied)
	if !slices.Equal(tied, []int{1, 3}) {
		t.Errorf("ids holding 5 = %v, want 1 and 3 in some order", tied)
	}
}

func TestQuickPartitionSteps(t *testing.T) {
	steps := Run(Quick, NewItems(3, 1, 2))

	want := []string{
		"Starting quick sort. Selecting pivots and recursively partitioning the array.",
		"Choosing pivot 2 at position 2.",
		"Comparing 3 with pivot 2.",
		"Comparing 1 with pivot 2.",
		"Swapped 1 with 3 because 1 < pivot 2.",
		"Moved pivot 2 to its final position.",
		"Pivot 2 is now in the correct position.",
		completeDescription,
	}
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i, desc := range want {
		if steps[i].Description != desc {
			t.Errorf("step %d: %q, want %q", i, steps[i].Description, desc)
		}
	}

	if !slices.Equal(steps[1].Highlights, []int{3}) {
		t.Errorf("pivot highlights = %v, want [3]", steps[1].Highlights)
	}
	if !slices.Equal(steps[4].Highlights, []int{1, 2}) {
		t.Errorf("swap highlights = %v, want [1 2]", steps[4].Highlights)
	}
	if !slices.Equal(steps[4].Values(), []int{1, 3, 2}) {
		t.Errorf("after swap values = %v", steps[4].Values())
	}
	if !slices.Equal(steps[5].Highlights, []int{1, 3}) {
		t.Errorf("pivot move highlights = %v, want [1 3]", steps[5].Highlights)
	}
	if !slices.Equal(steps[6].IDs(), []int{2, 3, 1}) {
		t.Errorf("final ids = %v, want [2 3 1]", steps[6].IDs())
	}
}

func TestQuickNoPivotMoveWhenInPlace(t *testing.T) {
	steps := Run(Quick, NewItems(1, 2))

	for _, s := range steps {
		if s.Description == "Moved pivot 2 to its final position." {
			t.Error("pivot already in place must not be moved")
		}
	}
	if len(steps) != 5 {
		t.Errorf("expected 5 steps, got %d", len(steps))
	}
}
