package sorting

import (
	"slices"
	"strings"
	"testing"
)

func TestSelectionSingleElement(t *testing.T) {
	steps := Run(Selection, []Item{{ID: 9, Value: 7}})

	if len(steps) != 2 {
		t.Fatalf("expected start and completion steps only, got %d", len(steps))
	}
	if !strings.HasPrefix(steps[0].Description, "Starting selection sort.") {
		t.Errorf("unexpected start step %q", steps[0].Description)
	}
	if steps[1].Description != completeDescription {
		t.Errorf("unexpected final step %q", steps[1].Description)
	}
	if steps[1].Items[0].ID != 9 {
		t.Errorf("expected id 9, got %d", steps[1].Items[0].ID)
	}
}

func TestSelectionSteps(t *testing.T) {
	steps := Run(Selection, NewItems(2, 3, 1))

	want := []string{
		"Starting selection sort. Will repeatedly select the minimum remaining element and place it in its correct position.",
		"Starting a new pass. Assuming element 2 is the current minimum.",
		"Comparing 3 with current minimum 2.",
		"Comparing 1 with current minimum 2.",
		"Found a new minimum: 1.",
		"Swapped 2 with new minimum 1.",
		"Starting a new pass. Assuming element 3 is the current minimum.",
		"Comparing 2 with current minimum 3.",
		"Found a new minimum: 2.",
		"Swapped 3 with new minimum 2.",
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

	if !slices.Equal(steps[4].Highlights, []int{3}) {
		t.Errorf("new minimum highlights = %v, want [3]", steps[4].Highlights)
	}
	if !slices.Equal(steps[5].Highlights, []int{1, 3}) {
		t.Errorf("swap highlights = %v, want [1 3]", steps[5].Highlights)
	}
	if !slices.Equal(steps[5].Values(), []int{1, 3, 2}) {
		t.Errorf("after first swap values = %v", steps[5].Values())
	}
}

func TestSelectionRemainsInPlace(t *testing.T) {
	steps := Run(Selection, NewItems(1, 2))

	found := false
	for _, s := range steps {
		if s.Description == "No smaller element found. 1 remains in place." {
			found = true
			if !slices.Equal(s.Highlights, []int{1}) {
				t.Errorf("highlights = %v, want [1]", s.Highlights)
			}
		}
	}
	if !found {
		t.Error("expected a remains-in-place step")
	}
}

func TestSelectionTieKeepsFirstMinimum(t *testing.T) {
	steps := Run(Selection, NewItems(1, 1))

	for _, s := range steps {
		if strings.HasPrefix(s.Description, "Found a new minimum") {
			t.Errorf("equal value must not replace the current minimum: %q", s.Description)
		}
	}
	if steps[len(steps)-2].Description != "No smaller element found. 1 remains in place." {
		t.Errorf("unexpected pass outcome %q", steps[len(steps)-2].Description)
	}
}
