package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/flipsort/internal/sorting"
	"github.com/san-kum/flipsort/internal/viz"
)

func TestLiveRendererDrawsEveryStep(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Insertion Sort", 0, 20, viz.ThemeMinimal)

	input := sorting.NewItems(3, 2, 1)
	n := r.Play(sorting.Insertion(input), nil)

	want := len(sorting.Run(sorting.Insertion, input))
	if n != want {
		t.Errorf("expected %d frames, got %d", want, n)
	}

	out := buf.String()
	if strings.Count(out, clearScreen) != want {
		t.Errorf("expected %d screen clears, got %d", want, strings.Count(out, clearScreen))
	}
	if !strings.HasPrefix(out, hideCursor) || !strings.HasSuffix(out, showCursor) {
		t.Error("cursor should be hidden while playing and restored after")
	}
	if !strings.Contains(out, "Sorting complete!") {
		t.Error("missing completion frame")
	}
}

func TestLiveRendererStopsEarly(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Bubble Sort", 0, 20, viz.ThemeMinimal)

	var drawn []sorting.Step
	r.OnFrame = func(s sorting.Step) { drawn = append(drawn, s) }

	frames := 0
	n := r.Play(sorting.Bubble(sorting.NewItems(5, 4, 3, 2, 1)), func() bool {
		frames++
		return frames > 2
	})
	if n != 2 {
		t.Errorf("expected 2 frames before stop, got %d", n)
	}
	// the step pulled when stop fired was never drawn
	if len(drawn) != n {
		t.Errorf("OnFrame saw %d steps for %d frames", len(drawn), n)
	}
	if strings.Count(buf.String(), clearScreen) != n {
		t.Errorf("expected %d screen clears, got %d", n, strings.Count(buf.String(), clearScreen))
	}
	if !strings.HasSuffix(buf.String(), showCursor) {
		t.Error("cursor should be restored after an early stop")
	}
}

func TestLiveRendererPaces(t *testing.T) {
	var slept []time.Duration
	r := NewLiveRenderer(&bytes.Buffer{}, "Quick Sort", 10, 20, viz.ThemeMinimal)
	r.sleep = func(d time.Duration) { slept = append(slept, d) }

	n := r.Play(sorting.Quick(sorting.NewItems(2, 1)), nil)
	if n < 2 {
		t.Fatalf("expected several frames, got %d", n)
	}
	if len(slept) != n-1 {
		t.Errorf("expected a pause before every frame but the first, got %d for %d frames", len(slept), n)
	}
	for _, d := range slept {
		if d <= 0 || d > 100*time.Millisecond {
			t.Errorf("unexpected pause %v at 10 fps", d)
		}
	}
}
