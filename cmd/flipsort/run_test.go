package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// cancelAfterFrames cancels once it has received n screen clears, one per
// drawn frame.
type cancelAfterFrames struct {
	bytes.Buffer
	n      int
	cancel context.CancelFunc
}

func (w *cancelAfterFrames) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("\033[2J")) {
		w.n--
		if w.n == 0 {
			w.cancel()
		}
	}
	return w.Buffer.Write(p)
}

func newRunCommand(t *testing.T, input string) *cobra.Command {
	t.Helper()

	configFile = ""
	dataDir = t.TempDir()
	preset = "random"
	size = 10
	seed = 42
	fps = 0
	width = 20
	theme = "minimal"
	logLevel = "error"
	live, bars, save, quiet = false, false, false, false
	t.Cleanup(func() { live, bars, save, quiet = false, false, false, false })

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&values, "values", "", "")
	if err := cmd.Flags().Set("values", input); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestRunTraceLiveInterruptedReportsMetrics(t *testing.T) {
	cmd := newRunCommand(t, "5,4,3,2,1")
	live = true
	save = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &cancelAfterFrames{n: 3, cancel: cancel}
	cmd.SetContext(ctx)
	cmd.SetOut(out)

	if err := runTrace(cmd, []string{"bubbleSort"}); err != nil {
		t.Fatalf("runTrace failed: %v", err)
	}

	got := out.String()
	if strings.Count(got, "\033[2J") != 3 {
		t.Errorf("expected 3 frames, got %d", strings.Count(got, "\033[2J"))
	}
	if !strings.Contains(got, "interrupted after 3 steps") {
		t.Errorf("expected the drawn step count, got tail %q", tail(got))
	}
	if !strings.Contains(got, "metrics:") || !strings.Contains(got, "  steps: 3\n") {
		t.Errorf("expected metrics over the drawn steps, got tail %q", tail(got))
	}
	if strings.Contains(got, "run id:") {
		t.Error("an interrupted run should not be saved")
	}
}

func TestRunTraceLiveComplete(t *testing.T) {
	cmd := newRunCommand(t, "2,1")
	live = true

	var out bytes.Buffer
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)

	if err := runTrace(cmd, []string{"insertionSort"}); err != nil {
		t.Fatalf("runTrace failed: %v", err)
	}

	got := out.String()
	if strings.Contains(got, "interrupted") {
		t.Error("a finished run should not report an interrupt")
	}
	// start, select, insert, complete
	if !strings.Contains(got, "  steps: 4\n") {
		t.Errorf("expected 4 steps, got tail %q", tail(got))
	}
}

func TestRunTracePlainSaves(t *testing.T) {
	cmd := newRunCommand(t, "3,1,2")
	save = true

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := runTrace(cmd, []string{"bubbleSort"}); err != nil {
		t.Fatalf("runTrace failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Comparing element 3 with 1.") {
		t.Error("expected one line per step")
	}
	if !strings.Contains(got, "  steps: 9\n") || !strings.Contains(got, "run id: bubbleSort_") {
		t.Errorf("unexpected output tail %q", tail(got))
	}
}

func tail(s string) string {
	if len(s) > 200 {
		return s[len(s)-200:]
	}
	return s
}
