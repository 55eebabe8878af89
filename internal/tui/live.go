package tui

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/san-kum/flipsort/internal/sorting"
	"github.com/san-kum/flipsort/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the terminal once per step at a fixed frame rate. It
// consumes the trace lazily, so an interrupted run stops the algorithm too.
type LiveRenderer struct {
	w         io.Writer
	label     string
	frameRate int
	width     int
	styles    viz.Styles
	lastFrame time.Time
	sleep     func(time.Duration)

	// OnFrame, when set, is called with each step after it is drawn.
	OnFrame func(step sorting.Step)
}

// NewLiveRenderer draws to w. A frameRate of 0 or less draws as fast as
// steps arrive.
func NewLiveRenderer(w io.Writer, label string, frameRate, width int, theme viz.Theme) *LiveRenderer {
	return &LiveRenderer{
		w:         w,
		label:     label,
		frameRate: frameRate,
		width:     width,
		styles:    viz.NewStyles(theme),
		sleep:     time.Sleep,
	}
}

// Play draws every step of seq and returns how many were drawn. It stops
// early when stop reports true.
func (r *LiveRenderer) Play(seq iter.Seq[sorting.Step], stop func() bool) int {
	r.Start()
	defer r.Stop()

	n := 0
	for step := range seq {
		if stop != nil && stop() {
			break
		}
		r.wait()
		r.render(step, n)
		n++
		if r.OnFrame != nil {
			r.OnFrame(step)
		}
	}
	return n
}

func (r *LiveRenderer) wait() {
	if r.frameRate <= 0 {
		return
	}
	frame := time.Second / time.Duration(r.frameRate)
	if !r.lastFrame.IsZero() {
		if elapsed := time.Since(r.lastFrame); elapsed < frame {
			r.sleep(frame - elapsed)
		}
	}
	r.lastFrame = time.Now()
}

func (r *LiveRenderer) render(step sorting.Step, index int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(viz.Frame(r.label, step, index, 0, r.width, r.styles))
	b.WriteString("\n")
	fmt.Fprint(r.w, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.w, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.w, showCursor) }
