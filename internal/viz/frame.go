package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/flipsort/internal/sorting"
)

const minBarWidth = 8

// Bars draws one row per item: id, value and a bar scaled so the largest
// value fills width cells. Highlighted items are marked with '>' and drawn in
// the highlight style; a sorted final state is drawn in the done style.
func Bars(step sorting.Step, width int, s Styles) string {
	if len(step.Items) == 0 {
		return s.Subtle.Render("  (empty)")
	}
	width = max(width, minBarWidth)

	lo, hi := 0, step.Items[0].Value
	for _, it := range step.Items {
		lo = min(lo, it.Value)
		hi = max(hi, it.Value)
	}
	span := hi - lo

	idWidth := len(fmt.Sprint(maxID(step.Items)))
	valWidth := 1
	for _, it := range step.Items {
		valWidth = max(valWidth, len(fmt.Sprint(it.Value)))
	}

	done := len(step.Highlights) == 0 && sorting.IsSorted(step.Items)

	var b strings.Builder
	for i, it := range step.Items {
		n := width
		if span > 0 {
			n = 1 + (it.Value-lo)*(width-1)/span
		}
		marker := " "
		style := s.Bar
		switch {
		case step.Highlighted(it.ID):
			marker = ">"
			style = s.Highlight
		case done:
			style = s.Done
		}
		label := fmt.Sprintf("%s #%-*d %*d ", marker, idWidth, it.ID, valWidth, it.Value)
		b.WriteString(style.Render(label + strings.Repeat("█", n)))
		if i < len(step.Items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Frame renders a full step: a header with the algorithm label and position,
// the bars, and the step's narration. total <= 0 means the trace length is not
// yet known.
func Frame(label string, step sorting.Step, index, total, width int, s Styles) string {
	pos := fmt.Sprintf("step %d/?", index+1)
	if total > 0 {
		pos = fmt.Sprintf("step %d/%d", index+1, total)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(label) + "  " + s.Subtle.Render(pos) + "\n\n")
	b.WriteString(Bars(step, width, s))
	b.WriteString("\n\n")
	b.WriteString(step.Description)
	return b.String()
}

// Line renders a step as a single plain line for logs and pipes.
func Line(index int, step sorting.Step) string {
	return fmt.Sprintf("%4d  %v  hl=%v  %s", index, step.Values(), step.Highlights, step.Description)
}

func maxID(items []sorting.Item) int {
	m := 0
	for _, it := range items {
		m = max(m, it.ID)
	}
	return m
}
