package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/flipsort/internal/sorting"
)

// TraceToSVG draws a trace as a grid: one row per step, one column per
// position. Cells are shaded by value, highlighted cells are outlined, and a
// polyline per item id tracks its position through the trace.
func TraceToSVG(steps []sorting.Step, cell float64) string {
	if len(steps) == 0 || len(steps[0].Items) == 0 {
		return ""
	}
	if cell <= 0 {
		cell = 16
	}

	cols := len(steps[0].Items)
	width := float64(cols) * cell
	height := float64(len(steps)) * cell

	lo, hi := steps[0].Items[0].Value, steps[0].Items[0].Value
	for _, it := range steps[0].Items {
		lo = min(lo, it.Value)
		hi = max(hi, it.Value)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="none">
`, width, height, width, height))

	for row, step := range steps {
		for col, it := range step.Items {
			shade := 40 + (it.Value-lo)*200/span
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#00%02x%02x"/>
`, float64(col)*cell, float64(row)*cell, cell, cell, shade, shade))
		}
	}
	sb.WriteString("</g>\n<g fill=\"none\" stroke=\"#ff00ff\" stroke-width=\"1.5\">\n")

	for row, step := range steps {
		for col, it := range step.Items {
			if step.Highlighted(it.ID) {
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(col)*cell+0.75, float64(row)*cell+0.75, cell-1.5, cell-1.5))
			}
		}
	}
	sb.WriteString("</g>\n<g fill=\"none\" stroke=\"#ffffff\" stroke-opacity=\"0.5\" stroke-width=\"1\">\n")

	for _, it := range steps[0].Items {
		sb.WriteString(`<polyline data-id="` + fmt.Sprint(it.ID) + `" points="`)
		for row, step := range steps {
			col := position(step.Items, it.ID)
			if col < 0 {
				continue
			}
			if row > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", float64(col)*cell+cell/2, float64(row)*cell+cell/2))
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func position(items []sorting.Item, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
