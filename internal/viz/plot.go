package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flipsort/internal/metrics"
	"github.com/san-kum/flipsort/internal/sorting"
)

// Plot charts the inversions remaining after every step of a trace.
func Plot(steps []sorting.Step, width, height int, caption string) string {
	if len(steps) == 0 {
		return "no data to plot"
	}
	curve := metrics.Curve(steps)
	if len(curve) == 1 {
		curve = append(curve, curve[0])
	}
	return asciigraph.Plot(curve,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
