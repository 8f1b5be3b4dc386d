package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dynarray/internal/script"
)

// GrowthPlot charts count and capacity across a trace, starting from the
// initial snapshot. It returns "" for a trace with no steps.
func GrowthPlot(trace *script.Trace, height, width int) string {
	if len(trace.Steps) == 0 {
		return ""
	}

	counts := make([]float64, 0, len(trace.Steps)+1)
	caps := make([]float64, 0, len(trace.Steps)+1)
	counts = append(counts, float64(trace.Initial.Count))
	caps = append(caps, float64(trace.Initial.Cap))
	for _, step := range trace.Steps {
		counts = append(counts, float64(step.After.Count))
		caps = append(caps, float64(step.After.Cap))
	}

	return asciigraph.PlotMany([][]float64{caps, counts},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption("capacity (green) vs count (blue) per step"),
	)
}
