package viz

import (
	"github.com/guptarohit/asciigraph"
)

type ChartOptions struct {
	Width   int
	Height  int
	Caption string
}

func (o ChartOptions) asciigraph() []asciigraph.Option {
	opts := []asciigraph.Option{asciigraph.Precision(1)}
	if o.Width > 0 {
		opts = append(opts, asciigraph.Width(o.Width))
	}
	if o.Height > 0 {
		opts = append(opts, asciigraph.Height(o.Height))
	}
	if o.Caption != "" {
		opts = append(opts, asciigraph.Caption(o.Caption))
	}
	return opts
}

// Plot draws a single series. Empty input yields an empty string.
func Plot(data []float64, o ChartOptions) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data, o.asciigraph()...)
}

// PlotMany overlays several series on shared axes, e.g. emitted power
// against the absorbed-power line. Empty series are dropped.
func PlotMany(series [][]float64, o ChartOptions) string {
	kept := make([][]float64, 0, len(series))
	for _, s := range series {
		if len(s) > 0 {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Blue, asciigraph.Green, asciigraph.Yellow}
	used := make([]asciigraph.AnsiColor, len(kept))
	for i := range kept {
		used[i] = colors[i%len(colors)]
	}
	opts := append(o.asciigraph(), asciigraph.SeriesColors(used...))
	return asciigraph.PlotMany(kept, opts...)
}
