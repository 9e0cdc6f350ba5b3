package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/twinpal/internal/twin"
)

// PlotProportions charts the qualifying fraction against bit-length.
func PlotProportions(p twin.Proportions, width, height int) string {
	series := p.Series()
	if len(series) == 0 {
		return ""
	}
	lengths := p.Lengths()
	if len(series) == 1 {
		// asciigraph needs two points to draw a line.
		series = append(series, series[0])
	}

	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("fraction of palindromes that are twin-prime middles, length %d..%d", lengths[0], lengths[len(lengths)-1])),
	)
}
