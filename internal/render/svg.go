package render

import (
	"fmt"
	"strings"
)

func hex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SVG converts a grid to SVG, one rect per pixel that differs from the
// background.
func SVG(g *Grid, scale float64, pal Palette) string {
	if g == nil {
		return ""
	}

	width := float64(g.Width) * scale
	height := float64(g.Height) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g shape-rendering="crispEdges">
`, width, height, width, height, hex(pal.Background)))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Pixel(x, y)
			if c == pal.Background {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(x)*scale, float64(y)*scale, scale, scale, hex(c)))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
