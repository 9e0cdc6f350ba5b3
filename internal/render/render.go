package render

import (
	"strings"

	"github.com/san-kum/twinpal/internal/twin"
)

const (
	BlankCell  = "  "
	FilledCell = "██"
	// Scale is the pixel size of one bit in a rug.
	Scale = 2
)

// Palette holds the two rug colours.
type Palette struct {
	Foreground RGB
	Background RGB
}

var DefaultPalette = Palette{Foreground: Gray(255), Background: Gray(0)}

// Width returns the longest bit-string length.
func Width(middles []twin.Middle) int {
	w := 0
	for _, m := range middles {
		if len(m.Bits) > w {
			w = len(m.Bits)
		}
	}
	return w
}

// ASCIILine renders bits padded on both sides with width-len(bits) spaces.
func ASCIILine(bits string, width int) string {
	pad := width - len(bits)
	if pad < 0 {
		pad = 0
	}

	var b strings.Builder
	b.Grow(2*pad + len(bits)*len(FilledCell))
	b.WriteString(strings.Repeat(" ", pad))
	for i := 0; i < len(bits); i++ {
		if bits[i] == '1' {
			b.WriteString(FilledCell)
		} else {
			b.WriteString(BlankCell)
		}
	}
	b.WriteString(strings.Repeat(" ", pad))
	return b.String()
}

// ASCII renders one line per middle, in the given order.
func ASCII(ordered []twin.Middle, width int) []string {
	lines := make([]string, len(ordered))
	for i, m := range ordered {
		lines[i] = ASCIILine(m.Bits, width)
	}
	return lines
}

// Rug paints the ordered middles onto a (width*Scale) x (len*Scale) grid.
func Rug(ordered []twin.Middle, width int, pal Palette) *Grid {
	g := NewGrid(width*Scale, len(ordered)*Scale)
	g.Fill(pal.Background)

	for y, m := range ordered {
		offset := width - len(m.Bits)
		for x := 0; x < len(m.Bits); x++ {
			if m.Bits[x] == '1' {
				g.FillRect(x*Scale+offset, y*Scale, Scale, Scale, pal.Foreground)
			}
		}
	}
	return g
}
