package render

import (
	"image"
	"image/color"
)

type RGB struct {
	R, G, B uint8
}

func Gray(v uint8) RGB { return RGB{v, v, v} }

func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Grid is a mutable RGB raster with its origin at the top left. It
// satisfies image.Image.
type Grid struct {
	Width, Height int
	Pix           []RGB
}

func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{Width: w, Height: h, Pix: make([]RGB, w*h)}
}

func (g *Grid) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Set paints one pixel; out of range coordinates are ignored.
func (g *Grid) Set(x, y int, c RGB) {
	if !g.in(x, y) {
		return
	}
	g.Pix[y*g.Width+x] = c
}

// Pixel returns the colour at (x, y), or black outside the grid.
func (g *Grid) Pixel(x, y int) RGB {
	if !g.in(x, y) {
		return RGB{}
	}
	return g.Pix[y*g.Width+x]
}

// Fill paints the whole grid.
func (g *Grid) Fill(c RGB) {
	for i := range g.Pix {
		g.Pix[i] = c
	}
}

// FillRect paints the w x h block whose top left corner is (x, y).
func (g *Grid) FillRect(x, y, w, h int, c RGB) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			g.Set(x+dx, y+dy, c)
		}
	}
}

func (g *Grid) ColorModel() color.Model { return color.RGBAModel }

func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }

func (g *Grid) At(x, y int) color.Color { return g.Pixel(x, y) }
