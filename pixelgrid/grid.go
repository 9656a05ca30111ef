package pixelgrid

import (
	"image"
	"image/color"
)

// Grid is a rectangular raster of RGB samples addressed as (x,y) with
// 0 ≤ x < Width and 0 ≤ y < Height. Storage is row-major.
type Grid struct {
	width, height int
	pix           []color.RGBA
}

// New returns a w×h grid filled with opaque black.
// Non-positive dimensions yield an empty grid.
// Complexity: O(w×h).
func New(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		return &Grid{}
	}
	g := &Grid{width: w, height: h, pix: make([]color.RGBA, w*h)}
	for i := range g.pix {
		g.pix[i] = Black
	}
	return g
}

// FromImage copies img into a new grid whose origin is img.Bounds().Min.
// Samples are read non-premultiplied and alpha is dropped, so a transparent
// white pixel stays white. Every sample becomes opaque.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := New(b.Dx(), b.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g.pix[y*g.width+x] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Empty reports whether the grid has no pixels.
func (g *Grid) Empty() bool { return g == nil || g.width == 0 || g.height == 0 }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the sample at (x,y). Out-of-range coordinates panic.
func (g *Grid) Get(x, y int) color.RGBA {
	if !g.InBounds(x, y) {
		panic("pixelgrid: coordinate out of range")
	}
	return g.pix[y*g.width+x]
}

// Set stores c at (x,y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, c color.RGBA) {
	if !g.InBounds(x, y) {
		return
	}
	g.pix[y*g.width+x] = c
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{width: g.width, height: g.height, pix: make([]color.RGBA, len(g.pix))}
	copy(cp.pix, g.pix)
	return cp
}

// Equal reports whether g and o have the same dimensions and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image; the origin is always (0,0).
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// At implements image.Image. Out-of-range coordinates yield transparent black.
func (g *Grid) At(x, y int) color.Color {
	if !g.InBounds(x, y) {
		return color.RGBA{}
	}
	return g.pix[y*g.width+x]
}
