package pixelgrid

import "image/color"

// Palette entries shared by the binarizer and the renderers.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red   = color.RGBA{R: 0xff, G: 0, B: 0, A: 0xff}
)

// DarkThreshold is the luminance below which a sample binarizes to Black.
const DarkThreshold = 128.0

// Luminance returns the NTSC weighted brightness of c on a 0..255 scale:
// 0.299·R + 0.587·G + 0.114·B.
func Luminance(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// IsDark reports whether c binarizes to Black.
func IsDark(c color.RGBA) bool {
	return Luminance(c) < DarkThreshold
}

// Binarize maps c to Black or White from its own luminance only.
// Pure Black and White are fixed points.
func Binarize(c color.RGBA) color.RGBA {
	if IsDark(c) {
		return Black
	}
	return White
}

// Binarized returns a binarized copy of g; g is left untouched.
// Complexity: O(W×H).
func (g *Grid) Binarized() *Grid {
	out := g.Clone()
	for i, c := range out.pix {
		out.pix[i] = Binarize(c)
	}
	return out
}
