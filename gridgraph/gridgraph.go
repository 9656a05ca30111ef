package gridgraph

import (
	"image/color"

	"github.com/katalvlaran/lvlabel/pixelgrid"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		LandThreshold: opts.LandThreshold,
	}, nil
}

// FromGrid marks every pixel of g for which land returns true with 1 and
// every other pixel with 0.
// Complexity: O(W×H).
func FromGrid(g *pixelgrid.Grid, land func(c color.RGBA) bool) (*GridGraph, error) {
	if g.Empty() {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, g.Height())
	for y := range values {
		values[y] = make([]int, g.Width())
		for x := range values[y] {
			if land(g.Get(x, y)) {
				values[y][x] = 1
			}
		}
	}
	return NewGridGraph(values, DefaultGridOptions())
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at least LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
