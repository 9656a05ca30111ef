package labeler_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlabel/labeler"
	"github.com/katalvlaran/lvlabel/pixelgrid"
	"github.com/stretchr/testify/require"
)

// gridOf builds a grid from rows of '#' (white) and '.' (black).
func gridOf(rows ...string) *pixelgrid.Grid {
	g := pixelgrid.New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.Set(x, y, pixelgrid.White)
			}
		}
	}
	return g
}

// randomGrid returns a w×h black/white grid with roughly density white pixels.
func randomGrid(r *rand.Rand, w, h int, density float64) *pixelgrid.Grid {
	g := pixelgrid.New(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if r.Float64() < density {
				g.Set(x, y, pixelgrid.White)
			}
		}
	}
	return g
}

// mustResult labels g in the given mode and fails the test on error.
func mustResult(t *testing.T, g *pixelgrid.Grid, mode labeler.Mode, opts ...labeler.Option) (*labeler.Processor, *labeler.Result) {
	t.Helper()
	p, err := labeler.NewFromGrid(g, mode, opts...)
	require.NoError(t, err)
	r, err := p.Result(context.Background())
	require.NoError(t, err)
	require.NoError(t, r.Verify())
	return p, r
}
