package labeler_test

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlabel/component"
	"github.com/katalvlaran/lvlabel/gridgraph"
	"github.com/katalvlaran/lvlabel/labeler"
	"github.com/katalvlaran/lvlabel/pixelgrid"
	"github.com/katalvlaran/lvlabel/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		count int
	}{
		{name: "single pixel", rows: []string{"...", ".#.", "..."}, count: 1},
		{name: "diagonal pair", rows: []string{"#.", ".#"}, count: 2},
		{name: "anti-diagonal pair", rows: []string{".#", "#."}, count: 2},
		{name: "horizontal pair", rows: []string{"##"}, count: 1},
		{name: "vertical pair", rows: []string{"#", "#"}, count: 1},
		{name: "solid block", rows: []string{"###", "###", "###"}, count: 1},
		{name: "checkerboard", rows: []string{"#.#.", ".#.#", "#.#.", ".#.#"}, count: 8},
		{name: "blank", rows: []string{"....", "...."}, count: 0},
		{name: "all filled", rows: []string{"####", "####"}, count: 1},
		{name: "u shape", rows: []string{"#.#", "#.#", "###"}, count: 1},
		{name: "comb", rows: []string{"#.#.#", "#.#.#", "#####"}, count: 1},
		{name: "staircase", rows: []string{"#..", "##.", ".##"}, count: 1},
		{name: "corners and edges", rows: []string{"#.#.#", ".....", "#...#", ".....", "#.#.#"}, count: 8},
		{name: "ring", rows: []string{"#####", "#...#", "#.#.#", "#...#", "#####"}, count: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := mustResult(t, gridOf(tt.rows...), labeler.BrighterForeground)
			assert.Equal(t, tt.count, r.Count)
			assert.Len(t, r.Table, tt.count)
		})
	}
}

func TestScan_SinglePixel(t *testing.T) {
	_, r := mustResult(t, gridOf("...", ".#.", "..."), labeler.BrighterForeground)
	require.Len(t, r.Table, 1)
	for _, c := range r.Table {
		assert.Equal(t, []image.Point{{X: 1, Y: 1}}, c.Pixels())
		l, err := c.Limits()
		require.NoError(t, err)
		assert.Equal(t, component.Limits{XMin: 1, XMax: 1, YMin: 1, YMax: 1}, l)
	}
}

func TestScan_BlockBounds(t *testing.T) {
	_, r := mustResult(t, gridOf(".....", ".###.", ".###.", ".###.", "....."), labeler.BrighterForeground)
	require.Equal(t, 1, r.Count)
	e := r.Sorted()[0]
	assert.Equal(t, 9, e.Component.Len())
	b, err := e.Component.Bounds()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(1, 1, 4, 4), b)
}

// TestScan_SmallerLabelSurvives exercises the merge case of the first pass.
// Column-major order labels (0,1) first and (1,0) second; (1,1) joins them
// and the smaller label becomes the root.
func TestScan_SmallerLabelSurvives(t *testing.T) {
	_, r := mustResult(t, gridOf(".#", "##"), labeler.BrighterForeground)
	require.Equal(t, 1, r.Count)
	assert.Equal(t, unionfind.Label(1), r.LabelAt(0, 1))
	assert.Equal(t, unionfind.Label(1), r.LabelAt(1, 0))
	assert.Equal(t, unionfind.Label(1), r.LabelAt(1, 1))
	assert.Equal(t, unionfind.Unassigned, r.LabelAt(0, 0))
	assert.Equal(t, unionfind.Unassigned, r.LabelAt(5, 5))
	assert.Contains(t, r.Table, unionfind.Label(1))
}

// TestScan_ColumnMajorLabels pins the label order produced by x-outer,
// y-inner traversal: the top-right island is discovered after the
// bottom-left one.
func TestScan_ColumnMajorLabels(t *testing.T) {
	_, r := mustResult(t, gridOf("..#", "...", "#.."), labeler.BrighterForeground)
	assert.Equal(t, unionfind.Label(1), r.LabelAt(0, 2))
	assert.Equal(t, unionfind.Label(2), r.LabelAt(2, 0))
}

func TestScan_DarkerForeground(t *testing.T) {
	// '#' is white, so the dark '.' pixels are the foreground here.
	g := gridOf(
		"#####",
		"#..##",
		"#####",
		"##.##",
	)
	_, r := mustResult(t, g, labeler.DarkerForeground)
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, 3, r.Foreground())
	assert.Equal(t, 20-3, r.Background.Len())
	assert.True(t, r.Background.Contains(0, 0))
	assert.False(t, r.Background.Contains(1, 1))

	_, rb := mustResult(t, g, labeler.BrighterForeground)
	assert.Equal(t, 1, rb.Count)
	assert.True(t, rb.Background.Empty(), "background is tracked only for darker mode")
}

// TestScan_MatchesFloodFill cross-checks the two-pass labeling against a BFS
// flood fill on random masks: same count and the same pixel partition.
func TestScan_MatchesFloodFill(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		w, h := 1+r.Intn(40), 1+r.Intn(40)
		density := 0.2 + 0.6*r.Float64()
		g := randomGrid(r, w, h, density)

		_, res := mustResult(t, g, labeler.BrighterForeground)
		gg, err := gridgraph.FromGrid(g, func(c color.RGBA) bool { return !pixelgrid.IsDark(c) })
		require.NoError(t, err)
		comps := gg.ConnectedComponents()
		require.Equal(t, len(comps), res.Count, "grid %d (%dx%d)", i, w, h)

		// Every BFS island maps onto exactly one label and vice versa.
		seen := map[unionfind.Label]int{}
		for ci, comp := range comps {
			x0, y0 := gg.Coordinate(comp[0])
			l := res.LabelAt(x0, y0)
			require.True(t, l.Assigned())
			_, dup := seen[l]
			require.False(t, dup, "label %s shared by two islands", l)
			seen[l] = ci
			require.Equal(t, len(comp), res.Table[l].Len())
			for _, idx := range comp {
				x, y := gg.Coordinate(idx)
				require.Equal(t, l, res.LabelAt(x, y))
			}
		}
	}
}
