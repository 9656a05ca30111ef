package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlabel/gridgraph"
)

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid with values in [0,1].
// Complexity: O(W×H×4)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = r.Intn(2)
		}
		grid[y] = row
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}
