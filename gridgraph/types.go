package gridgraph

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
}

// DefaultGridOptions returns a GridOptions with LandThreshold=1 (values ≥1 are land).
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1}
}

// GridGraph treats a 2D integer grid as a graph with 4-neighbor adjacency.
// It is immutable once built. CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int
}

// neighborOffsets lists the 4-connected moves: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
