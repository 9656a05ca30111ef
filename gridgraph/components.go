package gridgraph

// ConnectedComponents finds all 4-connected regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold).
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order. Components are ordered by their first cell in
// row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // water
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// ComponentIndex returns, for every cell in row-major order, the position of
// its island in ConnectedComponents(), or -1 for water.
func (gg *GridGraph) ComponentIndex() []int {
	out := make([]int, gg.Width*gg.Height)
	for i := range out {
		out[i] = -1
	}
	for ci, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			out[idx] = ci
		}
	}
	return out
}
