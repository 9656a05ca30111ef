// Package gridgraph treats a 2D grid of cells as a graph and finds its
// connected “islands” by breadth-first search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - FromGrid builds one from a pixelgrid.Grid and a foreground predicate.
//   - ConnectedComponents identifies 4-connected islands of cells with value ≥ LandThreshold.
//
// Why:
//
//   - An independent flood-fill over the same foreground gives the two-pass
//     labeler something to be checked against: equal island counts and an
//     identical pixel partition.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - ComponentIndex:      O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
