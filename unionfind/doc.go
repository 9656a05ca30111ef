// Package unionfind implements the label-equivalence forest used by the
// two-pass connected-component labeler.
//
// What:
//
//   - Label is a provisional or root component identifier; Unassigned (0)
//     is reserved and never enters the forest.
//   - Forest maps every label to its parent; a label whose parent is itself
//     is a root.
//   - Find applies path halving on every hop and reports the hop count.
//   - Union grafts the shallower root beneath the deeper one.
//
// Why:
//
//   - The first pass discovers equivalences between provisional labels in
//     raster order; resolving them lazily keeps labeling near-linear.
//
// Complexity:
//
//   - MakeSet:   O(1).
//   - Find:      amortized O(α(n)) with path halving.
//   - Union:     four Find calls, amortized O(α(n)).
//   - Memory:    O(capacity).
//
// Union compares the hop counts observed by Find rather than a maintained
// rank. Trees may therefore be slightly unbalanced; labeling results do not
// depend on it.
//
// Errors:
//
//   - ErrInvalidLabel: Unassigned or out-of-range label (panics, programming error).
package unionfind
