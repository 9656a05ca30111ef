// Package labeler finds 4-connected groups of foreground pixels in a raster
// image with the classic two-pass algorithm.
//
// What:
//
//   - Processor binarizes a pixelgrid.Grid by luminance, then scans it twice
//     in column-major order (x outer, y inner).
//   - The first pass hands out provisional labels, looking only at the pixel
//     above (x, y-1) and the pixel to the left (x-1, y), and records label
//     equivalences in a unionfind.Forest.
//   - The second pass rewrites every label to its root and folds the
//     components of non-root labels into their root's component.
//   - Result exposes the component table, the live-component count, the
//     label array and the binarized grid; views render boxed and colorized
//     copies on demand.
//
// Modes:
//
//   - BrighterForeground: light pixels (luminance ≥ 128) are foreground; White after binarizing.
//   - DarkerForeground: dark pixels are foreground; Black after binarizing. Every
//     other pixel is collected into Result.Background.
//
// Execution:
//
// The scan runs once, lazily, on the first query. It is executed on a worker
// goroutine and awaited for at most the configured deadline (20s by default).
// A scan that misses its deadline fails with ErrTimeout; the failure is
// final for that Processor and callers are expected to abandon the run.
//
// Complexity:
//
//   - Scan: O(W·H·α(W·H)) time, O(W·H) memory.
//   - Views: O(W·H) each; they never modify the component table.
//
// Errors:
//
//   - ErrConstruction: the input image could not be obtained.
//   - ErrTimeout: the scan exceeded its deadline.
//   - ErrInvalidMode: a mode other than 0 or 1.
//   - ErrOptionViolation: an invalid Option.
//   - ErrInvariant: Result.Verify found an inconsistent result.
package labeler
