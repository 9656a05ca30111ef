// Package component holds the pixel set of one labeled region.
//
// A Component is a set of distinct (x,y) coordinates. Adding a coordinate
// twice is a no-op, negative coordinates are ignored, and Merge absorbs
// another component's pixels without touching the other component.
//
// Limits and Bounds fail with ErrEmptyComponent when the set is empty;
// renderers treat that as "nothing to draw".
package component
