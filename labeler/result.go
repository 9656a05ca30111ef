package labeler

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/lvlabel/component"
	"github.com/katalvlaran/lvlabel/pixelgrid"
	"github.com/katalvlaran/lvlabel/unionfind"
)

// Result is the frozen outcome of a completed scan. Callers must treat every
// field as read-only; views copy what they draw on.
type Result struct {
	Mode          Mode
	Width, Height int
	// Count is the number of live root labels, maintained by the scan itself.
	Count int
	// Table maps each root label to its component.
	Table map[unionfind.Label]*component.Component
	// Labels holds the root label of every pixel at index y·Width+x;
	// Unassigned for non-foreground pixels.
	Labels []unionfind.Label
	// Binary is the binarized working copy of the input.
	Binary *pixelgrid.Grid
	// Background holds every non-foreground pixel in DarkerForeground mode
	// and is empty otherwise.
	Background *component.Component
	// Elapsed is the wall-clock time of the scan, including the wait for the worker.
	Elapsed time.Duration
}

// Entry pairs a root label with its component.
type Entry struct {
	Label     unionfind.Label
	Component *component.Component
}

// LabelAt returns the root label of (x,y), or Unassigned when (x,y) is
// outside the grid or not foreground.
func (r *Result) LabelAt(x, y int) unionfind.Label {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return unionfind.Unassigned
	}
	return r.Labels[y*r.Width+x]
}

// Sorted returns the table entries ordered by ascending label.
func (r *Result) Sorted() []Entry {
	out := make([]Entry, 0, len(r.Table))
	for l, c := range r.Table {
		out = append(out, Entry{Label: l, Component: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Foreground returns the number of foreground pixels.
func (r *Result) Foreground() int {
	n := 0
	for _, l := range r.Labels {
		if l.Assigned() {
			n++
		}
	}
	return n
}

// Verify checks the structural guarantees of a completed scan:
//
//   - Count equals the number of table entries.
//   - Every component is non-empty.
//   - Every foreground pixel carries a root label whose component holds it,
//     and no pixel is held by two components.
//   - In DarkerForeground mode, Background holds exactly the other pixels.
//
// The first violation is returned wrapped in ErrInvariant.
// Complexity: O(W·H).
func (r *Result) Verify() error {
	if r.Count != len(r.Table) {
		return fmt.Errorf("%w: count %d, table has %d entries", ErrInvariant, r.Count, len(r.Table))
	}
	held := 0
	for l, c := range r.Table {
		if c.Empty() {
			return fmt.Errorf("%w: component %s is empty", ErrInvariant, l)
		}
		held += c.Len()
	}

	fg := r.Mode.Foreground()
	labeled := 0
	for x := 0; x < r.Width; x++ {
		for y := 0; y < r.Height; y++ {
			l := r.Labels[y*r.Width+x]
			isFg := r.Binary.Get(x, y) == fg
			switch {
			case isFg && !l.Assigned():
				return fmt.Errorf("%w: foreground pixel (%d,%d) is unlabeled", ErrInvariant, x, y)
			case !isFg && l.Assigned():
				return fmt.Errorf("%w: background pixel (%d,%d) has label %s", ErrInvariant, x, y, l)
			case isFg:
				labeled++
				c, ok := r.Table[l]
				if !ok || !c.Contains(x, y) {
					return fmt.Errorf("%w: pixel (%d,%d) missing from component %s", ErrInvariant, x, y, l)
				}
			}
			if r.Mode.TracksBackground() && !isFg && !r.Background.Contains(x, y) {
				return fmt.Errorf("%w: background pixel (%d,%d) not tracked", ErrInvariant, x, y)
			}
		}
	}
	// Each labeled pixel sits in its own root's component; equal totals leave
	// no room for a pixel to appear twice.
	if held != labeled {
		return fmt.Errorf("%w: components hold %d pixels, %d are foreground", ErrInvariant, held, labeled)
	}
	if r.Mode.TracksBackground() && r.Background.Len() != r.Width*r.Height-labeled {
		return fmt.Errorf("%w: background holds %d pixels, want %d", ErrInvariant,
			r.Background.Len(), r.Width*r.Height-labeled)
	}
	return nil
}
