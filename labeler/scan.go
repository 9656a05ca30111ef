package labeler

import (
	"image/color"
	"log/slog"

	"github.com/katalvlaran/lvlabel/component"
	"github.com/katalvlaran/lvlabel/pixelgrid"
	"github.com/katalvlaran/lvlabel/unionfind"
)

// scanner owns every structure a scan mutates. It is created per scan and
// handed to the caller only once both passes have finished.
type scanner struct {
	mode   Mode
	fg     color.RGBA
	w, h   int
	src    *pixelgrid.Grid
	bin    *pixelgrid.Grid
	labels []unionfind.Label
	forest *unionfind.Forest
	table  map[unionfind.Label]*component.Component
	bg     *component.Component
	next   unionfind.Label
	count  int

	advance func(from, to State)
	log     *slog.Logger
}

func newScanner(src *pixelgrid.Grid, mode Mode, advance func(from, to State), log *slog.Logger) *scanner {
	w, h := src.Width(), src.Height()
	return &scanner{
		mode:    mode,
		fg:      mode.Foreground(),
		w:       w,
		h:       h,
		src:     src,
		labels:  make([]unionfind.Label, w*h),
		forest:  unionfind.New(w * h),
		table:   make(map[unionfind.Label]*component.Component),
		bg:      component.New(),
		next:    1,
		advance: advance,
		log:     log,
	}
}

// run executes binarization and both passes, then packages the result.
func (s *scanner) run() (*Result, error) {
	s.advance(Created, Binarizing)
	s.bin = s.src.Binarized()

	s.advance(Binarizing, FirstPass)
	s.firstPass()
	s.log.Debug("first pass done", "provisional", int(s.next)-1, "live", s.count)

	s.advance(FirstPass, SecondPass)
	s.secondPass()

	return &Result{
		Mode:       s.mode,
		Width:      s.w,
		Height:     s.h,
		Count:      s.count,
		Table:      s.table,
		Labels:     s.labels,
		Binary:     s.bin,
		Background: s.bg,
	}, nil
}

// neighbor returns the label of (x,y) when it is inside the grid and
// foreground, Unassigned otherwise.
func (s *scanner) neighbor(x, y int) unionfind.Label {
	if x < 0 || y < 0 || s.bin.Get(x, y) != s.fg {
		return unionfind.Unassigned
	}
	return s.labels[y*s.w+x]
}

// firstPass assigns provisional labels in column-major order. Only the pixel
// above and the pixel to the left have been visited when (x,y) is reached.
func (s *scanner) firstPass() {
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			if s.bin.Get(x, y) != s.fg {
				if s.mode.TracksBackground() {
					s.bg.Add(x, y)
				}
				continue
			}

			above := s.neighbor(x, y-1)
			left := s.neighbor(x-1, y)

			var l unionfind.Label
			switch {
			case above.Assigned() && left.Assigned() && above != left:
				small, big := above, left
				if big < small {
					small, big = big, small
				}
				l = small
				if s.forest.Union(small, big) {
					s.count--
				}
			case above.Assigned():
				l = above
			case left.Assigned():
				l = left
			default:
				l = s.mint()
			}
			s.labels[y*s.w+x] = l
			s.table[l].Add(x, y)
		}
	}
}

// mint creates a fresh label with an empty component.
func (s *scanner) mint() unionfind.Label {
	l := s.next
	s.next++
	s.forest.MakeSet(l)
	s.table[l] = component.New()
	s.count++
	return l
}

// secondPass resolves every label to its root, folding non-root components
// into the root's component and dropping their table entries.
func (s *scanner) secondPass() {
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			i := y*s.w + x
			l := s.labels[i]
			if !l.Assigned() {
				continue
			}
			root := s.forest.Root(l)
			s.labels[i] = root
			s.forest.SetParent(l, root)
			if root != l {
				if c, ok := s.table[l]; ok {
					s.table[root].Merge(c)
					delete(s.table, l)
				}
			}
		}
	}
}
