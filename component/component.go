package component

import (
	"errors"
	"image"
	"sort"
)

// ErrEmptyComponent indicates a bounding query on a component with no pixels.
var ErrEmptyComponent = errors.New("component: no pixels")

// Limits is the inclusive extent of a component: XMin..XMax, YMin..YMax.
type Limits struct {
	XMin, XMax int
	YMin, YMax int
}

// Inverted reports whether the limits describe no pixel at all.
func (l Limits) Inverted() bool {
	return l.XMin > l.XMax || l.YMin > l.YMax
}

// Rect converts the inclusive limits to a half-open image.Rectangle.
func (l Limits) Rect() image.Rectangle {
	return image.Rect(l.XMin, l.YMin, l.XMax+1, l.YMax+1)
}

// Component is a set of pixel coordinates. The zero value is not usable;
// call New.
type Component struct {
	pixels map[image.Point]struct{}
}

// New returns an empty component.
func New() *Component {
	return &Component{pixels: make(map[image.Point]struct{})}
}

// Add inserts (x,y). Negative coordinates and duplicates are ignored.
// Complexity: O(1) amortized.
func (c *Component) Add(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	c.pixels[image.Point{X: x, Y: y}] = struct{}{}
}

// Len returns the number of distinct pixels.
func (c *Component) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pixels)
}

// Empty reports whether the component has no pixels. A nil component is empty.
func (c *Component) Empty() bool {
	return c.Len() == 0
}

// Contains reports whether (x,y) belongs to the component.
func (c *Component) Contains(x, y int) bool {
	if c == nil {
		return false
	}
	_, ok := c.pixels[image.Point{X: x, Y: y}]
	return ok
}

// Each calls fn for every pixel in unspecified order.
func (c *Component) Each(fn func(p image.Point)) {
	for p := range c.pixels {
		fn(p)
	}
}

// Pixels returns a copy of the pixel set ordered column-major
// (by X, then by Y), matching the labeler's scan order.
// Complexity: O(n log n).
func (c *Component) Pixels() []image.Point {
	out := make([]image.Point, 0, len(c.pixels))
	for p := range c.pixels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Limits returns the minimum and maximum x and y over all pixels.
// Returns ErrEmptyComponent if the component has no pixels.
// Complexity: O(n).
func (c *Component) Limits() (Limits, error) {
	if c.Empty() {
		return Limits{}, ErrEmptyComponent
	}
	first := true
	var l Limits
	for p := range c.pixels {
		if first {
			l = Limits{XMin: p.X, XMax: p.X, YMin: p.Y, YMax: p.Y}
			first = false
			continue
		}
		if p.X < l.XMin {
			l.XMin = p.X
		}
		if p.X > l.XMax {
			l.XMax = p.X
		}
		if p.Y < l.YMin {
			l.YMin = p.Y
		}
		if p.Y > l.YMax {
			l.YMax = p.Y
		}
	}
	return l, nil
}

// Bounds returns the half-open rectangle covering every pixel.
func (c *Component) Bounds() (image.Rectangle, error) {
	l, err := c.Limits()
	if err != nil {
		return image.Rectangle{}, err
	}
	return l.Rect(), nil
}

// Merge adds every pixel of other into c. A nil or empty other is a no-op.
// other is left unchanged; callers discard it afterwards.
// Complexity: O(len(other)).
func (c *Component) Merge(other *Component) {
	if other.Empty() || other == c {
		return
	}
	for p := range other.pixels {
		c.pixels[p] = struct{}{}
	}
}
