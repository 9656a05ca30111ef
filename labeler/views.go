package labeler

import (
	"context"
	"image"
	"image/color"
	"math/rand"

	"github.com/katalvlaran/lvlabel/component"
	"github.com/katalvlaran/lvlabel/pixelgrid"
)

// Binary returns a copy of the binarized grid.
func (p *Processor) Binary(ctx context.Context) (*pixelgrid.Grid, error) {
	r, err := p.Result(ctx)
	if err != nil {
		return nil, err
	}
	return r.Binary.Clone(), nil
}

// Highlight returns the binarized grid with a one-pixel marker rectangle
// around every component's bounding box.
func (p *Processor) Highlight(ctx context.Context) (*pixelgrid.Grid, error) {
	r, err := p.Result(ctx)
	if err != nil {
		return nil, err
	}
	return DrawBoxes(r.Binary.Clone(), r, p.opts.Marker), nil
}

// Identify returns the original grid with a one-pixel marker rectangle
// around every component's bounding box.
func (p *Processor) Identify(ctx context.Context) (*pixelgrid.Grid, error) {
	r, err := p.Result(ctx)
	if err != nil {
		return nil, err
	}
	return DrawBoxes(p.original.Clone(), r, p.opts.Marker), nil
}

// Colorize returns the binarized grid with every component repainted in a
// palette color chosen with the processor's seed.
func (p *Processor) Colorize(ctx context.Context) (*pixelgrid.Grid, error) {
	return p.ColorizeSeed(ctx, p.opts.Seed)
}

// ColorizeSeed is Colorize with an explicit seed. Each call draws from a
// fresh generator, so equal seeds give equal images.
func (p *Processor) ColorizeSeed(ctx context.Context, seed int64) (*pixelgrid.Grid, error) {
	r, err := p.Result(ctx)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))
	out := r.Binary.Clone()
	for _, e := range r.Sorted() {
		c := p.opts.Palette[rng.Intn(len(p.opts.Palette))]
		paint(out, e.Component, c)
	}
	if p.mode.TracksBackground() {
		paint(out, r.Background, p.opts.BackgroundColor)
	}
	return out, nil
}

func paint(g *pixelgrid.Grid, c *component.Component, col color.RGBA) {
	c.Each(func(pt image.Point) { g.Set(pt.X, pt.Y, col) })
}

// DrawBoxes draws a one-pixel rectangle in marker around the bounding box of
// every component in r onto dst and returns dst. Empty components have no
// box and are skipped.
func DrawBoxes(dst *pixelgrid.Grid, r *Result, marker color.RGBA) *pixelgrid.Grid {
	for _, e := range r.Sorted() {
		l, err := e.Component.Limits()
		if err != nil || l.Inverted() {
			// Only ErrEmptyComponent is possible here: nothing to draw.
			continue
		}
		for x := l.XMin; x <= l.XMax; x++ {
			dst.Set(x, l.YMin, marker)
			dst.Set(x, l.YMax, marker)
		}
		for y := l.YMin; y <= l.YMax; y++ {
			dst.Set(l.XMin, y, marker)
			dst.Set(l.XMax, y, marker)
		}
	}
	return dst
}
