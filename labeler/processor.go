package labeler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lvlabel/component"
	"github.com/katalvlaran/lvlabel/deadline"
	"github.com/katalvlaran/lvlabel/pixelgrid"
	"github.com/katalvlaran/lvlabel/unionfind"
)

// Processor labels one image. The scan runs at most once, on the first query
// that needs it; its outcome, success or failure, is kept for the lifetime
// of the Processor.
//
// Processor is safe for concurrent use. Concurrent first queries share a
// single scan, which runs under the context of whichever query started it.
// If that context is cancelled before the scan finishes, the cancellation is
// kept as the Processor's failure and every later query returns it; build a
// new Processor to try again.
type Processor struct {
	path     string
	original *pixelgrid.Grid
	mode     Mode
	opts     Options

	state  atomic.Int32
	flight singleflight.Group

	mu     sync.Mutex
	result *Result
	err    error
}

// New loads the image at path and prepares a processor for it.
// Any load failure is returned wrapped in ErrConstruction.
func New(path string, mode Mode, opts ...Option) (*Processor, error) {
	g, err := pixelgrid.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	p, err := NewFromGrid(g, mode, opts...)
	if err != nil {
		return nil, err
	}
	p.path = path
	return p, nil
}

// NewFromGrid prepares a processor for an in-memory grid. The grid is copied.
func NewFromGrid(g *pixelgrid.Grid, mode Mode, opts ...Option) (*Processor, error) {
	if g.Empty() {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, pixelgrid.ErrEmptyImage)
	}
	if _, err := ParseMode(int(mode)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Processor{original: g.Clone(), mode: mode, opts: o}, nil
}

// Width returns the image width.
func (p *Processor) Width() int { return p.original.Width() }

// Height returns the image height.
func (p *Processor) Height() int { return p.original.Height() }

// Mode returns the foreground selection mode.
func (p *Processor) Mode() Mode { return p.mode }

// Path returns the file the processor was loaded from, if any.
func (p *Processor) Path() string { return p.path }

// State returns the current lifecycle step.
func (p *Processor) State() State { return State(p.state.Load()) }

// Original returns a copy of the input image.
func (p *Processor) Original() *pixelgrid.Grid { return p.original.Clone() }

// Result runs the scan if needed and returns its outcome.
// A failed scan keeps returning the same error; it is never retried.
func (p *Processor) Result(ctx context.Context) (*Result, error) {
	if r, ok, err := p.cached(); ok {
		return r, err
	}
	v, err, _ := p.flight.Do("scan", func() (any, error) {
		if r, ok, err := p.cached(); ok {
			return r, err
		}
		r, err := p.scan(ctx)
		p.mu.Lock()
		p.result, p.err = r, err
		p.mu.Unlock()
		return r, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (p *Processor) cached() (*Result, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result, p.result != nil || p.err != nil, p.err
}

// scan runs the worker under the deadline. Only the goroutine that wins the
// singleflight call gets here.
func (p *Processor) scan(ctx context.Context) (*Result, error) {
	log := p.opts.Logger.With("mode", p.mode.String(), "width", p.Width(), "height", p.Height())
	if p.path != "" {
		log = log.With("path", p.path)
	}
	log.Debug("scan started", "deadline", p.opts.Deadline)

	src := p.original
	start := time.Now()
	res, err := deadline.Run(ctx, p.opts.Deadline, func() (*Result, error) {
		return newScanner(src, p.mode, p.advance, log).run()
	})
	elapsed := time.Since(start)
	if err != nil {
		p.state.Store(int32(Failed))
		if errors.Is(err, deadline.ErrTimeout) {
			log.Error("scan timed out", "deadline", p.opts.Deadline)
		} else {
			log.Error("scan failed", "err", err)
		}
		return nil, err
	}
	res.Elapsed = elapsed
	p.state.Store(int32(Ready))
	log.Info("scan finished", "components", res.Count, "elapsed", elapsed)
	return res, nil
}

// advance moves the lifecycle forward unless the scan has already been
// abandoned, in which case Failed sticks.
func (p *Processor) advance(from, to State) {
	p.state.CompareAndSwap(int32(from), int32(to))
}

// Elapsed returns the wall-clock duration of the scan.
func (p *Processor) Elapsed(ctx context.Context) (time.Duration, error) {
	r, err := p.Result(ctx)
	if err != nil {
		return 0, err
	}
	return r.Elapsed, nil
}

// Count returns the number of components.
func (p *Processor) Count(ctx context.Context) (int, error) {
	r, err := p.Result(ctx)
	if err != nil {
		return 0, err
	}
	return r.Count, nil
}

// Components returns a copy of the component table. The components
// themselves are shared and must not be modified.
func (p *Processor) Components(ctx context.Context) (map[unionfind.Label]*component.Component, error) {
	r, err := p.Result(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[unionfind.Label]*component.Component, len(r.Table))
	for l, c := range r.Table {
		out[l] = c
	}
	return out, nil
}
