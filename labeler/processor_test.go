package labeler_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/lvlabel/labeler"
	"github.com/katalvlaran/lvlabel/pixelgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FromFile(t *testing.T) {
	dir := t.TempDir()
	src := gridOf(
		"#..#",
		"#..#",
		"....",
		".##.",
	)
	for _, name := range []string{"img.png", "img.bmp", "img.gif", "img.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, pixelgrid.Save(path, src))

			p, err := labeler.New(path, labeler.BrighterForeground)
			require.NoError(t, err)
			assert.Equal(t, 4, p.Width())
			assert.Equal(t, 4, p.Height())
			assert.Equal(t, path, p.Path())
			assert.True(t, src.Equal(p.Original()))

			n, err := p.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 3, n)
		})
	}
}

func TestNew_ConstructionErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := labeler.New(filepath.Join(dir, "nullImage.jpg"), labeler.BrighterForeground)
	assert.ErrorIs(t, err, labeler.ErrConstruction)
	assert.ErrorIs(t, err, pixelgrid.ErrLoad)

	_, err = labeler.New(filepath.Join(dir, "picture.pdf"), labeler.BrighterForeground)
	assert.ErrorIs(t, err, labeler.ErrConstruction)
	assert.ErrorIs(t, err, pixelgrid.ErrUnsupportedFormat)

	_, err = labeler.NewFromGrid(pixelgrid.New(0, 0), labeler.BrighterForeground)
	assert.ErrorIs(t, err, labeler.ErrConstruction)

	_, err = labeler.NewFromGrid(gridOf("#"), labeler.Mode(2))
	assert.ErrorIs(t, err, labeler.ErrConstruction)
	assert.ErrorIs(t, err, labeler.ErrInvalidMode)
}

func TestNewFromGrid_OptionViolations(t *testing.T) {
	cases := map[string]labeler.Option{
		"zero deadline":     labeler.WithDeadline(0),
		"negative deadline": labeler.WithDeadline(-time.Second),
		"empty palette":     labeler.WithPalette(nil),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := labeler.NewFromGrid(gridOf("#"), labeler.BrighterForeground, opt)
			assert.ErrorIs(t, err, labeler.ErrOptionViolation)
		})
	}
}

// TestNewFromGrid_CopiesInput ensures the processor is immune to later edits
// of the caller's grid.
func TestNewFromGrid_CopiesInput(t *testing.T) {
	g := gridOf("#.#")
	p, err := labeler.NewFromGrid(g, labeler.BrighterForeground)
	require.NoError(t, err)
	g.Set(1, 0, pixelgrid.White)

	n, err := p.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestProcessor_LazyAndCached(t *testing.T) {
	p, err := labeler.NewFromGrid(gridOf("#.#", "###"), labeler.BrighterForeground)
	require.NoError(t, err)
	assert.Equal(t, labeler.Created, p.State())
	assert.Equal(t, labeler.BrighterForeground, p.Mode())

	ctx := context.Background()
	r1, err := p.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, labeler.Ready, p.State())

	r2, err := p.Result(ctx)
	require.NoError(t, err)
	assert.Same(t, r1, r2, "scan must not run twice")

	el, err := p.Elapsed(ctx)
	require.NoError(t, err)
	assert.Equal(t, r1.Elapsed, el)

	comps, err := p.Components(ctx)
	require.NoError(t, err)
	assert.Len(t, comps, 1)
	for l := range comps {
		delete(comps, l)
	}
	assert.Len(t, r1.Table, 1, "Components returns a copy of the table")
}

func TestProcessor_ConcurrentFirstQueries(t *testing.T) {
	g := randomGrid(rand.New(rand.NewSource(3)), 200, 200, 0.5)
	p, err := labeler.NewFromGrid(g, labeler.BrighterForeground)
	require.NoError(t, err)

	const workers = 8
	results := make([]*labeler.Result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := p.Result(context.Background())
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
	require.NoError(t, results[0].Verify())
}

// TestProcessor_Timeout gives a large image a budget it cannot meet. The
// failure is final: later queries return the same error without rescanning.
func TestProcessor_Timeout(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := randomGrid(rand.New(rand.NewSource(5)), 1000, 1000, 0.5)
	p, err := labeler.NewFromGrid(g, labeler.BrighterForeground,
		labeler.WithDeadline(time.Nanosecond), labeler.WithLogger(logger))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = p.Count(ctx)
	require.ErrorIs(t, err, labeler.ErrTimeout)
	assert.Equal(t, labeler.Failed, p.State())

	_, err2 := p.Highlight(ctx)
	assert.Equal(t, err, err2)
	assert.Contains(t, logs.String(), "scan timed out")

	// The abandoned worker must not move the state away from Failed.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, labeler.Failed, p.State())
}

func TestProcessor_LogsCompletion(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	p, err := labeler.NewFromGrid(gridOf("#.#"), labeler.BrighterForeground, labeler.WithLogger(logger))
	require.NoError(t, err)
	_, err = p.Count(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "scan finished")
	assert.Contains(t, logs.String(), "components=2")
}

func TestParseMode(t *testing.T) {
	m, err := labeler.ParseMode(0)
	require.NoError(t, err)
	assert.Equal(t, labeler.BrighterForeground, m)
	assert.Equal(t, pixelgrid.White, m.Foreground())

	m, err = labeler.ParseMode(1)
	require.NoError(t, err)
	assert.Equal(t, labeler.DarkerForeground, m)
	assert.Equal(t, pixelgrid.Black, m.Foreground())

	_, err = labeler.ParseMode(-1)
	assert.ErrorIs(t, err, labeler.ErrInvalidMode)

	for in, want := range map[string]labeler.Mode{"0": 0, "1": 1, "Darker": 1, " brighter ": 0, "dark": 1} {
		got, err := labeler.ParseModeName(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err = labeler.ParseModeName("gray")
	assert.ErrorIs(t, err, labeler.ErrInvalidMode)
	assert.Equal(t, "darker", labeler.DarkerForeground.String())
	assert.Equal(t, "first-pass", labeler.FirstPass.String())
}

// TestProcessor_CancelledFirstQueryIsFinal checks that a scan abandoned
// through its context stays failed for every later caller.
func TestProcessor_CancelledFirstQueryIsFinal(t *testing.T) {
	p, err := labeler.NewFromGrid(gridOf("#.#"), labeler.BrighterForeground)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Count(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, labeler.Failed, p.State())

	_, err = p.Count(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestNew_TransparentBackground labels a PNG whose light shapes sit on a
// fully transparent white background; alpha must not change the binarization.
func TestNew_TransparentBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{A: 0xff})
	src.SetNRGBA(2, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})
	src.SetNRGBA(3, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 100})

	path := filepath.Join(t.TempDir(), "alpha.png")
	require.NoError(t, pixelgrid.Save(path, src))

	p, err := labeler.New(path, labeler.BrighterForeground)
	require.NoError(t, err)
	n, err := p.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
