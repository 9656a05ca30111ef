package labeler

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlabel/deadline"
	"github.com/katalvlaran/lvlabel/pixelgrid"
)

// Sentinel errors for labeler operations.
var (
	// ErrConstruction indicates the processor could not be built from its input.
	ErrConstruction = errors.New("labeler: cannot construct processor")
	// ErrTimeout indicates the scan did not finish within the deadline.
	ErrTimeout = deadline.ErrTimeout
	// ErrInvalidMode indicates a mode outside {0, 1}.
	ErrInvalidMode = errors.New("labeler: invalid mode")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("labeler: invalid option supplied")
	// ErrInvariant indicates a labeling result failed self-verification.
	ErrInvariant = errors.New("labeler: result invariant violated")
)

// DefaultDeadline bounds a single scan.
const DefaultDeadline = 20 * time.Second

// Mode selects which side of the luminance threshold is foreground.
type Mode int

const (
	// BrighterForeground treats light pixels as foreground (White after binarizing).
	BrighterForeground Mode = 0
	// DarkerForeground treats dark pixels as foreground (Black after binarizing)
	// and tracks the remaining pixels as background.
	DarkerForeground Mode = 1
)

// ParseMode validates an integer mode.
func ParseMode(m int) (Mode, error) {
	switch Mode(m) {
	case BrighterForeground, DarkerForeground:
		return Mode(m), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidMode, m)
}

// ParseModeName accepts "0", "1", "brighter" or "darker" (case-insensitive).
func ParseModeName(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brighter", "bright", "light":
		return BrighterForeground, nil
	case "darker", "dark":
		return DarkerForeground, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return ParseMode(n)
}

// String returns "brighter" or "darker".
func (m Mode) String() string {
	switch m {
	case BrighterForeground:
		return "brighter"
	case DarkerForeground:
		return "darker"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Foreground returns the binarized color of foreground pixels.
func (m Mode) Foreground() color.RGBA {
	if m == DarkerForeground {
		return pixelgrid.Black
	}
	return pixelgrid.White
}

// TracksBackground reports whether non-foreground pixels are collected.
func (m Mode) TracksBackground() bool {
	return m == DarkerForeground
}

// State is a step of the processor lifecycle.
type State int32

const (
	Created State = iota
	Binarizing
	FirstPass
	SecondPass
	Ready
	Failed
)

var stateNames = [...]string{"created", "binarizing", "first-pass", "second-pass", "ready", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// DefaultPalette holds the colors Colorize draws from.
var DefaultPalette = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // blue
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff}, // cyan
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // green
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, // magenta
	{R: 0xff, G: 0xc8, B: 0x00, A: 0xff}, // orange
	{R: 0xff, G: 0xaf, B: 0xaf, A: 0xff}, // pink
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
}

// defaultSeed replaces a zero seed so that an unset seed stays reproducible.
const defaultSeed int64 = 1

// Options holds processor settings.
type Options struct {
	// Deadline bounds the scan. Must be positive.
	Deadline time.Duration
	// Seed drives Colorize; 0 selects a fixed default seed.
	Seed int64
	// Palette is the set of colors Colorize picks from. Must be non-empty.
	Palette []color.RGBA
	// Marker is the bounding-box color.
	Marker color.RGBA
	// BackgroundColor overrides background pixels in Colorize (DarkerForeground only).
	BackgroundColor color.RGBA
	// Logger receives scan progress. Defaults to a discarding logger.
	Logger *slog.Logger

	err error
}

// Option configures a Processor.
type Option func(*Options)

// DefaultOptions returns a 20s deadline, the default palette, a red marker,
// a black background override and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Deadline:        DefaultDeadline,
		Palette:         DefaultPalette,
		Marker:          pixelgrid.Red,
		BackgroundColor: pixelgrid.Black,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// WithDeadline sets the scan budget. d ≤ 0 is an ErrOptionViolation.
func WithDeadline(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: deadline must be positive (%s)", ErrOptionViolation, d)
			return
		}
		o.Deadline = d
	}
}

// WithSeed sets the Colorize seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPalette replaces the Colorize palette. An empty palette is an ErrOptionViolation.
func WithPalette(p []color.RGBA) Option {
	return func(o *Options) {
		if len(p) == 0 {
			o.err = fmt.Errorf("%w: palette is empty", ErrOptionViolation)
			return
		}
		o.Palette = append([]color.RGBA(nil), p...)
	}
}

// WithMarker sets the bounding-box color.
func WithMarker(c color.RGBA) Option {
	return func(o *Options) { o.Marker = c }
}

// WithBackgroundColor sets the color forced onto background pixels by Colorize.
func WithBackgroundColor(c color.RGBA) Option {
	return func(o *Options) { o.BackgroundColor = c }
}

// WithLogger routes scan progress to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
