package pixelgrid

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Sentinel errors for loading and saving grids.
var (
	// ErrLoad is wrapped by every error returned from Load.
	ErrLoad = errors.New("pixelgrid: cannot load image")
	// ErrUnsupportedFormat indicates a file extension with no codec.
	ErrUnsupportedFormat = errors.New("pixelgrid: unsupported image format")
	// ErrEmptyImage indicates a decoded image with zero width or height.
	ErrEmptyImage = errors.New("pixelgrid: image has no pixels")
)

// Format names one supported encoding.
type Format string

// Supported formats.
const (
	BMP  Format = "bmp"
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	TIFF Format = "tiff"
	WEBP Format = "webp"
)

var extFormats = map[string]Format{
	".bmp":  BMP,
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".tif":  TIFF,
	".tiff": TIFF,
	".webp": WEBP,
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Load reads and decodes the image at path into a new grid.
// Missing files, unsupported extensions, corrupt data and empty images
// all return an error wrapping ErrLoad.
func Load(path string) (*Grid, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	g, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	return g, nil
}

// Decode reads one image of the given format from r.
func Decode(r io.Reader, format Format) (*Grid, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case BMP:
		img, err = bmp.Decode(r)
	case PNG:
		img, err = png.Decode(r)
	case JPEG:
		img, err = jpeg.Decode(r)
	case GIF:
		img, err = gif.Decode(r)
	case TIFF:
		img, err = tiff.Decode(r)
	case WEBP:
		img, err = webp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return FromImage(img), nil
}

// Save encodes img to path using the format implied by its extension.
// WebP has no encoder and is rejected with ErrUnsupportedFormat.
func Save(path string, img image.Image) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if format == WEBP {
		return fmt.Errorf("%w: webp encoding", ErrUnsupportedFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pixelgrid: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Encode(f, img, format)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case BMP:
		return bmp.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case GIF:
		return gif.Encode(w, img, nil)
	case TIFF:
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
