// Package pixelgrid provides the in-memory RGB raster consumed by the
// labeler, along with file loading and saving.
//
// What:
//
//   - Grid is a W×H array of color.RGBA samples that also implements
//     image.Image, so any standard encoder can render it.
//   - Luminance and Binarize classify a single pixel as dark or light.
//   - Load decodes BMP, PNG, JPEG, GIF, TIFF and WebP files.
//   - Save encodes PNG, JPEG, GIF, BMP and TIFF chosen by file extension.
//
// Errors:
//
//   - ErrLoad: any failure to obtain a grid from a file; every Load error wraps it.
//   - ErrUnsupportedFormat: the extension is not one of the supported encodings.
//   - ErrEmptyImage: the decoded image has zero width or height.
package pixelgrid
