// Package imaging loads astronomical frames into float64 sample grids and
// estimates their background statistics.
//
// This package implements the input side of the detection pipeline: decoding
// image files, reducing them to a single brightness channel, optional
// smoothing, and robust noise estimation. All downstream analysis operates
// on the Grid type produced here.
//
// # Coordinate System
//
// Grid coordinates are 0-based with origin at the top-left corner:
//   - X: horizontal position (0 = leftmost column)
//   - Y: vertical position (0 = topmost row)
//
// Samples are stored in row-major order, so the sample at (x, y) lives at
// index y*Width+x of Grid.Pix. FITS data units are mapped in storage order,
// with NAXIS1 as the X axis.
//
// # Supported Formats
//
// Raster formats (PNG, JPEG, GIF, TIFF, BMP) are decoded through the
// disintegration/imaging loader, linearized from sRGB and reduced to
// Rec. 709 luminance on a 0-255 scale. FITS files are parsed with
// astrogo/fitsio and keep their native dynamic range, including
// BSCALE/BZERO rescaling.
//
// # Background Estimation
//
// SigmaClippedStats provides the median and standard deviation of the sky
// background by iteratively discarding samples far from the median. The
// detection pipeline subtracts the median and derives its contour level
// from the clipped standard deviation.
//
// # Error Handling
//
// Functions return errors for missing or undecodable files, unsupported
// FITS layouts (non 2-D data units, unknown BITPIX), and truncated data
// units. Degenerate statistics inputs (empty or all-NaN slices) return a
// zero NoiseStats rather than an error.
package imaging
