package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Grid is a dense 2-D raster of float64 brightness samples.
//
// Samples are stored in row-major order: the value at column x of row y is
// Pix[y*Width+x]. The zero value is not usable; construct grids with
// NewGrid or FromImage.
type Grid struct {
	// Width is the number of columns.
	Width int `json:"width"`

	// Height is the number of rows.
	Height int `json:"height"`

	// Pix holds Width*Height samples in row-major order.
	Pix []float64 `json:"-"`
}

// NewGrid allocates a zero-filled grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// At returns the sample at (x, y). Coordinates must be inside the grid.
func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.Width+x]
}

// Set stores v at (x, y). Coordinates must be inside the grid.
func (g *Grid) Set(x, y int, v float64) {
	g.Pix[y*g.Width+x] = v
}

// Subtract shifts every sample down by v in place. The pipeline uses it to
// remove the estimated background level before contour extraction.
func (g *Grid) Subtract(v float64) {
	for i := range g.Pix {
		g.Pix[i] -= v
	}
}

// MinMax returns the smallest and largest sample in the grid, ignoring NaN.
// A grid with no valid samples reports (0, 0).
func (g *Grid) MinMax() (min, max float64) {
	found := false
	for _, v := range g.Pix {
		if math.IsNaN(v) {
			continue
		}
		if !found {
			min, max = v, v
			found = true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// FromImage converts a decoded raster image to a brightness grid.
//
// Pixels are linearized from sRGB before the Rec. 709 luminance weights are
// applied, so grid values track linear flux rather than gamma-encoded luma.
// The result is scaled to the 0-255 range: black maps to 0 and white to 255,
// while mid grays land below their stored byte value (sRGB 128 is about 21.6%
// linear). Fully transparent pixels are left at 0.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			lr, lg, lb := c.LinearRgb()
			lum := 0.2126*lr + 0.7152*lg + 0.0722*lb
			g.Set(x-bounds.Min.X, y-bounds.Min.Y, lum*255)
		}
	}
	return g
}
