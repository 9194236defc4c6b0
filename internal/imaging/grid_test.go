package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(4, 3)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	require.Len(t, g.Pix, 12)
	for _, v := range g.Pix {
		assert.Zero(t, v)
	}
}

func TestGridAtSet(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(2, 1, 7.5)
	assert.Equal(t, 7.5, g.At(2, 1))
	assert.Equal(t, 7.5, g.Pix[1*4+2])
	assert.Zero(t, g.At(1, 2))
}

func TestGridSubtract(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, 10)
	g.Set(1, 1, 3)
	g.Subtract(2)

	assert.Equal(t, 8.0, g.At(0, 0))
	assert.Equal(t, -2.0, g.At(0, 1))
	assert.Equal(t, 1.0, g.At(1, 1))
}

func TestGridMinMax(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, -4)
	g.Set(1, 0, math.NaN())
	g.Set(2, 0, 11)

	min, max := g.MinMax()
	assert.Equal(t, -4.0, min)
	assert.Equal(t, 11.0, max)

	empty := NewGrid(0, 0)
	min, max = empty.MinMax()
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 100})
	img.SetGray(2, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 128})
	img.SetGray(1, 1, color.Gray{Y: 50})

	g := FromImage(img)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)

	// Black and white are fixed points of the sRGB transfer curve; mid grays
	// land well below their stored byte value once linearized.
	assert.InDelta(t, 0, g.At(0, 0), 1e-9)
	assert.InDelta(t, 32.50, g.At(1, 0), 0.05)
	assert.InDelta(t, 255, g.At(2, 0), 1e-6)
	assert.InDelta(t, 55.04, g.At(0, 1), 0.05)
	assert.InDelta(t, 8.13, g.At(1, 1), 0.05)
}

func TestFromImageTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	g := FromImage(img)
	assert.Zero(t, g.At(0, 0))
	assert.InDelta(t, 255, g.At(1, 0), 1e-6)
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 7, 8, 9))
	img.SetGray(5, 7, color.Gray{Y: 42})

	g := FromImage(img)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	assert.InDelta(t, 5.90, g.At(0, 0), 0.05)
}
