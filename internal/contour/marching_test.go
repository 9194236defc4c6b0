package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrokit/streakfinder/internal/imaging"
	"github.com/astrokit/streakfinder/pkg/geometry"
)

// plateauGrid builds a 7x7 grid of zeros with a 3x3 block of 10s centered
// at (3, 3).
func plateauGrid() *imaging.Grid {
	g := imaging.NewGrid(7, 7)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			g.Set(x, y, 10)
		}
	}
	return g
}

// gradientGrid builds a 6x5 grid where every sample equals its column.
func gradientGrid() *imaging.Grid {
	g := imaging.NewGrid(6, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			g.Set(x, y, float64(x))
		}
	}
	return g
}

func TestFindContoursClosedRing(t *testing.T) {
	contours := FindContours(plateauGrid(), 5)
	require.Len(t, contours, 1)

	c := contours[0]
	assert.True(t, geometry.Closed(c))
	assert.Len(t, c, 13)
	assert.Equal(t, geometry.Rect{X: 1.5, Y: 1.5, Width: 3, Height: 3}, geometry.BoundingBox(c))
}

func TestFindContoursOpenPolyline(t *testing.T) {
	contours := FindContours(gradientGrid(), 2.5)
	require.Len(t, contours, 1)

	c := contours[0]
	require.Len(t, c, 5)
	assert.False(t, geometry.Closed(c))
	for i, p := range c {
		assert.InDelta(t, 2.5, p.X, 1e-9)
		assert.InDelta(t, float64(i), p.Y, 1e-9)
	}
}

func TestFindContoursInterpolation(t *testing.T) {
	g := imaging.NewGrid(2, 2)
	g.Set(0, 0, 0)
	g.Set(1, 0, 10)
	g.Set(0, 1, 0)
	g.Set(1, 1, 10)

	contours := FindContours(g, 2.5)
	require.Len(t, contours, 1)
	for _, p := range contours[0] {
		assert.InDelta(t, 0.25, p.X, 1e-9)
	}
}

func TestFindContoursUniformGrids(t *testing.T) {
	below := imaging.NewGrid(5, 5)
	assert.Empty(t, FindContours(below, 5))

	above := imaging.NewGrid(5, 5)
	for i := range above.Pix {
		above.Pix[i] = 10
	}
	assert.Empty(t, FindContours(above, 5))
}

func TestFindContoursSkipsNaNCells(t *testing.T) {
	g := gradientGrid()
	g.Set(2, 1, math.NaN())

	contours := FindContours(g, 2.5)
	require.Len(t, contours, 1)
	require.Len(t, contours[0], 3)
	assert.InDelta(t, 2.0, contours[0][0].Y, 1e-9)
	assert.InDelta(t, 4.0, contours[0][2].Y, 1e-9)
}

func TestFindContoursSaddle(t *testing.T) {
	g := imaging.NewGrid(2, 2)
	g.Set(0, 0, 10)
	g.Set(1, 1, 10)

	contours := FindContours(g, 5)
	require.Len(t, contours, 2)
	for _, c := range contours {
		assert.Len(t, c, 2)
	}
}

func TestFindContoursDeterministic(t *testing.T) {
	g := plateauGrid()
	g.Set(0, 0, 8)

	first := FindContours(g, 5)
	second := FindContours(g, 5)
	assert.Equal(t, first, second)
}

func TestFindContoursTinyGrid(t *testing.T) {
	assert.Empty(t, FindContours(imaging.NewGrid(1, 5), 1))
	assert.Empty(t, FindContours(imaging.NewGrid(5, 1), 1))
}
