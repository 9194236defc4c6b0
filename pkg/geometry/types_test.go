package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2D_Distance(t *testing.T) {
	assert.Equal(t, 5.0, Point2D{X: 0, Y: 0}.Distance(Point2D{X: 3, Y: 4}))
	assert.Equal(t, 0.0, Point2D{X: 2, Y: 2}.Distance(Point2D{X: 2, Y: 2}))
}

func TestRect_Union(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "disjoint fragments",
			a:    Rect{X: 0, Y: 0, Width: 20, Height: 43},
			b:    Rect{X: 25, Y: 53, Width: 20, Height: 40},
			want: Rect{X: 0, Y: 0, Width: 45, Height: 93},
		},
		{
			name: "nested",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 10, Y: 10, Width: 5, Height: 5},
			want: Rect{X: 0, Y: 0, Width: 100, Height: 100},
		},
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: Rect{X: 0, Y: 0, Width: 15, Height: 15},
		},
		{
			name: "identical",
			a:    Rect{X: 3, Y: 4, Width: 5, Height: 6},
			b:    Rect{X: 3, Y: 4, Width: 5, Height: 6},
			want: Rect{X: 3, Y: 4, Width: 5, Height: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Union(tt.b))
			assert.Equal(t, tt.want, tt.b.Union(tt.a), "union should be commutative")
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	assert.True(t, r.Contains(Point2D{X: 15, Y: 15}))
	assert.True(t, r.Contains(Point2D{X: 10, Y: 10}), "min corner is inside")
	assert.True(t, r.Contains(Point2D{X: 30, Y: 30}), "max corner is inside")
	assert.False(t, r.Contains(Point2D{X: 31, Y: 15}))
	assert.False(t, r.Contains(Point2D{X: 15, Y: 5}))
}

func TestRect_Center(t *testing.T) {
	assert.Equal(t, Point2D{X: 12, Y: 23}, Rect{X: 10, Y: 20, Width: 4, Height: 6}.Center())
}

func TestCentroid(t *testing.T) {
	square := []Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	assert.Equal(t, Point2D{X: 1, Y: 1}, Centroid(square))

	assert.Equal(t, Point2D{}, Centroid(nil), "empty set centers on the origin")
	assert.Equal(t, Point2D{X: 3, Y: 7}, Centroid([]Point2D{{X: 3, Y: 7}}))
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{{X: 3, Y: 7}, {X: 1, Y: 9}, {X: 5, Y: 2}}
	assert.Equal(t, Rect{X: 1, Y: 2, Width: 4, Height: 7}, BoundingBox(points))

	assert.Equal(t, Rect{}, BoundingBox(nil))

	single := BoundingBox([]Point2D{{X: 4, Y: 5}})
	assert.Equal(t, Rect{X: 4, Y: 5, Width: 0, Height: 0}, single)
}

func TestGenerateCirclePoints(t *testing.T) {
	center := Point2D{X: 1, Y: 1}
	points := GenerateCirclePoints(center.X, center.Y, 2, 4)

	assert.Len(t, points, 4)
	assert.InDelta(t, 3, points[0].X, 1e-12)
	assert.InDelta(t, 1, points[0].Y, 1e-12)
	for _, p := range points {
		assert.InDelta(t, 2, center.Distance(p), 1e-12)
	}
}
