package streak

import (
	"math"

	"github.com/astrokit/streakfinder/pkg/geometry"
)

// degeneratePerimeter is the arc length below which a contour has no usable
// shape and its descriptors are clamped to their degenerate sentinels.
const degeneratePerimeter = 1e-9

// Quantify computes the geometric descriptors of every contour, returning
// one Edge per contour with Index assigned 0..N-1 in input order and
// Connectivity initialized to NoLink.
//
// Degenerate contours (single points, coincident points) still produce an
// Edge so that indices stay aligned with the input list; their ShapeFactor
// clamps to 1 and RadiusDeviation to 0, values the Filter rejects under any
// usable thresholds.
func Quantify(contours []Contour) []Edge {
	edges := make([]Edge, len(contours))
	for i, c := range contours {
		edges[i] = quantify(i, c)
	}
	return edges
}

func quantify(index int, c Contour) Edge {
	center := geometry.Centroid(c)
	box := geometry.BoundingBox(c)
	area := geometry.PolylineArea(c)
	perimeter := geometry.PolylineLength(c)

	shape := 1.0
	if perimeter > degeneratePerimeter {
		shape = clamp(4*math.Pi*area/(perimeter*perimeter), 0, 1)
	}

	line := geometry.FitLine(c)

	return Edge{
		Index:           index,
		Points:          c,
		XCenter:         center.X,
		YCenter:         center.Y,
		XMin:            box.X,
		XMax:            box.X + box.Width,
		YMin:            box.Y,
		YMax:            box.Y + box.Height,
		Area:            area,
		Perimeter:       perimeter,
		ShapeFactor:     shape,
		RadiusDeviation: geometry.RadiusDeviation(c),
		Slope:           line.Slope,
		SlopeAngle:      line.AngleDeg,
		Intercept:       line.Intercept,
		Connectivity:    NoLink,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
