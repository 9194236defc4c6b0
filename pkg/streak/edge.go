package streak

import (
	"encoding/json"
	"math"

	"github.com/astrokit/streakfinder/pkg/geometry"
)

// NoLink is the Connectivity sentinel for an Edge that does not continue
// into another Edge.
const NoLink = -1

// Contour is an ordered sequence of sub-pixel contour coordinates, open or
// closed, with X the image column and Y the image row. A closed contour
// repeats its first point at the end.
type Contour []geometry.Point2D

// Edge is the geometric record for one contour: its shape descriptors, its
// bounding box and, after linking, the index of the Edge it continues into.
type Edge struct {
	// Index identifies the Edge. Assigned 0..N-1 in contour input order by
	// Quantify and stable across filtering.
	Index int `json:"index"`

	// Points is the originating contour, kept for reporting.
	Points Contour `json:"-"`

	// XCenter and YCenter are the arithmetic mean of the contour points.
	XCenter float64 `json:"x_center"`
	YCenter float64 `json:"y_center"`

	// XMin through YMax span the contour's axis-aligned bounding box.
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`

	// Area is the absolute area enclosed by the contour in px².
	Area float64 `json:"area"`

	// Perimeter is the contour arc length in px. Zero only for a
	// single-point contour.
	Perimeter float64 `json:"perimeter"`

	// ShapeFactor is 4π·Area/Perimeter² clamped to [0, 1]: near 1 for
	// compact round contours, near 0 for thin elongated ones. Degenerate
	// contours (Perimeter ≈ 0) clamp to 1 so the Filter drops them.
	ShapeFactor float64 `json:"shape_factor"`

	// RadiusDeviation is the coefficient of variation of point-to-centroid
	// distances: near 0 for round contours, high for streaks. Degenerate
	// contours score 0 so the Filter drops them.
	RadiusDeviation float64 `json:"radius_deviation"`

	// Slope, SlopeAngle and Intercept describe the least-squares best-fit
	// line through the contour. SlopeAngle is in degrees within [-90, 90].
	// For vertical fits Slope is +Inf, SlopeAngle is 90 and Intercept holds
	// the line's x position.
	Slope      float64 `json:"slope"`
	SlopeAngle float64 `json:"slope_angle"`
	Intercept  float64 `json:"intercept"`

	// Connectivity is the Index of the Edge this one continues into, or
	// NoLink. Set by Link and always strictly less than Index when set.
	Connectivity int `json:"connectivity"`
}

// Bounds returns the Edge's bounding box.
func (e Edge) Bounds() geometry.Rect {
	return geometry.Rect{X: e.XMin, Y: e.YMin, Width: e.XMax - e.XMin, Height: e.YMax - e.YMin}
}

// Centroid returns the Edge's center point.
func (e Edge) Centroid() geometry.Point2D {
	return geometry.Point2D{X: e.XCenter, Y: e.YCenter}
}

// MarshalJSON encodes a vertical fit's infinite slope as null, since JSON
// numbers cannot represent infinities. SlopeAngle and Intercept still
// describe the line in that case.
func (e Edge) MarshalJSON() ([]byte, error) {
	type alias Edge
	out := struct {
		alias
		Slope *float64 `json:"slope"`
	}{alias: alias(e)}
	if !math.IsInf(e.Slope, 0) && !math.IsNaN(e.Slope) {
		out.Slope = &e.Slope
	}
	return json.Marshal(out)
}
