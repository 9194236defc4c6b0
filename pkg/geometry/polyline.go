package geometry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// closeTolerance is the maximum distance between a sequence's first and last
// points for the sequence to be treated as a closed ring.
const closeTolerance = 1e-9

// Closed reports whether the point sequence forms a closed ring, i.e. its
// first and last points coincide.
func Closed(points []Point2D) bool {
	if len(points) < 3 {
		return false
	}
	return points[0].Distance(points[len(points)-1]) <= closeTolerance
}

// PolylineArea returns the absolute area enclosed by the point sequence,
// computed with the shoelace sum. The ring is closed implicitly: the segment
// from the last point back to the first contributes to the sum. Sequences
// with fewer than 3 points enclose no area.
func PolylineArea(points []Point2D) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// PolylineLength returns the total arc length of the point sequence: the sum
// of consecutive segment lengths. A closed ring carries its closing segment
// by repeating the first point at the end; an open sequence contributes no
// closing segment. A single point has length 0; two points yield their
// pairwise distance.
func PolylineLength(points []Point2D) float64 {
	var sum float64
	for i := 1; i < len(points); i++ {
		sum += points[i].Distance(points[i-1])
	}
	return sum
}

// PolygonCentroid returns the area-weighted centroid of the polygon enclosed
// by the point sequence. For sequences that enclose no measurable area it
// falls back to the arithmetic mean of the points.
func PolygonCentroid(points []Point2D) Point2D {
	n := len(points)
	if n < 3 {
		return Centroid(points)
	}
	var signed, cx, cy float64
	for i, p := range points {
		q := points[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		signed += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	signed /= 2
	if math.Abs(signed) < 1e-12 {
		return Centroid(points)
	}
	return Point2D{X: cx / (6 * signed), Y: cy / (6 * signed)}
}

// Line is a best-fit line in slope/intercept form.
//
// For point sets with no x spread the slope/intercept form degenerates;
// Vertical is set instead, AngleDeg is 90 and Intercept holds the line's
// x position.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	AngleDeg  float64 `json:"angle_deg"`
	Vertical  bool    `json:"vertical,omitempty"`
}

// FitLine fits a least-squares line through the points. AngleDeg is the
// slope angle in degrees within [-90, 90]. A single point yields a
// horizontal line through it; a point set with no x spread yields a
// vertical line. FitLine never produces NaN for non-empty input.
func FitLine(points []Point2D) Line {
	if len(points) == 0 {
		return Line{}
	}
	if len(points) == 1 {
		return Line{Intercept: points[0].Y}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	meanX, varX := stat.MeanVariance(xs, nil)
	if varX < 1e-12 {
		return Line{
			Slope:     math.Inf(1),
			Intercept: meanX,
			AngleDeg:  90,
			Vertical:  true,
		}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Line{
		Slope:     slope,
		Intercept: intercept,
		AngleDeg:  math.Atan(slope) * 180 / math.Pi,
	}
}

// RadiusDeviation returns the coefficient of variation (standard deviation
// over mean) of the point-to-centroid distances. Round contours score near
// zero, elongated contours score high. Sequences with fewer than 2 points,
// or whose points all coincide, score 0 rather than dividing by zero.
func RadiusDeviation(points []Point2D) float64 {
	if len(points) < 2 {
		return 0
	}
	center := Centroid(points)
	dists := make([]float64, len(points))
	for i, p := range points {
		dists[i] = center.Distance(p)
	}
	mean, std := stat.MeanStdDev(dists, nil)
	if mean <= 0 {
		return 0
	}
	return std / mean
}

// AngleSeparation returns the separation of two line angles in degrees,
// accounting for the 180-degree periodicity of undirected lines: 89 and -89
// are 2 degrees apart, not 178. The result is within [0, 90].
func AngleSeparation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 180)
	if d > 90 {
		d = 180 - d
	}
	return d
}

// PerpendicularDistance returns the distance from p to the infinite line
// through the point on at the given angle in degrees.
func PerpendicularDistance(p, on Point2D, angleDeg float64) float64 {
	rad := angleDeg * math.Pi / 180
	dx := p.X - on.X
	dy := p.Y - on.Y
	return math.Abs(dx*math.Sin(rad) - dy*math.Cos(rad))
}
