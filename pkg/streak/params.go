package streak

// Params holds the thresholds consumed by Filter and Link.
type Params struct {
	// MinPoints is the minimum number of contour points for a candidate.
	// Shorter contours carry too little geometry to classify.
	MinPoints int

	// ShapeFactorMax is the upper bound on ShapeFactor. Compact round
	// contours exceed it and are dropped.
	ShapeFactorMax float64

	// RadiusDeviationMin is the lower bound on RadiusDeviation.
	RadiusDeviationMin float64

	// AreaMin and AreaMax bound the enclosed contour area in px².
	// AreaMax <= 0 disables the upper bound.
	AreaMin float64
	AreaMax float64

	// PerimeterMin is the lower bound on the contour arc length in px.
	// Zero disables it; the area and shape bounds already reject
	// degenerate contours.
	PerimeterMin float64

	// SlopeToleranceDeg is the maximum slope-angle separation, in degrees,
	// for two Edges to be linkable.
	SlopeToleranceDeg float64

	// MaxColinearOffset is the maximum perpendicular offset, in px, between
	// one Edge's centroid and the other Edge's best-fit line.
	MaxColinearOffset float64
}

// DefaultParams returns thresholds tuned for trails a few pixels wide in
// sky-survey frames.
func DefaultParams() Params {
	return Params{
		MinPoints:          10,
		ShapeFactorMax:     0.2,
		RadiusDeviationMin: 0.5,
		AreaMin:            10,
		AreaMax:            0,
		PerimeterMin:       0,
		SlopeToleranceDeg:  3,
		MaxColinearOffset:  5,
	}
}
