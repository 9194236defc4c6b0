package streak

// Detect runs the full classification pass over a contour list: quantify
// every contour, drop the shapes that do not look like streaks, and link
// collinear fragments into chains. The returned Edges keep the indices of
// their originating contours.
func Detect(contours []Contour, p Params) []Edge {
	edges := Filter(Quantify(contours), p)
	Link(edges, p)
	return edges
}
