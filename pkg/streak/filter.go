package streak

// Filter returns the subsequence of edges whose descriptors satisfy every
// threshold in p. Indices are preserved, never renumbered: later stages and
// report consumers address Edges by their original index. Rejected Edges are
// dropped, not marked.
//
// Filtering is a pure, deterministic function of its input and thresholds,
// and it is idempotent: re-applying it to its own output is a no-op.
func Filter(edges []Edge, p Params) []Edge {
	kept := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if keep(e, p) {
			kept = append(kept, e)
		}
	}
	return kept
}

func keep(e Edge, p Params) bool {
	if len(e.Points) < p.MinPoints {
		return false
	}
	if e.ShapeFactor > p.ShapeFactorMax {
		return false
	}
	if e.RadiusDeviation < p.RadiusDeviationMin {
		return false
	}
	if e.Area < p.AreaMin {
		return false
	}
	if p.AreaMax > 0 && e.Area > p.AreaMax {
		return false
	}
	return e.Perimeter >= p.PerimeterMin
}
