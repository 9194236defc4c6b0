package streak

import (
	"math"

	"github.com/astrokit/streakfinder/pkg/geometry"
)

// Link populates the Connectivity fields of the given Edges in place,
// pairing fragments that lie on a common line. No Edges are added or
// removed, and no other field is touched.
//
// For each Edge, every earlier-indexed Edge is scored for compatibility: the
// pair must agree in slope angle within SlopeToleranceDeg (with wrap-around
// at the ±90° boundary) and each centroid must sit within MaxColinearOffset
// of the other Edge's best-fit line. Among eligible partners the lowest
// combined score wins. Connectivity is assigned at most once per Edge and
// always points from the higher index to the lower, so following pointers
// strictly decreases the index: chains terminate within N steps and can
// never form a cycle or give one Edge two outgoing links.
func Link(edges []Edge, p Params) {
	for j := 1; j < len(edges); j++ {
		best := NoLink
		bestScore := math.Inf(1)
		for i := 0; i < j; i++ {
			score, eligible := linkScore(edges[i], edges[j], p)
			if !eligible || score >= bestScore {
				continue
			}
			best = edges[i].Index
			bestScore = score
		}
		edges[j].Connectivity = best
	}
}

// linkScore returns the combined angular plus positional distance between
// two Edges, each term normalized by its tolerance, and whether the pair is
// eligible for linking at all. Lower scores are better matches.
//
// A least-squares line passes through the centroid of its own points, so
// each Edge's centroid anchors the infinite line for the offset measurement.
func linkScore(a, b Edge, p Params) (float64, bool) {
	sep := geometry.AngleSeparation(a.SlopeAngle, b.SlopeAngle)
	if sep > p.SlopeToleranceDeg {
		return 0, false
	}

	offset := math.Max(
		geometry.PerpendicularDistance(b.Centroid(), a.Centroid(), a.SlopeAngle),
		geometry.PerpendicularDistance(a.Centroid(), b.Centroid(), b.SlopeAngle),
	)
	if offset > p.MaxColinearOffset {
		return 0, false
	}

	score := 0.0
	if p.SlopeToleranceDeg > 0 {
		score += sep / p.SlopeToleranceDeg
	}
	if p.MaxColinearOffset > 0 {
		score += offset / p.MaxColinearOffset
	}
	return score, true
}
