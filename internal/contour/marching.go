// Package contour extracts iso-level contours from brightness grids.
//
// The extractor implements the marching squares algorithm with linear
// interpolation, producing sub-pixel polylines at a fixed brightness level.
// Contours around closed regions come back as rings whose last point
// repeats the first; contours that run off the grid come back as open
// polylines.
package contour

import (
	"math"
	"sort"

	"github.com/astrokit/streakfinder/internal/imaging"
	"github.com/astrokit/streakfinder/pkg/geometry"
	"github.com/astrokit/streakfinder/pkg/streak"
)

// Cell edges named clockwise from the top.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// FindContours traces every contour of the grid at the given level.
//
// Parameters:
//   - g: The brightness grid to trace. Grids narrower than 2 samples in
//     either dimension contain no cells and yield no contours.
//   - level: The iso-level. A sample is inside a contour when its value is
//     greater than or equal to level.
//
// Returns:
//   - []streak.Contour: All traced polylines in deterministic order. Open
//     polylines come first, ordered by their starting crossing; rings
//     follow, closed by repeating their first point.
//
// # Algorithm
//
// The implementation follows the marching squares algorithm:
//
//  1. Classification: every 2x2 cell of neighboring samples is assigned a
//     4-bit case index describing which corners sit on or above the level.
//     Cells touching a NaN sample are skipped.
//
//  2. Interpolation: for each cell edge whose corner states differ, the
//     crossing position is interpolated linearly between the corner
//     values. Crossings are keyed by their grid edge, so neighboring
//     cells share identical crossing points.
//
//  3. Segments: each case contributes up to two segments joining the
//     crossings of the cell. The two ambiguous saddle cases are resolved
//     by comparing the cell's mean value against the level.
//
//  4. Walking: crossings form a graph of degree at most two. Chains are
//     walked starting from the endpoints of open polylines, then the
//     remaining crossings are walked as closed rings.
func FindContours(g *imaging.Grid, level float64) []streak.Contour {
	points := make(map[int]geometry.Point2D)
	adj := make(map[int][]int)

	// Grid edges get one key each: horizontal edges are even, vertical odd.
	hKey := func(x, y int) int { return 2 * (y*g.Width + x) }
	vKey := func(x, y int) int { return 2*(y*g.Width+x) + 1 }

	interp := func(v1, v2 float64) float64 {
		t := (level - v1) / (v2 - v1)
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}

	for y := 0; y < g.Height-1; y++ {
		for x := 0; x < g.Width-1; x++ {
			ul := g.At(x, y)
			ur := g.At(x+1, y)
			lr := g.At(x+1, y+1)
			ll := g.At(x, y+1)
			if math.IsNaN(ul) || math.IsNaN(ur) || math.IsNaN(lr) || math.IsNaN(ll) {
				continue
			}

			idx := 0
			if ul >= level {
				idx |= 1
			}
			if ur >= level {
				idx |= 2
			}
			if lr >= level {
				idx |= 4
			}
			if ll >= level {
				idx |= 8
			}

			var segs [][2]int
			switch idx {
			case 0, 15:
				continue
			case 1:
				segs = [][2]int{{edgeTop, edgeLeft}}
			case 2:
				segs = [][2]int{{edgeTop, edgeRight}}
			case 3:
				segs = [][2]int{{edgeLeft, edgeRight}}
			case 4:
				segs = [][2]int{{edgeRight, edgeBottom}}
			case 5:
				if (ul+ur+lr+ll)/4 >= level {
					segs = [][2]int{{edgeTop, edgeRight}, {edgeBottom, edgeLeft}}
				} else {
					segs = [][2]int{{edgeTop, edgeLeft}, {edgeRight, edgeBottom}}
				}
			case 6:
				segs = [][2]int{{edgeTop, edgeBottom}}
			case 7:
				segs = [][2]int{{edgeLeft, edgeBottom}}
			case 8:
				segs = [][2]int{{edgeLeft, edgeBottom}}
			case 9:
				segs = [][2]int{{edgeTop, edgeBottom}}
			case 10:
				if (ul+ur+lr+ll)/4 >= level {
					segs = [][2]int{{edgeTop, edgeLeft}, {edgeRight, edgeBottom}}
				} else {
					segs = [][2]int{{edgeTop, edgeRight}, {edgeBottom, edgeLeft}}
				}
			case 11:
				segs = [][2]int{{edgeRight, edgeBottom}}
			case 12:
				segs = [][2]int{{edgeLeft, edgeRight}}
			case 13:
				segs = [][2]int{{edgeTop, edgeRight}}
			case 14:
				segs = [][2]int{{edgeTop, edgeLeft}}
			}

			keyPoint := func(edge int) (int, geometry.Point2D) {
				switch edge {
				case edgeTop:
					return hKey(x, y), geometry.Point2D{X: float64(x) + interp(ul, ur), Y: float64(y)}
				case edgeRight:
					return vKey(x+1, y), geometry.Point2D{X: float64(x + 1), Y: float64(y) + interp(ur, lr)}
				case edgeBottom:
					return hKey(x, y+1), geometry.Point2D{X: float64(x) + interp(ll, lr), Y: float64(y + 1)}
				default:
					return vKey(x, y), geometry.Point2D{X: float64(x), Y: float64(y) + interp(ul, ll)}
				}
			}

			for _, s := range segs {
				ka, pa := keyPoint(s[0])
				kb, pb := keyPoint(s[1])
				points[ka] = pa
				points[kb] = pb
				adj[ka] = append(adj[ka], kb)
				adj[kb] = append(adj[kb], ka)
			}
		}
	}

	return walkCrossings(points, adj)
}

// walkCrossings assembles polylines from the crossing graph. Every node has
// degree one or two, so the graph decomposes into simple paths and cycles.
func walkCrossings(points map[int]geometry.Point2D, adj map[int][]int) []streak.Contour {
	keys := make([]int, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	visited := make(map[int]bool, len(points))
	walk := func(start int, closed bool) streak.Contour {
		path := streak.Contour{points[start]}
		visited[start] = true
		cur := start
		for {
			next := -1
			for _, n := range adj[cur] {
				if !visited[n] {
					next = n
					break
				}
			}
			if next == -1 {
				break
			}
			visited[next] = true
			path = append(path, points[next])
			cur = next
		}
		if closed {
			path = append(path, points[start])
		}
		return path
	}

	var contours []streak.Contour
	for _, k := range keys {
		if !visited[k] && len(adj[k]) == 1 {
			contours = append(contours, walk(k, false))
		}
	}
	for _, k := range keys {
		if !visited[k] {
			contours = append(contours, walk(k, true))
		}
	}
	return contours
}
