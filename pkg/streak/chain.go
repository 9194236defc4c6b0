package streak

import (
	"errors"
	"fmt"

	"github.com/astrokit/streakfinder/pkg/geometry"
)

// ErrBrokenChain reports a connectivity structure that violates the Linker's
// construction rules: a pointer to a missing index, or a cycle. Either means
// the Edge records were corrupted after linking; it is an internal
// consistency fault, not a recoverable input condition.
var ErrBrokenChain = errors.New("broken connectivity chain")

// Chain returns every Edge reachable from the start index by following
// Connectivity pointers, in traversal order with the start Edge first.
//
// The traversal is iterative and its visited bookkeeping is local to the
// call; Edge records are never mutated, so concurrent traversals over the
// same list are safe.
func Chain(edges []Edge, start int) ([]Edge, error) {
	byIndex := make(map[int]int, len(edges))
	for i, e := range edges {
		byIndex[e.Index] = i
	}

	visited := make(map[int]bool)
	var chain []Edge
	for cur := start; cur != NoLink; {
		i, ok := byIndex[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no edge with index %d", ErrBrokenChain, cur)
		}
		if visited[cur] {
			return nil, fmt.Errorf("%w: cycle through index %d", ErrBrokenChain, cur)
		}
		visited[cur] = true
		chain = append(chain, edges[i])
		cur = edges[i].Connectivity
	}
	return chain, nil
}

// ChainBox returns the union bounding box of every Edge reachable from the
// start index: the box covering one whole logical streak when called on a
// chain root.
func ChainBox(edges []Edge, start int) (geometry.Rect, error) {
	chain, err := Chain(edges, start)
	if err != nil {
		return geometry.Rect{}, err
	}
	if len(chain) == 0 {
		return geometry.Rect{}, fmt.Errorf("%w: empty chain from index %d", ErrBrokenChain, start)
	}

	box := chain[0].Bounds()
	for _, e := range chain[1:] {
		box = box.Union(e.Bounds())
	}
	return box, nil
}

// ChainRoots returns the Edges that are not the Connectivity target of any
// other Edge. Aggregating from each root covers every chain exactly once.
func ChainRoots(edges []Edge) []Edge {
	targeted := make(map[int]bool, len(edges))
	for _, e := range edges {
		if e.Connectivity != NoLink {
			targeted[e.Connectivity] = true
		}
	}

	var roots []Edge
	for _, e := range edges {
		if !targeted[e.Index] {
			roots = append(roots, e)
		}
	}
	return roots
}
