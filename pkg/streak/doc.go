// Package streak classifies pixel contours into streak candidates and links
// fragmented streaks back into single logical objects.
//
// A streak is the trail a moving source (satellite, meteor, fast asteroid)
// leaves in an astronomical exposure: a thin, nearly linear bright region.
// The thresholded contour of such a region is long and elongated, while
// stars and round noise blobs produce compact, near-circular contours. This
// package works purely on contour geometry; it never touches pixel data.
//
// # Pipeline
//
// The stages run strictly in order, each consuming the complete output of
// the previous one:
//
//  1. Quantify: compute the geometric descriptors of every contour, one
//     Edge record per contour, indexed 0..N-1 in input order.
//  2. Filter: keep only the Edges whose descriptors look streak-like
//     (low shape factor, high radius deviation, enough area). Indices are
//     preserved, never renumbered.
//  3. Link: pair Edges that lie on a common line, recording each pairing in
//     the Connectivity field. A streak broken into fragments by local
//     threshold gaps becomes a chain of Edges.
//
// Detect runs all three. Chain and ChainBox then walk the resulting chains,
// typically once per ChainRoots entry, to aggregate one bounding box per
// logical streak.
//
// # Coordinate System
//
// Contour points are sub-pixel image coordinates: X is the column, Y is the
// row, origin at the top-left of the image. Angles are slope angles of
// undirected lines in degrees within [-90, 90].
//
// # Connectivity Chains
//
// Link only ever points a higher-index Edge at a strictly lower index, so
// following Connectivity strictly decreases the index and must reach the
// NoLink sentinel within N steps. That ordering rule is what makes chain
// traversal provably terminating; Chain still verifies it and reports
// ErrBrokenChain if a stored chain turns out cyclic or dangling, since that
// can only mean the records were corrupted after linking.
//
// Traversal bookkeeping (the visited set) is local to each Chain call. Edge
// records are never mutated after Link, so one Edge list can serve any
// number of concurrent reporting passes.
//
// # Degenerate Input
//
// Single-point and coincident-point contours still produce Edges so that
// indices stay aligned with the caller's contour list. Their descriptors are
// clamped (ShapeFactor 1, RadiusDeviation 0) to values every usable Filter
// configuration rejects; no stage returns an error for degenerate geometry.
package streak
