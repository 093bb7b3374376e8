// Package triangulate adapts a Delaunay triangulation library
// (github.com/fogleman/delaunay) to the flat vertex-index-triple
// contract consumed by trigraph and hull.
//
// What:
//
//   - Triangles: triangulate a full point set.
//   - Subset: triangulate a subset of a point set in isolation, with the
//     result mapped back to the global vertex indices.
//
// Degenerate inputs (fewer than three points, or an entirely collinear
// point set) yield no triangles rather than an error: downstream
// consumers treat an empty triangulation as an empty derived graph.
//
// Complexity: O(n log n) expected, inherited from the provider.
package triangulate

import (
	"github.com/fogleman/delaunay"

	"github.com/delgraph/delgraph/geom"
)

// Triangles computes the Delaunay triangulation of points and returns
// the triangle vertex indices as a flat slice of length 3·t, grouped in
// triples. Degenerate point sets return an empty slice.
func Triangles(points []geom.Point) []int {
	if len(points) < 3 {
		return nil
	}
	dp := make([]delaunay.Point, len(points))
	for i, p := range points {
		dp[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(dp)
	if err != nil {
		// The provider only fails on degenerate input (collinear or
		// coincident points); map that to "no triangles".
		return nil
	}
	return tri.Triangles
}

// Subset triangulates points[indices[0]], points[indices[1]], ... in
// isolation and returns flat triples of global vertex indices, i.e.
// values drawn from indices rather than positions within it.
func Subset(points []geom.Point, indices []int) []int {
	sub := make([]geom.Point, len(indices))
	for i, idx := range indices {
		sub[i] = points[idx]
	}
	local := Triangles(sub)
	global := make([]int, len(local))
	for i, li := range local {
		global[i] = indices[li]
	}
	return global
}
