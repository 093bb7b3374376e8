// Package hull extracts an ordered concave-hull (alpha-shape) boundary
// for a subset of a point set.
//
// What:
//
//	The subset is re-triangulated in isolation; every triangle edge
//	shorter than alpha is counted. Interior edges of a triangulation
//	are shared by exactly two triangles, so edges counted exactly once
//	are, by construction, on the outer boundary. Those boundary edges
//	are then stitched into one continuous closed walk.
//
// Determinism:
//
//	The walk starts at the lexicographically smallest boundary edge and
//	always follows the smallest unused incident edge, so the same
//	subset and alpha yield the same ordered boundary on every run.
//
// Errors:
//
//   - ErrNoTriangulation - the subset is degenerate and produced no triangles.
//   - ErrNoBoundary      - no edge under alpha occurs exactly once.
//   - ErrOpenBoundary    - boundary edges do not form a single closed walk
//     (disconnected or branching boundary); reported, never silently truncated.
package hull

import (
	"errors"
	"sort"

	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/triangulate"
)

// Sentinel errors for concave-hull extraction.
var (
	// ErrNoTriangulation indicates the vertex subset could not be triangulated.
	ErrNoTriangulation = errors.New("hull: subset triangulation produced no triangles")

	// ErrNoBoundary indicates no edge meets the alpha criterion exactly once.
	ErrNoBoundary = errors.New("hull: no boundary edges under alpha")

	// ErrOpenBoundary indicates boundary edges cannot be linked into a single closed path.
	ErrOpenBoundary = errors.New("hull: boundary does not form a single closed path")
)

// Concave returns the ordered boundary of the point subset named by
// indices, as global vertex indices forming one closed walk (the
// starting vertex is not repeated at the end). Alpha is the edge-length
// cutoff of the alpha shape: only edges strictly shorter than alpha
// participate.
//
// Complexity: O(k log k) for the subset triangulation + O(B log B) for
// the walk, where k = len(indices) and B = boundary edge count.
func Concave(points []geom.Point, indices []int, alpha float64) ([]int, error) {
	tris := triangulate.Subset(points, indices)
	if len(tris) == 0 {
		return nil, ErrNoTriangulation
	}

	// Count alpha-admissible edges; singly-counted ones are boundary.
	count := make(map[geom.Edge]int, len(tris))
	for i := 0; i < len(tris); i += 3 {
		for k := 0; k < 3; k++ {
			u, v := tris[i+k], tris[i+(k+1)%3]
			if points[u].Distance(points[v]) < alpha {
				count[geom.NewEdge(u, v)]++
			}
		}
	}

	boundary := make([]geom.Edge, 0, len(count))
	for e, c := range count {
		if c == 1 {
			boundary = append(boundary, e)
		}
	}
	if len(boundary) == 0 {
		return nil, ErrNoBoundary
	}
	sort.Slice(boundary, func(i, j int) bool {
		if boundary[i].U != boundary[j].U {
			return boundary[i].U < boundary[j].U
		}
		return boundary[i].V < boundary[j].V
	})

	return stitch(boundary)
}

// stitch links boundary edges into one closed walk by repeated
// extension from the smallest edge, following shared endpoints.
func stitch(boundary []geom.Edge) ([]int, error) {
	incident := make(map[int][]geom.Edge, len(boundary))
	for _, e := range boundary {
		incident[e.U] = append(incident[e.U], e)
		incident[e.V] = append(incident[e.V], e)
	}

	start := boundary[0]
	used := make(map[geom.Edge]bool, len(boundary))
	used[start] = true

	path := []int{start.U}
	cur := start.V
	for cur != start.U {
		path = append(path, cur)

		var next geom.Edge
		found := false
		for _, e := range incident[cur] {
			if !used[e] {
				next = e
				found = true
				break
			}
		}
		if !found {
			// Dead end: the walk cannot continue, the boundary is open.
			return nil, ErrOpenBoundary
		}
		used[next] = true
		cur = next.Other(cur)
	}

	if len(used) != len(boundary) {
		// Closed a loop early: disconnected or branching boundary.
		return nil, ErrOpenBoundary
	}
	return path, nil
}
