package trigraph

import (
	"fmt"

	"github.com/delgraph/delgraph/geom"
)

// Outer is the sentinel vertex index marking the "infinite" node a 3D
// Delaunay provider attaches to tetrahedra on the convex hull.
const Outer = -1

// Tetrahedron is one cell of a tetrahedral mesh: four vertex indices,
// any of which may be Outer for hull cells.
type Tetrahedron [4]int

// BuildMesh populates a derived graph from a 3D tetrahedral mesh,
// producing the same edge-length and vertex-adjacency structures the
// 2D build feeds to dtscan. Triangle records have no 3D counterpart,
// so the resulting graph is in ModeClusters and void detection cannot
// run on it.
//
// A cell with exactly one Outer node contributes the three edges of
// its real boundary triangle; a full cell contributes all six edges.
// Cells with two or more Outer nodes carry no interior structure and
// are skipped.
//
// Fails fast with ErrVertexRange on a real index outside points, or
// ErrNonFinite on NaN/infinite coordinates.
//
// Complexity: O(T). Memory: O(E + V).
func BuildMesh(points []geom.Point3, tets []Tetrahedron, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for _, tet := range tets {
		for _, v := range tet {
			if v == Outer {
				continue
			}
			if v < 0 || v >= len(points) {
				return nil, fmt.Errorf("%w: vertex %d with %d points", ErrVertexRange, v, len(points))
			}
		}
	}
	for i, p := range points {
		if !p.Finite() {
			return nil, fmt.Errorf("%w: point %d", ErrNonFinite, i)
		}
	}

	g := newGraph(ModeClusters, len(points), 0)
	for i, tet := range tets {
		if i%1024 == 0 {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
		}

		verts := make([]int, 0, 4)
		for _, v := range tet {
			if v != Outer {
				verts = append(verts, v)
			}
		}
		switch len(verts) {
		case 4, 3:
			// Full cell: all six edges pairwise.
			// Hull cell (one Outer node): the three edges of the real
			// boundary triangle.
			for a := 0; a < len(verts); a++ {
				for b := a + 1; b < len(verts); b++ {
					g.link(verts[a], verts[b], points[verts[a]].Distance(points[verts[b]]))
				}
			}
		default:
			// Fewer than three real vertices: no registerable face.
		}
	}
	return g, nil
}
