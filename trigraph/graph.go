package trigraph

import (
	"fmt"
	"sort"

	"github.com/delgraph/delgraph/geom"
)

// Graph is the derived graph built once from a triangulation and
// immutable thereafter. All analyses (delfin, dtscan) are read-only
// queries over it and may run concurrently with each other, but never
// with construction.
type Graph struct {
	mode       Mode
	pointCount int

	// triangles is dense, indexed by triangle index; empty unless the
	// mode populates triangle records.
	triangles []Triangle

	// edgeTriangles maps each edge to its incident triangle indices:
	// 2 for interior edges, 1 on the triangulation boundary.
	edgeTriangles map[geom.Edge][]int

	// edgeLengths maps each edge to its Euclidean length.
	edgeLengths map[geom.Edge]float64

	// vertexConn is the symmetric vertex adjacency; empty unless the
	// mode populates it.
	vertexConn map[int]map[int]struct{}
}

// newGraph allocates an empty graph sized for triangleCount triangles.
func newGraph(mode Mode, pointCount, triangleCount int) *Graph {
	g := &Graph{
		mode:          mode,
		pointCount:    pointCount,
		edgeTriangles: make(map[geom.Edge][]int, 3*triangleCount/2+1),
		edgeLengths:   make(map[geom.Edge]float64, 3*triangleCount/2+1),
		vertexConn:    make(map[int]map[int]struct{}, pointCount),
	}
	if mode.hasTriangles() {
		g.triangles = make([]Triangle, triangleCount)
	}
	return g
}

// link registers the canonical edge u-v with its length and, when the
// mode tracks adjacency, the symmetric vertex connection. Safe to call
// repeatedly: the length is a pure function of the endpoints, so
// re-registration is idempotent.
func (g *Graph) link(u, v int, length float64) {
	g.edgeLengths[geom.NewEdge(u, v)] = length
	if !g.mode.hasAdjacency() {
		return
	}
	g.connect(u, v)
	g.connect(v, u)
}

// connect inserts b into a's adjacency set.
func (g *Graph) connect(a, b int) {
	set, ok := g.vertexConn[a]
	if !ok {
		set = make(map[int]struct{}, 8)
		g.vertexConn[a] = set
	}
	set[b] = struct{}{}
}

// Mode returns the build mode this graph was constructed with.
func (g *Graph) Mode() Mode { return g.mode }

// PointCount returns the size of the point slice the graph was built
// from, including points no triangle references.
func (g *Graph) PointCount() int { return g.pointCount }

// TriangleCount returns the number of triangles in the triangulation.
// It is valid in every mode.
func (g *Graph) TriangleCount() int {
	if g.mode.hasTriangles() {
		return len(g.triangles)
	}
	// Without records, derive the count from edge incidence.
	max := -1
	for _, tris := range g.edgeTriangles {
		for _, t := range tris {
			if t > max {
				max = t
			}
		}
	}
	return max + 1
}

// Triangle returns the record for triangle index i.
// Returns ErrNoTriangleData if the mode did not populate records, or
// ErrTriangleRange if i is out of bounds.
func (g *Graph) Triangle(i int) (Triangle, error) {
	if !g.mode.hasTriangles() {
		return Triangle{}, ErrNoTriangleData
	}
	if i < 0 || i >= len(g.triangles) {
		return Triangle{}, fmt.Errorf("%w: %d of %d", ErrTriangleRange, i, len(g.triangles))
	}
	return g.triangles[i], nil
}

// Triangles returns the dense triangle-record slice, indexed by
// triangle index. The slice is a read-only view owned by the graph and
// must not be modified. Returns ErrNoTriangleData if the mode did not
// populate records.
func (g *Graph) Triangles() ([]Triangle, error) {
	if !g.mode.hasTriangles() {
		return nil, ErrNoTriangleData
	}
	return g.triangles, nil
}

// EdgeCount returns the number of distinct edges in the triangulation.
func (g *Graph) EdgeCount() int { return len(g.edgeLengths) }

// EdgeTriangles returns the indices of the triangles incident to e:
// two for an interior edge, one on the triangulation boundary, none if
// e is not an edge of the triangulation. The returned slice is a
// read-only view owned by the graph.
func (g *Graph) EdgeTriangles(e geom.Edge) []int {
	return g.edgeTriangles[e]
}

// EdgeLength returns the Euclidean length of e and whether e is an edge
// of the triangulation.
func (g *Graph) EdgeLength(e geom.Edge) (float64, bool) {
	l, ok := g.edgeLengths[e]
	return l, ok
}

// Neighbors returns the vertices directly joined to v by a triangle
// edge, in ascending order. Returns ErrNoAdjacency if the mode did not
// populate vertex adjacency; an unknown vertex yields an empty slice.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.mode.hasAdjacency() {
		return nil, ErrNoAdjacency
	}
	set := g.vertexConn[v]
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

// Degree returns the number of vertices directly joined to v.
// Returns ErrNoAdjacency if the mode did not populate adjacency.
func (g *Graph) Degree(v int) (int, error) {
	if !g.mode.hasAdjacency() {
		return 0, ErrNoAdjacency
	}
	return len(g.vertexConn[v]), nil
}

// Vertices returns every vertex that participates in at least one
// edge, in ascending order. Returns ErrNoAdjacency if the mode did not
// populate adjacency.
func (g *Graph) Vertices() ([]int, error) {
	if !g.mode.hasAdjacency() {
		return nil, ErrNoAdjacency
	}
	out := make([]int, 0, len(g.vertexConn))
	for v := range g.vertexConn {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}
