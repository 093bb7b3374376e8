package trigraph

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/delgraph/delgraph/geom"
)

// edgeRecord is one worker finding: a canonical edge of triangle tri
// with its precomputed length. Records are kept in triangle order so
// the single-threaded merge produces identical incidence lists on
// every run.
type edgeRecord struct {
	edge   geom.Edge
	length float64
	tri    int
}

// partial is a per-worker private accumulation; workers never share
// partials, so filling one requires no locking.
type partial struct {
	edges []edgeRecord
}

// Build constructs the derived graph from points and the flat triangle
// vertex-index triples of a triangulation.
//
// Input validation fails fast, before any construction: the triple
// slice length must be divisible by 3 (ErrTriangleList), every index
// must address points (ErrVertexRange), and every coordinate must be
// finite (ErrNonFinite) so no NaN can reach an ordering comparison
// downstream. An empty triangulation yields a valid empty graph.
//
// The triangle list is partitioned into one contiguous chunk per
// worker; each worker computes canonical edges, lengths, terminal edge,
// and (mode permitting) area lock-free into a private partial, writing
// triangle records at the triangle's own index. A sequential reduction
// then merges the partials. Cancellation via WithContext aborts between
// chunks with the context's error.
//
// Complexity: O(T/P) per worker + O(T) merge. Memory: O(T + E + V).
func Build(points []geom.Point, triangles []int, mode Mode, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(triangles)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d indices", ErrTriangleList, len(triangles))
	}
	for _, v := range triangles {
		if v < 0 || v >= len(points) {
			return nil, fmt.Errorf("%w: vertex %d with %d points", ErrVertexRange, v, len(points))
		}
	}
	for i, p := range points {
		if !p.Finite() {
			return nil, fmt.Errorf("%w: point %d", ErrNonFinite, i)
		}
	}

	n := len(triangles) / 3
	g := newGraph(mode, len(points), n)
	if n == 0 {
		return g, nil
	}

	workers := o.Workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	partials := make([]*partial, 0, workers)
	eg, ctx := errgroup.WithContext(o.Ctx)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		p := &partial{edges: make([]edgeRecord, 0, 3*(end-start))}
		partials = append(partials, p)

		start, end := start, end
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for t := start; t < end; t++ {
				p.addTriangle(g, points, triangles[3*t:3*t+3], t)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Single-threaded reduction: every write below is idempotent (edge
	// lengths agree by construction) or commutative (list append, set
	// insert), and partials are visited in chunk order, so incidence
	// lists come out sorted by triangle index.
	for _, p := range partials {
		for _, rec := range p.edges {
			g.edgeLengths[rec.edge] = rec.length
			g.edgeTriangles[rec.edge] = append(g.edgeTriangles[rec.edge], rec.tri)
			if g.mode.hasAdjacency() {
				g.connect(rec.edge.U, rec.edge.V)
				g.connect(rec.edge.V, rec.edge.U)
			}
		}
	}
	return g, nil
}

// addTriangle computes the per-triangle geometry for the triple tri at
// triangle index idx and accumulates it into the partial. The triangle
// record (if the mode keeps one) is written at the triangle's own
// index, which no other worker touches.
func (p *partial) addTriangle(g *Graph, points []geom.Point, tri []int, idx int) {
	a, b, c := points[tri[0]], points[tri[1]], points[tri[2]]

	// Edges in enumeration order of the input triple; the terminal edge
	// is the first maximal one, so exact length ties resolve to the
	// earlier edge.
	edges := [3]geom.Edge{
		geom.NewEdge(tri[0], tri[1]),
		geom.NewEdge(tri[1], tri[2]),
		geom.NewEdge(tri[2], tri[0]),
	}
	lengths := [3]float64{a.Distance(b), b.Distance(c), c.Distance(a)}

	terminal := 0
	for i := 1; i < 3; i++ {
		if lengths[i] > lengths[terminal] {
			terminal = i
		}
	}

	for i := range edges {
		p.edges = append(p.edges, edgeRecord{edge: edges[i], length: lengths[i], tri: idx})
	}

	if !g.mode.hasTriangles() {
		return
	}
	g.triangles[idx] = Triangle{
		Index:        idx,
		Vertices:     sortedTriple(tri[0], tri[1], tri[2]),
		Area:         shoelace(a, b, c),
		TerminalEdge: edges[terminal],
	}
}

// shoelace returns the unsigned area of triangle abc.
func shoelace(a, b, c geom.Point) float64 {
	area := (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2
	if area < 0 {
		area = -area
	}
	return area
}

// sortedTriple returns (a, b, c) in ascending order.
func sortedTriple(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
