package trigraph

import (
	"context"
	"errors"
	"runtime"

	"github.com/delgraph/delgraph/geom"
)

// Sentinel errors for derived-graph construction and queries.
var (
	// ErrTriangleList indicates the flat triangle slice length is not divisible by 3.
	ErrTriangleList = errors.New("trigraph: triangle index count must be divisible by 3")

	// ErrVertexRange indicates a triangle references a vertex index outside the point slice.
	ErrVertexRange = errors.New("trigraph: vertex index out of range")

	// ErrTriangleRange indicates a query referenced a non-existent triangle index.
	ErrTriangleRange = errors.New("trigraph: triangle index out of range")

	// ErrNonFinite indicates an input coordinate is NaN or infinite.
	ErrNonFinite = errors.New("trigraph: non-finite coordinate")

	// ErrNoTriangleData indicates triangle records were not populated by the build mode.
	ErrNoTriangleData = errors.New("trigraph: no triangle data in this build mode")

	// ErrNoAdjacency indicates vertex adjacency was not populated by the build mode.
	ErrNoAdjacency = errors.New("trigraph: no vertex adjacency in this build mode")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("trigraph: invalid option supplied")
)

// Mode selects which derived structures a build populates, trading
// memory for the minimum required by the downstream analysis.
// Edge incidence and edge lengths are populated in every mode.
type Mode int

const (
	// ModeFull populates triangle records (area, terminal edge) and
	// vertex adjacency. Serves both delfin and dtscan.
	ModeFull Mode = iota
	// ModeClusters populates vertex adjacency only. Serves dtscan.
	ModeClusters
	// ModeVoids populates triangle records only. Serves delfin.
	ModeVoids
)

// hasTriangles reports whether the mode populates triangle records.
func (m Mode) hasTriangles() bool { return m == ModeFull || m == ModeVoids }

// hasAdjacency reports whether the mode populates vertex adjacency.
func (m Mode) hasAdjacency() bool { return m == ModeFull || m == ModeClusters }

// Triangle is the per-triangle record of the derived graph.
//
// Vertices holds the three vertex indices in ascending order.
// TerminalEdge is the longest of the triangle's three edges; exact
// floating-point ties keep the first edge in enumeration order
// {v0v1, v1v2, v2v0} of the input triple, so selection is deterministic.
type Triangle struct {
	// Index is the triangle's position in the triangulation.
	Index int

	// Vertices are the three vertex indices, sorted ascending.
	Vertices [3]int

	// Area is the triangle area (shoelace formula).
	Area float64

	// TerminalEdge is the longest edge, the direction of maximal local
	// sparsity used by void detection.
	TerminalEdge geom.Edge
}

// Edges returns the triangle's three canonical edges.
func (t Triangle) Edges() [3]geom.Edge {
	return [3]geom.Edge{
		geom.NewEdge(t.Vertices[0], t.Vertices[1]),
		geom.NewEdge(t.Vertices[1], t.Vertices[2]),
		geom.NewEdge(t.Vertices[2], t.Vertices[0]),
	}
}

// Option configures graph construction via functional arguments.
// An invalid option is recorded internally and surfaced as
// ErrOptionViolation when Build or BuildMesh is invoked.
type Option func(*BuildOptions)

// BuildOptions holds tunable parameters for graph construction.
type BuildOptions struct {
	// Ctx allows cancellation of the parallel build; checked once per
	// worker chunk. Defaults to context.Background().
	Ctx context.Context

	// Workers bounds the fork-join parallelism of Build.
	// Defaults to runtime.GOMAXPROCS(0).
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns BuildOptions with a background context and one
// worker per available CPU.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker count for the parallel build.
// Values below 1 are rejected as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *BuildOptions) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Workers = n
	}
}
