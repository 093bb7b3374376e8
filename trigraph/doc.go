// Package trigraph builds the derived graph at the heart of delgraph:
// the edge, incidence, and adjacency structures computed once from a
// triangulation and then queried read-only by every analysis.
//
// What:
//
//   - Build consumes a point slice plus the flat triangle-index triples
//     of a 2D Delaunay triangulation and produces an immutable *Graph.
//   - BuildMesh consumes a 3D tetrahedral mesh (with convex-hull
//     sentinel nodes) and produces the adjacency-only *Graph variant
//     used by dtscan.
//   - Graph exposes triangle records (area, terminal edge), the
//     edge → incident-triangle index, per-edge Euclidean lengths,
//     symmetric vertex adjacency, and population statistics for
//     z-score thresholds.
//
// Why:
//
//   - A valid triangulation already gives each edge at most two incident
//     faces, so adjacency is linear in triangle count to build - no
//     brute-force all-pairs pass and no spatial index.
//   - Construction is the dominant cost on large point sets, so it is
//     the parallelization boundary: triangle triples are partitioned
//     into chunks, each worker fills a private partial graph lock-free,
//     and a single-threaded reduction merges the partials. All merged
//     writes are idempotent (edge lengths are pure functions of the
//     endpoint coordinates) or commutative (list append, set insert), so
//     worker scheduling never changes the result.
//
// Modes:
//
//   - ModeFull     - triangle records and vertex adjacency (delfin + dtscan).
//   - ModeClusters - vertex adjacency only (dtscan).
//   - ModeVoids    - triangle records only (delfin).
//
// Edge incidence and edge lengths are populated in every mode. The mode
// is fixed at construction; querying a structure the mode did not
// populate returns ErrNoTriangleData or ErrNoAdjacency instead of
// silently empty data.
//
// Complexity:
//
//   - Build:     O(T/P) time per worker + O(T) merge, Memory: O(T+E+V).
//   - BuildMesh: O(T), Memory: O(E+V).
//   - Accessors: O(1), except Neighbors/Vertices which sort for
//     deterministic output.
//
// Errors:
//
//   - ErrTriangleList   - triangle index slice length not divisible by 3.
//   - ErrVertexRange    - triangle references a vertex index out of range.
//   - ErrTriangleRange  - triangle index out of range in a query.
//   - ErrNonFinite      - input coordinate is NaN or ±Inf.
//   - ErrNoTriangleData - triangle records absent in this build mode.
//   - ErrNoAdjacency    - vertex adjacency absent in this build mode.
//   - ErrOptionViolation - invalid functional option.
package trigraph
