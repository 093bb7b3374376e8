// Package delgraph analyzes the spatial structure of 2D and 3D point
// patterns through the lens of a Delaunay triangulation.
//
// Instead of a grid or a k-d tree, delgraph derives an adjacency graph
// directly from a triangulation of the input points and runs two
// independent analyses over it:
//
//   - DELFIN - detection of anomalously empty regions ("voids") by
//     greedy region growing over triangles that agree on their longest
//     ("terminal") edge.
//   - DTSCAN - density-based clustering ("attractors") that substitutes
//     the triangulation's native vertex adjacency for the spatial index
//     of canonical DBSCAN.
//
// The pipeline is strictly downstream:
//
//	points → triangulation → derived graph → { DELFIN, DTSCAN }
//
// Everything is organized under focused subpackages:
//
//	geom/        - points, canonical edges, distance & bearing
//	triangulate/ - Delaunay provider (wraps github.com/fogleman/delaunay)
//	sample/      - uniform random point generators (square, disc, cube)
//	trigraph/    - parallel derived-graph builder + 3D tetrahedral adapter
//	delfin/      - void detection with absolute or z-score thresholds
//	dtscan/      - triangulation-graph density clustering
//	hull/        - alpha-shape concave hull extraction
//	cmd/delgraph - command-line driver over CSV point files
//
// The derived graph is built once, in parallel, and is immutable
// afterwards; all analyses are pure read-only queries and may be
// repeated with different thresholds at no extra preprocessing cost.
//
//	go get github.com/delgraph/delgraph
package delgraph
