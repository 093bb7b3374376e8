// Package geom defines the geometric primitives shared by every
// delgraph subpackage: planar and spatial points and the canonical
// undirected Edge used as the sole key of edge-indexed maps.
//
// Points carry no identity of their own - a point is identified by its
// index in the owning slice, and all graph structures speak in indices.
//
// Errors: none. All operations are total over finite inputs; use
// Point.Finite / Point3.Finite to reject non-finite coordinates at the
// boundary before any ordering comparison can observe a NaN.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Point is an immutable 2D coordinate.
type Point struct {
	X, Y float64
}

// R2 converts p to a golang/geo plane vector.
func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1)
func (p Point) Distance(q Point) float64 {
	return q.R2().Sub(p.R2()).Norm()
}

// Bearing returns the direction from p to q in degrees within [0, 360),
// measured counter-clockwise from the positive x-axis.
func (p Point) Bearing(q Point) float64 {
	deg := math.Atan2(q.Y-p.Y, q.X-p.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Point3 is an immutable 3D coordinate.
type Point3 struct {
	X, Y, Z float64
}

// R3 converts p to a golang/geo space vector.
func (p Point3) R3() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1)
func (p Point3) Distance(q Point3) float64 {
	return q.R3().Sub(p.R3()).Norm()
}

// Finite reports whether all three coordinates are finite numbers.
func (p Point3) Finite() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Z)
}

// Edge is an unordered pair of vertex indices, canonicalized so that
// U < V. Two edges are equal iff they join the same pair of vertices,
// regardless of traversal direction, which makes Edge usable as a map
// key without further normalization.
type Edge struct {
	U, V int
}

// NewEdge returns the canonical edge joining vertices a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{U: a, V: b}
}

// Other returns the endpoint of e that is not v.
// The result is unspecified if v is not an endpoint of e.
func (e Edge) Other(v int) int {
	if v == e.U {
		return e.V
	}
	return e.U
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
