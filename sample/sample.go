// Package sample generates uniform random point sets for feeding the
// triangulation pipeline: squares and discs in the plane, cubes in
// space. Every generator takes an explicit *rand.Rand so callers own
// seeding and reproducibility.
package sample

import (
	"math"
	"math/rand"

	"github.com/delgraph/delgraph/geom"
)

// Square returns n points uniformly distributed over the axis-aligned
// square of the given side length centered at center.
func Square(r *rand.Rand, center geom.Point, side float64, n int) []geom.Point {
	points := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, geom.Point{
			X: center.X + (r.Float64()-0.5)*side,
			Y: center.Y + (r.Float64()-0.5)*side,
		})
	}
	return points
}

// Disc returns n points uniformly distributed over the disc of the
// given radius centered at center. The radial coordinate is drawn as
// radius·√u so density stays uniform over area.
func Disc(r *rand.Rand, center geom.Point, radius float64, n int) []geom.Point {
	points := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		angle := r.Float64() * 2 * math.Pi
		rad := math.Sqrt(r.Float64()) * radius
		points = append(points, geom.Point{
			X: center.X + rad*math.Cos(angle),
			Y: center.Y + rad*math.Sin(angle),
		})
	}
	return points
}

// Cube returns n points uniformly distributed over the axis-aligned
// cube of the given side length centered at center.
func Cube(r *rand.Rand, center geom.Point3, side float64, n int) []geom.Point3 {
	points := make([]geom.Point3, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, geom.Point3{
			X: center.X + (r.Float64()-0.5)*side,
			Y: center.Y + (r.Float64()-0.5)*side,
			Z: center.Z + (r.Float64()-0.5)*side,
		})
	}
	return points
}
