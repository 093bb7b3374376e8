package sample_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/sample"
)

// TestSquare_Bounds verifies all samples fall inside the square and the
// generator is reproducible under a fixed seed.
func TestSquare_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	center := geom.Point{X: 10, Y: -5}
	const side = 4.0

	points := sample.Square(r, center, side, 500)
	if len(points) != 500 {
		t.Fatalf("len = %d; want 500", len(points))
	}
	for _, p := range points {
		if math.Abs(p.X-center.X) > side/2 || math.Abs(p.Y-center.Y) > side/2 {
			t.Fatalf("point %v outside square", p)
		}
	}

	again := sample.Square(rand.New(rand.NewSource(7)), center, side, 500)
	for i := range points {
		if points[i] != again[i] {
			t.Fatal("same seed must reproduce the same sample")
		}
	}
}

// TestDisc_Bounds verifies all samples fall inside the disc.
func TestDisc_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	center := geom.Point{X: 1, Y: 1}
	const radius = 3.0

	for _, p := range sample.Disc(r, center, radius, 500) {
		if center.Distance(p) > radius+1e-9 {
			t.Fatalf("point %v outside disc", p)
		}
	}
}

// TestCube_Bounds verifies all samples fall inside the cube.
func TestCube_Bounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	center := geom.Point3{X: 0, Y: 0, Z: 2}
	const side = 2.0

	for _, p := range sample.Cube(r, center, side, 500) {
		if math.Abs(p.X-center.X) > side/2 ||
			math.Abs(p.Y-center.Y) > side/2 ||
			math.Abs(p.Z-center.Z) > side/2 {
			t.Fatalf("point %v outside cube", p)
		}
	}
}
