package trigraph_test

import (
	"math/rand"
	"testing"

	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/sample"
	"github.com/delgraph/delgraph/triangulate"
	"github.com/delgraph/delgraph/trigraph"
)

// benchFixture triangulates a fixed sample once for all build benchmarks.
func benchFixture(b *testing.B, n int) ([]geom.Point, []int) {
	b.Helper()
	points := sample.Square(rand.New(rand.NewSource(1)), geom.Point{}, 1000, n)
	tris := triangulate.Triangles(points)
	if len(tris) == 0 {
		b.Fatal("fixture triangulation is empty")
	}
	return points, tris
}

// BenchmarkBuild_Serial measures the single-worker build.
func BenchmarkBuild_Serial(b *testing.B) {
	points, tris := benchFixture(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trigraph.Build(points, tris, trigraph.ModeFull, trigraph.WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_Parallel measures the default fork-join build.
func BenchmarkBuild_Parallel(b *testing.B) {
	points, tris := benchFixture(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trigraph.Build(points, tris, trigraph.ModeFull); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_ClustersOnly measures the adjacency-only mode, the
// cheapest build that still serves dtscan.
func BenchmarkBuild_ClustersOnly(b *testing.B) {
	points, tris := benchFixture(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trigraph.Build(points, tris, trigraph.ModeClusters); err != nil {
			b.Fatal(err)
		}
	}
}
