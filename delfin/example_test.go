package delfin_test

import (
	"fmt"

	"github.com/delgraph/delgraph/delfin"
	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/trigraph"
)

// ExampleVoids detects the single void of a unit square whose two
// triangles agree on the √2 diagonal as their terminal edge.
func ExampleVoids() {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	g, err := trigraph.Build(points, []int{0, 1, 2, 0, 2, 3}, trigraph.ModeVoids)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	voids, err := delfin.Voids(g, 1.0, 1.4)
	if err != nil {
		fmt.Println("detection failed:", err)
		return
	}
	for _, r := range voids {
		verts, _ := r.Vertices(g)
		fmt.Printf("triangles %v, area %.1f, vertices %v\n", r.Triangles, r.Area, verts)
	}
	// Output:
	// triangles [0 1], area 1.0, vertices [0 1 2 3]
}
