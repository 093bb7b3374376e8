package dtscan_test

import (
	"fmt"

	"github.com/delgraph/delgraph/dtscan"
	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/trigraph"
)

// ExampleClusters separates two tight triangles of points placed far
// apart from each other.
func ExampleClusters() {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 0.9},
		{X: 100, Y: 100}, {X: 101, Y: 100}, {X: 100.5, Y: 100.9},
	}
	triangles := []int{0, 1, 2, 3, 4, 5}

	g, err := trigraph.Build(points, triangles, trigraph.ModeClusters)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	clusters, err := dtscan.Clusters(g, 2, 2.0)
	if err != nil {
		fmt.Println("clusters:", err)
		return
	}
	for i, c := range clusters {
		fmt.Printf("cluster %d: %v\n", i, c)
	}
	// Output:
	// cluster 0: [0 2 1]
	// cluster 1: [3 5 4]
}
