// Package dtscan clusters the vertices of a point pattern by density,
// substituting the triangulation's native vertex adjacency for the
// spatial index of canonical DBSCAN.
//
// What:
//
//	A vertex is a core vertex iff it has at least minPts direct
//	neighbors and every edge to those neighbors is no longer than
//	maxCloseness. From each unvisited core vertex a cluster expands
//	over vertex adjacency, admitting a neighbor when its connecting
//	edge satisfies the closeness predicate.
//
// Deviation from canonical DBSCAN (by contract, not accident):
//
//	A vertex visited by one cluster is never revisited by a later one,
//	so clusters partition the visited vertices and border points are
//	never shared between clusters. Consumers that need canonical
//	border-sharing semantics must post-process cluster membership.
//
// Determinism:
//
//	Vertices are scanned in ascending index order and expansion uses an
//	explicit stack over sorted neighbor lists (no recursion, no depth
//	limit), so repeated runs over the same graph return identical
//	clusters.
//
// Complexity: O(V log V + E). Memory: O(V).
//
// Errors: ErrGraphNil, ErrOptionViolation, trigraph.ErrNoAdjacency.
package dtscan

import (
	"fmt"

	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/trigraph"
)

// Clusters returns the density clusters of g as vertex-index lists, in
// discovery order. The graph must have been built with vertex
// adjacency (ModeFull, ModeClusters, or BuildMesh). An empty graph
// yields an empty result and no error.
func Clusters(g *trigraph.Graph, minPts int, maxCloseness float64, opts ...Option) ([][]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if minPts < 1 {
		return nil, fmt.Errorf("%w: minPts must be at least 1, got %d", ErrOptionViolation, minPts)
	}

	vertices, err := g.Vertices()
	if err != nil {
		return nil, err
	}

	if o.ZScores {
		maxCloseness = g.EdgeLengthStats().Threshold(maxCloseness)
	}

	visited := make(map[int]bool, len(vertices))
	var clusters [][]int

	for _, v := range vertices {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if visited[v] {
			continue
		}
		ok, err := isCore(g, v, minPts, maxCloseness)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		cluster, err := expand(g, v, maxCloseness, visited)
		if err != nil {
			return nil, err
		}
		if len(cluster) > 0 {
			clusters = append(clusters, cluster)
		}
	}
	return clusters, nil
}

// isCore reports whether v has at least minPts neighbors, all within
// maxCloseness.
func isCore(g *trigraph.Graph, v, minPts int, maxCloseness float64) (bool, error) {
	neighbors, err := g.Neighbors(v)
	if err != nil {
		return false, err
	}
	if len(neighbors) < minPts {
		return false, nil
	}
	for _, n := range neighbors {
		length, ok := g.EdgeLength(geom.NewEdge(v, n))
		if !ok || length > maxCloseness {
			return false, nil
		}
	}
	return true, nil
}

// expand collects the cluster reachable from the core vertex v using
// an explicit stack, admitting each neighbor whose connecting edge is
// within maxCloseness and which no cluster has visited yet.
func expand(g *trigraph.Graph, v int, maxCloseness float64, visited map[int]bool) ([]int, error) {
	var cluster []int
	stack := []int{v}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		cluster = append(cluster, cur)

		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			if length, ok := g.EdgeLength(geom.NewEdge(cur, n)); ok && length <= maxCloseness {
				stack = append(stack, n)
			}
		}
	}
	return cluster, nil
}
