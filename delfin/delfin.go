// Package delfin detects anomalously empty regions ("voids") in a
// point pattern by greedy region growing over the derived graph.
//
// What:
//
//	Every triangle "points toward" its terminal (longest) edge as the
//	direction of maximal local sparsity. DELFIN seeds regions at the
//	triangles with the longest terminal edges and grows each region
//	breadth-first, admitting a neighboring triangle only when its own
//	terminal edge coincides with an edge already in the region's
//	frontier - membership requires mutual agreement that an edge is
//	locally maximal, not mere adjacency.
//
// Why longest-first:
//
//	Processing the sparsest regions first prevents smaller, spurious
//	voids from fragmenting a larger true void. The ordering is
//	load-bearing, not cosmetic.
//
// Determinism:
//
//	Seeds are ordered by terminal-edge length descending with ties
//	broken by ascending triangle index, and expansion visits incidence
//	lists in the order the builder merged them, so repeated runs over
//	the same graph return identical regions.
//
// Complexity: O(T log T) for seed ordering + O(T) growth.
//
// Errors: ErrGraphNil, ErrOptionViolation, trigraph.ErrNoTriangleData.
package delfin

import (
	"math"
	"sort"

	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/trigraph"
)

// Voids returns the candidate void regions of g, pairwise disjoint in
// triangle membership, filtered by both thresholds:
//
//   - minDistance bounds the terminal-edge length a triangle needs to
//     seed or join consideration,
//   - minArea bounds the region's total area (absolute mode) or the
//     z-score of its mean triangle area (WithZScores).
//
// The graph must have been built with triangle records (ModeFull or
// ModeVoids). An empty graph yields an empty result and no error.
func Voids(g *trigraph.Graph, minArea, minDistance float64, opts ...Option) ([]Region, error) {
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

	triangles, err := g.Triangles()
	if err != nil {
		return nil, err
	}
	if len(triangles) == 0 {
		return nil, nil
	}

	var termStats, areaStats trigraph.Stats
	if o.ZScores {
		if termStats, err = g.TerminalEdgeStats(); err != nil {
			return nil, err
		}
		if areaStats, err = g.AreaStats(); err != nil {
			return nil, err
		}
	}

	// Collect seed candidates whose terminal edge meets minDistance,
	// sorted by terminal-edge length descending (ties by index).
	type seed struct {
		idx    int
		length float64
	}
	seeds := make([]seed, 0, len(triangles))
	for _, t := range triangles {
		length, ok := g.EdgeLength(t.TerminalEdge)
		if !ok {
			continue
		}
		metric := length
		if o.ZScores {
			metric = termStats.Z(length)
		}
		if metric >= minDistance {
			seeds = append(seeds, seed{idx: t.Index, length: length})
		}
	}
	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].length != seeds[j].length {
			return seeds[i].length > seeds[j].length
		}
		return seeds[i].idx < seeds[j].idx
	})

	processed := make([]bool, len(triangles))
	var voids []Region

	for _, s := range seeds {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if processed[s.idx] {
			continue
		}

		region, area := grow(g, triangles, processed, s.idx)
		if len(region) < o.MinTriangles {
			continue
		}
		if o.ZScores {
			if areaStats.Z(area/float64(len(region))) < minArea {
				continue
			}
		} else if area < minArea {
			continue
		}
		sort.Ints(region)
		voids = append(voids, Region{Triangles: region, Area: area})
	}
	return voids, nil
}

// grow expands one region from the seed triangle: the seed and every
// triangle sharing its terminal edge join immediately; afterwards a
// neighbor joins only when its own terminal edge lies on the frontier.
// Every joined triangle is marked processed so regions stay disjoint.
func grow(g *trigraph.Graph, triangles []trigraph.Triangle, processed []bool, seed int) ([]int, float64) {
	var (
		region   []int
		area     float64
		frontier []geom.Edge
	)
	join := func(idx int) {
		processed[idx] = true
		region = append(region, idx)
		area += triangles[idx].Area
		edges := triangles[idx].Edges()
		frontier = append(frontier, edges[:]...)
	}

	join(seed)
	for _, nb := range g.EdgeTriangles(triangles[seed].TerminalEdge) {
		if !processed[nb] {
			join(nb)
		}
	}

	for len(frontier) > 0 {
		e := frontier[0]
		frontier = frontier[1:]
		for _, nb := range g.EdgeTriangles(e) {
			if processed[nb] {
				continue
			}
			// Mutual agreement: the neighbor's own terminal edge must
			// be this frontier edge.
			if triangles[nb].TerminalEdge == e {
				join(nb)
			}
		}
	}
	return region, area
}

// Vertices returns the vertex indices bounding the region - the three
// corners of every member triangle - as a sorted, duplicate-free slice.
// This is the point-level description of the void.
func (r Region) Vertices(g *trigraph.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	set := make(map[int]struct{}, 3*len(r.Triangles))
	for _, idx := range r.Triangles {
		tri, err := g.Triangle(idx)
		if err != nil {
			return nil, err
		}
		for _, v := range tri.Vertices {
			set[v] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

// Significance scores r against a complete-spatial-randomness null
// model: with intensity λ = point count over triangulated area, the
// expected point count inside r is λ·Area and its Poisson standard
// deviation is √(λ·Area). The returned z-score is strongly negative
// for genuine voids (far fewer points than CSR predicts).
func Significance(g *trigraph.Graph, r Region) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	total, err := g.TotalArea()
	if err != nil {
		return 0, err
	}
	if total == 0 || r.Area == 0 {
		return 0, nil
	}
	lambda := float64(g.PointCount()) / total
	expected := lambda * r.Area
	if expected == 0 {
		return 0, nil
	}
	verts, err := r.Vertices(g)
	if err != nil {
		return 0, err
	}
	return (float64(len(verts)) - expected) / math.Sqrt(expected), nil
}
