package trigraph

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats is a mean and standard deviation over a population of graph
// measurements, used to turn absolute thresholds into z-scores.
type Stats struct {
	Mean, Std float64
}

// Z returns the z-score of x under s. A zero-spread population maps
// every value to 0.
func (s Stats) Z(x float64) float64 {
	if s.Std == 0 {
		return 0
	}
	return (x - s.Mean) / s.Std
}

// Threshold converts a z-score bound back to an absolute value.
func (s Stats) Threshold(z float64) float64 {
	return s.Mean + z*s.Std
}

// EdgeLengthStats returns the mean and standard deviation of all edge
// lengths in the graph. Edges are gathered in canonical order so the
// result is identical across runs.
// Complexity: O(E log E)
func (g *Graph) EdgeLengthStats() Stats {
	edges := make([]struct {
		u, v int
		l    float64
	}, 0, len(g.edgeLengths))
	for e, l := range g.edgeLengths {
		edges = append(edges, struct {
			u, v int
			l    float64
		}{e.U, e.V, l})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})
	xs := make([]float64, len(edges))
	for i, e := range edges {
		xs[i] = e.l
	}
	return meanStd(xs)
}

// TerminalEdgeStats returns the mean and standard deviation of the
// terminal-edge lengths over all triangles.
// Returns ErrNoTriangleData if the mode did not populate records.
func (g *Graph) TerminalEdgeStats() (Stats, error) {
	if !g.mode.hasTriangles() {
		return Stats{}, ErrNoTriangleData
	}
	xs := make([]float64, len(g.triangles))
	for i, t := range g.triangles {
		xs[i] = g.edgeLengths[t.TerminalEdge]
	}
	return meanStd(xs), nil
}

// AreaStats returns the mean and standard deviation of triangle areas.
// Returns ErrNoTriangleData if the mode did not populate records.
func (g *Graph) AreaStats() (Stats, error) {
	if !g.mode.hasTriangles() {
		return Stats{}, ErrNoTriangleData
	}
	xs := make([]float64, len(g.triangles))
	for i, t := range g.triangles {
		xs[i] = t.Area
	}
	return meanStd(xs), nil
}

// TotalArea returns the summed area of all triangles, the area of the
// triangulated region. Returns ErrNoTriangleData if the mode did not
// populate records.
func (g *Graph) TotalArea() (float64, error) {
	if !g.mode.hasTriangles() {
		return 0, ErrNoTriangleData
	}
	var sum float64
	for _, t := range g.triangles {
		sum += t.Area
	}
	return sum, nil
}

// meanStd wraps stat.MeanStdDev, guarding the degenerate populations
// for which the sample deviation is undefined.
func meanStd(xs []float64) Stats {
	switch len(xs) {
	case 0:
		return Stats{}
	case 1:
		return Stats{Mean: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Stats{Mean: mean, Std: std}
}
