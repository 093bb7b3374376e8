package hull_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delgraph/delgraph/geom"
	"github.com/delgraph/delgraph/hull"
)

//----------------------------------------------------------------------------//
// Canonical scenario
//----------------------------------------------------------------------------//

// TestConcave_SquareWithCenter extracts the perimeter of a unit square
// with one interior point. The four center spokes are interior edges
// (shared by two triangles each), so only the perimeter survives.
func TestConcave_SquareWithCenter(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0.5, Y: 0.5},
	}

	walk, err := hull.Concave(points, []int{0, 1, 2, 3, 4}, 10)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, walk)
}

// TestConcave_GlobalIndices verifies the walk is reported in global
// vertex indices even when the subset sits in a larger point set.
func TestConcave_GlobalIndices(t *testing.T) {
	points := []geom.Point{
		{X: -50, Y: -50}, {X: 80, Y: 80}, // outside the subset
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1.1}, {X: 0, Y: 1},
	}

	// Alpha admits the perimeter but not either diagonal.
	walk, err := hull.Concave(points, []int{2, 3, 4, 5}, 1.2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4, 5}, walk)
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

// TestConcave_Errors covers the three failure shapes.
func TestConcave_Errors(t *testing.T) {
	t.Run("DegenerateSubset", func(t *testing.T) {
		points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 2}}
		_, err := hull.Concave(points, []int{0, 1}, 10)
		require.ErrorIs(t, err, hull.ErrNoTriangulation)
	})
	t.Run("CollinearSubset", func(t *testing.T) {
		points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
		_, err := hull.Concave(points, []int{0, 1, 2}, 10)
		require.ErrorIs(t, err, hull.ErrNoTriangulation)
	})
	t.Run("AlphaTooTight", func(t *testing.T) {
		points := []geom.Point{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
			{X: 0.5, Y: 0.5},
		}
		_, err := hull.Concave(points, []int{0, 1, 2, 3, 4}, 0.5)
		require.ErrorIs(t, err, hull.ErrNoBoundary)
	})
	t.Run("OpenBoundary", func(t *testing.T) {
		// A 2x1 rectangle under an alpha that admits only the two short
		// sides: two disjoint boundary edges, no closed walk.
		points := []geom.Point{
			{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1},
		}
		_, err := hull.Concave(points, []int{0, 1, 2, 3}, 1.5)
		require.ErrorIs(t, err, hull.ErrOpenBoundary)
	})
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestConcave_Deterministic verifies repeated extraction yields the
// identical ordered walk.
func TestConcave_Deterministic(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0.5, Y: 0.5}, {X: 0.3, Y: 0.6}, {X: 0.7, Y: 0.2},
	}
	indices := []int{0, 1, 2, 3, 4, 5, 6}

	first, err := hull.Concave(points, indices, 10)
	require.NoError(t, err)
	second, err := hull.Concave(points, indices, 10)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// With a generous alpha the walk is the convex perimeter.
	require.ElementsMatch(t, []int{0, 1, 2, 3}, first)
}
