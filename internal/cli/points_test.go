package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delgraph/delgraph/geom"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadPoints_Plain(t *testing.T) {
	path := writeTemp(t, "points.csv", "0,0\n1,0\n0.5,0.9\n")

	points, err := readPoints(path)
	require.NoError(t, err)
	require.Equal(t, []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 0.9},
	}, points)
}

func TestReadPoints_Header(t *testing.T) {
	path := writeTemp(t, "points.csv", "x,y\n2,3\n-1,4.5\n")

	points, err := readPoints(path)
	require.NoError(t, err)
	require.Equal(t, []geom.Point{
		{X: 2, Y: 3}, {X: -1, Y: 4.5},
	}, points)
}

func TestReadPoints_BadRow(t *testing.T) {
	path := writeTemp(t, "points.csv", "0,0\noops,1\n")

	_, err := readPoints(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 2")
}

func TestReadPoints_WrongFieldCount(t *testing.T) {
	path := writeTemp(t, "points.csv", "0,0,0\n")

	_, err := readPoints(path)
	require.Error(t, err)
}

func TestReadPoints_Missing(t *testing.T) {
	_, err := readPoints(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
