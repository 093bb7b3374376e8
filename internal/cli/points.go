package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/delgraph/delgraph/geom"
)

// readPoints loads a CSV file of "x,y" rows into a point slice.
// A header row is tolerated: the first row is skipped when its fields
// do not parse as numbers.
func readPoints(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening points file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	points := make([]geom.Point, 0, len(rows))
	for i, row := range rows {
		x, errX := strconv.ParseFloat(row[0], 64)
		y, errY := strconv.ParseFloat(row[1], 64)
		if errX != nil || errY != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%s row %d: not a coordinate pair: %q,%q", path, i+1, row[0], row[1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
