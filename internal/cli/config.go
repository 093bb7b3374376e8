package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional TOML configuration file. Any flag set
// explicitly on the command line wins over the file value.
type fileConfig struct {
	// MinArea is the void area threshold (delfin).
	MinArea float64 `toml:"min_area"`
	// MinDistance is the terminal-edge length threshold (delfin).
	MinDistance float64 `toml:"min_distance"`
	// MinTriangles is the minimum void size in triangles (delfin).
	MinTriangles int `toml:"min_triangles"`
	// MinPts is the core-vertex neighbor threshold (dtscan).
	MinPts int `toml:"min_pts"`
	// MaxCloseness is the edge-length closeness bound (dtscan).
	MaxCloseness float64 `toml:"max_closeness"`
	// ZScores interprets thresholds as z-scores in both analyses.
	ZScores bool `toml:"z_scores"`
	// Workers bounds the parallelism of the graph build.
	Workers int `toml:"workers"`
}

// defaultConfig returns the built-in defaults applied before the file
// and the flags.
func defaultConfig() fileConfig {
	return fileConfig{
		MinTriangles: 2,
		MinPts:       5,
	}
}

// loadConfig reads path into the given config, leaving fields absent
// from the file untouched. An empty path is a no-op.
func loadConfig(path string, cfg *fileConfig) error {
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}
