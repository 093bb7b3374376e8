package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delgraph/delgraph/delfin"
	"github.com/delgraph/delgraph/triangulate"
	"github.com/delgraph/delgraph/trigraph"
)

// voidReport is the JSON shape of one detected void.
type voidReport struct {
	Triangles    []int   `json:"triangles"`
	Vertices     []int   `json:"vertices"`
	Area         float64 `json:"area"`
	Significance float64 `json:"significance"`
}

// newVoidsCmd builds the "voids" subcommand: triangulate a CSV point
// file, build the derived graph, and report DELFIN void regions as JSON.
func newVoidsCmd() *cobra.Command {
	var (
		pointsPath string
		configPath string
		cfg        = defaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "voids --points points.csv",
		Short: "Detect anomalously empty regions in a 2D point set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mergeConfig(cmd, configPath, &cfg); err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			points, err := readPoints(pointsPath)
			if err != nil {
				return err
			}
			logger.Info("points loaded", "count", len(points))

			step := newProgress(logger)
			tris := triangulate.Triangles(points)
			step.done("triangulated", "triangles", len(tris)/3)

			step = newProgress(logger)
			buildOpts := []trigraph.Option{trigraph.WithContext(cmd.Context())}
			if cfg.Workers > 0 {
				buildOpts = append(buildOpts, trigraph.WithWorkers(cfg.Workers))
			}
			g, err := trigraph.Build(points, tris, trigraph.ModeVoids, buildOpts...)
			if err != nil {
				return fmt.Errorf("building derived graph: %w", err)
			}
			step.done("derived graph built", "edges", g.EdgeCount())

			opts := []delfin.Option{
				delfin.WithContext(cmd.Context()),
				delfin.WithMinTriangles(cfg.MinTriangles),
			}
			if cfg.ZScores {
				opts = append(opts, delfin.WithZScores())
			}
			voids, err := delfin.Voids(g, cfg.MinArea, cfg.MinDistance, opts...)
			if err != nil {
				return fmt.Errorf("void detection: %w", err)
			}
			logger.Info("voids found", "count", len(voids))

			reports := make([]voidReport, 0, len(voids))
			for _, r := range voids {
				verts, err := r.Vertices(g)
				if err != nil {
					return err
				}
				sig, err := delfin.Significance(g, r)
				if err != nil {
					return err
				}
				reports = append(reports, voidReport{
					Triangles:    r.Triangles,
					Vertices:     verts,
					Area:         r.Area,
					Significance: sig,
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		},
	}

	cmd.Flags().StringVar(&pointsPath, "points", "", "CSV file of x,y coordinates (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML config file")
	cmd.Flags().Float64Var(&cfg.MinArea, "min-area", cfg.MinArea, "minimum total void area (or z-score with --zscore)")
	cmd.Flags().Float64Var(&cfg.MinDistance, "min-distance", cfg.MinDistance, "minimum terminal-edge length (or z-score with --zscore)")
	cmd.Flags().IntVar(&cfg.MinTriangles, "min-triangles", cfg.MinTriangles, "minimum triangles per void")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "graph build parallelism (0 = all CPUs)")
	cmd.Flags().BoolVar(&cfg.ZScores, "zscore", cfg.ZScores, "interpret thresholds as z-scores")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

// mergeConfig loads the optional TOML file and then re-applies any flag
// the user set explicitly, so the precedence is flags > file > defaults.
func mergeConfig(cmd *cobra.Command, configPath string, cfg *fileConfig) error {
	if configPath == "" {
		return nil
	}
	flagged := *cfg
	if err := loadConfig(configPath, cfg); err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("min-area") {
		cfg.MinArea = flagged.MinArea
	}
	if flags.Changed("min-distance") {
		cfg.MinDistance = flagged.MinDistance
	}
	if flags.Changed("min-triangles") {
		cfg.MinTriangles = flagged.MinTriangles
	}
	if flags.Changed("min-pts") {
		cfg.MinPts = flagged.MinPts
	}
	if flags.Changed("max-closeness") {
		cfg.MaxCloseness = flagged.MaxCloseness
	}
	if flags.Changed("workers") {
		cfg.Workers = flagged.Workers
	}
	if flags.Changed("zscore") {
		cfg.ZScores = flagged.ZScores
	}
	return nil
}
