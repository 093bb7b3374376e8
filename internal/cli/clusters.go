package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delgraph/delgraph/dtscan"
	"github.com/delgraph/delgraph/triangulate"
	"github.com/delgraph/delgraph/trigraph"
)

// clusterReport is the JSON shape of one detected cluster.
type clusterReport struct {
	Vertices []int `json:"vertices"`
	Size     int   `json:"size"`
}

// newClustersCmd builds the "clusters" subcommand: triangulate a CSV
// point file, build the adjacency-only derived graph, and report DTSCAN
// clusters as JSON.
func newClustersCmd() *cobra.Command {
	var (
		pointsPath string
		configPath string
		cfg        = defaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "clusters --points points.csv",
		Short: "Detect density clusters (attractors) in a 2D point set",
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
			g, err := trigraph.Build(points, tris, trigraph.ModeClusters, buildOpts...)
			if err != nil {
				return fmt.Errorf("building derived graph: %w", err)
			}
			step.done("derived graph built", "edges", g.EdgeCount())

			opts := []dtscan.Option{dtscan.WithContext(cmd.Context())}
			if cfg.ZScores {
				opts = append(opts, dtscan.WithZScores())
			}
			clusters, err := dtscan.Clusters(g, cfg.MinPts, cfg.MaxCloseness, opts...)
			if err != nil {
				return fmt.Errorf("clustering: %w", err)
			}
			logger.Info("clusters found", "count", len(clusters))

			reports := make([]clusterReport, 0, len(clusters))
			for _, c := range clusters {
				reports = append(reports, clusterReport{Vertices: c, Size: len(c)})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		},
	}

	cmd.Flags().StringVar(&pointsPath, "points", "", "CSV file of x,y coordinates (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML config file")
	cmd.Flags().IntVar(&cfg.MinPts, "min-pts", cfg.MinPts, "minimum neighbors for a core vertex")
	cmd.Flags().Float64Var(&cfg.MaxCloseness, "max-closeness", cfg.MaxCloseness, "maximum edge length within a cluster (or z-score with --zscore)")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "graph build parallelism (0 = all CPUs)")
	cmd.Flags().BoolVar(&cfg.ZScores, "zscore", cfg.ZScores, "interpret thresholds as z-scores")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}
