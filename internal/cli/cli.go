// Package cli implements the delgraph command-line interface.
//
// This package provides commands for running the two point-pattern
// analyses over CSV point files: void detection (delfin) and density
// clustering (dtscan). The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - voids: detect anomalously empty regions in a 2D point set
//   - clusters: detect density clusters ("attractors") in a 2D point set
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context; analysis results go to stdout as
// JSON, logs go to stderr.
//
// # Example
//
//	import "github.com/delgraph/delgraph/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the delgraph CLI and returns an error if any command
// fails. The root command wires the voids and clusters subcommands and
// configures logging from the --verbose flag; the logger travels on the
// command context and is accessible via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "delgraph",
		Short:        "delgraph finds voids and clusters in 2D point patterns",
		Long:         `delgraph triangulates a point set, derives an adjacency graph from the triangulation, and reports anomalously empty regions (voids) or density clusters (attractors) without a grid or k-d tree.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("delgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newVoidsCmd())
	root.AddCommand(newClustersCmd())

	return root.ExecuteContext(context.Background())
}
