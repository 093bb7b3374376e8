package dtscan

import (
	"context"
	"errors"
)

// Sentinel errors for cluster detection.
var (
	// ErrGraphNil is returned when a nil *trigraph.Graph is passed to Clusters.
	ErrGraphNil = errors.New("dtscan: graph is nil")

	// ErrOptionViolation is returned when an invalid Option or argument is supplied.
	ErrOptionViolation = errors.New("dtscan: invalid option supplied")
)

// Option configures clustering via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Clusters is invoked.
type Option func(*Options)

// Options holds tunable parameters for clustering.
type Options struct {
	// Ctx allows cancellation; checked once per scanned vertex.
	// Defaults to context.Background().
	Ctx context.Context

	// ZScores, when set, interprets maxCloseness as a z-score against
	// the population mean and standard deviation of all edge lengths
	// rather than an absolute length bound.
	ZScores bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and an
// absolute closeness threshold.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithZScores switches the closeness threshold to z-score interpretation.
func WithZScores() Option {
	return func(o *Options) { o.ZScores = true }
}
