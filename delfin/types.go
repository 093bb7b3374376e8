package delfin

import (
	"context"
	"errors"
)

// Sentinel errors for void detection.
var (
	// ErrGraphNil is returned when a nil *trigraph.Graph is passed to Voids.
	ErrGraphNil = errors.New("delfin: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("delfin: invalid option supplied")
)

// Region is one candidate void: a connected set of triangles whose
// terminal edges mutually agree, plus its summed area.
type Region struct {
	// Triangles holds the member triangle indices, ascending.
	Triangles []int

	// Area is the total area of the member triangles.
	Area float64
}

// Option configures void detection via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Voids is invoked.
type Option func(*Options)

// Options holds tunable parameters for void detection.
type Options struct {
	// Ctx allows cancellation; checked once per seed triangle.
	// Defaults to context.Background().
	Ctx context.Context

	// MinTriangles is the minimum region size; a void spanning a single
	// triangle is never meaningful. Defaults to 2; the stricter variant
	// uses 3.
	MinTriangles int

	// ZScores, when set, interprets the minArea and minDistance
	// thresholds as z-scores against the population mean and standard
	// deviation of triangle areas and terminal-edge lengths, supporting
	// tests against a complete-spatial-randomness null model.
	ZScores bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a minimum
// region size of 2 triangles, and absolute thresholds.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MinTriangles: 2,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinTriangles sets the minimum region size. Values below 2 are
// rejected as ErrOptionViolation.
func WithMinTriangles(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = ErrOptionViolation
			return
		}
		o.MinTriangles = n
	}
}

// WithZScores switches both thresholds to z-score interpretation.
func WithZScores() Option {
	return func(o *Options) { o.ZScores = true }
}
