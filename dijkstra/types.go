// Package dijkstra defines options, sentinel errors, and the result type
// for Dijkstra's algorithm over a grid.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed to Dijkstra.
var ErrGridNil = errors.New("dijkstra: grid is nil")

// Option configures Dijkstra behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per settled cell.
	Ctx context.Context

	// OnVisit is called once per settled cell, in settle order.
	// Returning an error aborts the run.
	OnVisit func(c grid.Coord) error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Coord) error { return nil },
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

// WithOnVisit registers a settle hook; returning an error aborts the run.
func WithOnVisit(fn func(c grid.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result captures the outcome of a Dijkstra run.
type Result struct {
	// Found reports whether the end cell was settled.
	Found bool

	// Order records cells in settle sequence. When Found, the end cell is
	// the last entry.
	Order []grid.Coord

	// Dist maps each reached cell to its minimal cost from start. Cells never
	// reached have no entry (conceptually +∞).
	Dist map[grid.Coord]int

	// Parent maps each reached cell to its predecessor on the cheapest known
	// route. The start cell has no entry.
	Parent map[grid.Coord]grid.Coord

	end grid.Coord
}

// Path reconstructs the minimal-cost start→end route from the Parent chain.
// Returns nil when Found is false.
func (r *Result) Path() []grid.Coord {
	if !r.Found {
		return nil
	}

	return grid.ReconstructPath(r.Parent, r.end)
}

// Cost returns Dist[end], the minimal total cost; zero when not found.
func (r *Result) Cost() int {
	if !r.Found {
		return 0
	}

	return r.Dist[r.end]
}
