// Package astar defines options, sentinel errors, and the result type
// for A* search over a grid.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed to AStar.
var ErrGridNil = errors.New("astar: grid is nil")

// Option configures A* behavior via functional arguments.
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

// Result captures the outcome of an A* run.
type Result struct {
	// Found reports whether the end cell was popped from the open set.
	Found bool

	// Order records cells in settle sequence. When Found, the end cell is
	// the last entry.
	Order []grid.Coord

	// GScore maps each reached cell to its cheapest known cost from start.
	// Cells never reached have no entry (conceptually +∞).
	GScore map[grid.Coord]int

	// Parent maps each reached cell to its predecessor on the cheapest known
	// route. The start cell has no entry.
	Parent map[grid.Coord]grid.Coord

	end grid.Coord
}

// Path reconstructs the optimal start→end route from the Parent chain.
// Returns nil when Found is false.
func (r *Result) Path() []grid.Coord {
	if !r.Found {
		return nil
	}

	return grid.ReconstructPath(r.Parent, r.end)
}

// Cost returns GScore[end], the optimal total cost; zero when not found.
func (r *Result) Cost() int {
	if !r.Found {
		return 0
	}

	return r.GScore[r.end]
}
