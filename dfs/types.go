// Package dfs defines options, sentinel errors, and the result type
// for depth-first search over a grid.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed to DFS.
var ErrGridNil = errors.New("dfs: grid is nil")

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per cell expansion.
	Ctx context.Context

	// OnVisit is called exactly once per visited cell, in visitation order,
	// before its neighbors are explored. Returning an error aborts the run.
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

// WithOnVisit registers a visitation hook; returning an error aborts the DFS.
func WithOnVisit(fn func(c grid.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Found reports whether the end cell was reached.
	Found bool

	// Order records cells in the sequence they were visited. The end cell is
	// never visit-marked (success is detected on discovery), so it does not
	// appear here.
	Order []grid.Coord

	// Parent maps each discovered cell to the cell it was discovered from.
	// The start cell has no entry.
	Parent map[grid.Coord]grid.Coord

	// Visited flags every cell that was visit-marked during the run.
	Visited map[grid.Coord]bool

	end grid.Coord
}

// Path reconstructs the discovered start→end route from the Parent chain.
// Returns nil when Found is false.
func (r *Result) Path() []grid.Coord {
	if !r.Found {
		return nil
	}

	return grid.ReconstructPath(r.Parent, r.end)
}
