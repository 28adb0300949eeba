// Package bfs defines options, sentinel errors, and the result type
// for breadth-first search over a grid.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed to BFS.
var ErrGridNil = errors.New("bfs: grid is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnVisit is called once per dequeued cell, in dequeue order.
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

// WithOnVisit registers a visitation hook; returning an error aborts the BFS.
func WithOnVisit(fn func(c grid.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result captures the outcome of a breadth-first traversal.
type Result struct {
	// Found reports whether the end cell was dequeued.
	Found bool

	// Order records cells in dequeue sequence. When Found, the end cell is
	// the last entry (goal test on dequeue).
	Order []grid.Coord

	// Depth maps each discovered cell to its distance from start in edges.
	Depth map[grid.Coord]int

	// Parent maps each discovered cell to its predecessor in the BFS tree.
	// The start cell has no entry.
	Parent map[grid.Coord]grid.Coord

	end grid.Coord
}

// Path reconstructs the shortest start→end route from the Parent chain.
// Returns nil when Found is false.
func (r *Result) Path() []grid.Coord {
	if !r.Found {
		return nil
	}

	return grid.ReconstructPath(r.Parent, r.end)
}

// Cost returns the path length in edges (Depth[end]); zero when not found.
func (r *Result) Cost() int {
	if !r.Found {
		return 0
	}

	return r.Depth[r.end]
}
