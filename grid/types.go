// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Grid side-length bounds. Sizes outside this range are rejected by New.
const (
	// MinSize is the smallest permitted grid side length.
	MinSize = 5
	// MaxSize is the largest permitted grid side length.
	MaxSize = 30
)

// DefaultWeight is the traversal weight every cell starts with.
const DefaultWeight = 1

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadSize indicates a side length outside [MinSize, MaxSize].
	ErrBadSize = errors.New("grid: size must be within [5, 30]")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadWeight indicates a traversal weight below 1.
	ErrBadWeight = errors.New("grid: weight must be >= 1")
	// ErrCellIsWall indicates an attempt to place start/end on a wall,
	// or a wall on the start/end cell.
	ErrCellIsWall = errors.New("grid: cell is a wall")
	// ErrSameStartEnd indicates start and end would occupy the same cell.
	ErrSameStartEnd = errors.New("grid: start and end must differ")
	// ErrStartUnset indicates no start cell has been designated.
	ErrStartUnset = errors.New("grid: start cell not set")
	// ErrEndUnset indicates no end cell has been designated.
	ErrEndUnset = errors.New("grid: end cell not set")
)

// Coord identifies a cell by row and column, both zero-based.
type Coord struct {
	Row, Col int
}

// Manhattan returns the L1 distance |Δrow| + |Δcol| between c and o.
// It is the admissible, consistent heuristic for 4-directional movement.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	dr := c.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - o.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// cell is the internal per-cell state: wall flag and traversal weight.
type cell struct {
	wall   bool
	weight int
}

// Option configures Grid construction via functional arguments.
type Option func(*options)

type options struct {
	weights bool
}

// WithWeights enables per-cell traversal weights. When disabled (default),
// every edge costs exactly 1 regardless of assigned weights.
func WithWeights() Option {
	return func(o *options) {
		o.weights = true
	}
}

// neighborOffsets lists the 4-directional adjacency deltas in the fixed,
// contract-level enumeration order: up, down, left, right.
var neighborOffsets = [4][2]int{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}
