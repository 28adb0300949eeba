// Package solve defines the algorithm selector, the uniform result, the
// event stream types, and sentinel errors for the engine façade.
package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for the solve layer.
var (
	// ErrGridNil is returned if a nil grid pointer is passed to Solve.
	ErrGridNil = errors.New("solve: grid is nil")
	// ErrUnknownAlgorithm is returned for an unrecognized algorithm selector.
	ErrUnknownAlgorithm = errors.New("solve: unknown algorithm")
	// ErrRunInFlight is returned when a run or a grid mutation is requested
	// while another run is active. The request is rejected, never queued.
	ErrRunInFlight = errors.New("solve: another run is in flight")
)

// Algorithm selects one of the four search strategies.
type Algorithm int

const (
	// DFS is depth-first search: finds a path, not the shortest, no cost.
	DFS Algorithm = iota
	// BFS is breadth-first search: shortest path by edge count.
	BFS
	// Dijkstra is Dijkstra's algorithm: minimal summed weight.
	Dijkstra
	// AStar is A* with the Manhattan heuristic: minimal summed weight,
	// typically fewer expansions than Dijkstra.
	AStar
)

// algorithmNames maps selectors to their wire/CLI spelling.
var algorithmNames = map[Algorithm]string{
	DFS:      "dfs",
	BFS:      "bfs",
	Dijkstra: "dijkstra",
	AStar:    "astar",
}

// String returns the canonical lower-case name of the algorithm.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Valid reports whether a names one of the four strategies.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]

	return ok
}

// ParseAlgorithm maps a wire/CLI name to its Algorithm selector.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Algorithms returns all selectors in their canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, BFS, Dijkstra, AStar}
}

// EventKind discriminates trace events.
type EventKind int

const (
	// KindVisited marks one cell expansion; emitted in exploration order.
	KindVisited EventKind = iota
	// KindPath marks one cell of the reconstructed route; emitted in
	// start→end order after a successful search.
	KindPath
)

// String returns the wire spelling of the event kind.
func (k EventKind) String() string {
	if k == KindPath {
		return "path"
	}

	return "visited"
}

// Event is a single trace notification consumed by rendering layers.
type Event struct {
	Coord grid.Coord
	Kind  EventKind
}

// Result is the uniform outcome of one solve invocation.
type Result struct {
	// Algorithm that produced this result.
	Algorithm Algorithm
	// RunID tags results produced through a Runner; empty for direct Solve.
	RunID string
	// Found reports whether a route from start to end exists.
	Found bool
	// Path is the ordered start→end route (inclusive); nil when not found.
	Path []grid.Coord
	// Cost is the route cost: edge count for BFS, summed weights for
	// Dijkstra/A*. Meaningless when HasCost is false (DFS or not found).
	Cost int
	// HasCost reports whether Cost is defined for this algorithm and outcome.
	HasCost bool
	// Explored counts the cells expanded during the search.
	Explored int
	// Elapsed is the wall-clock duration of the run, informational only.
	Elapsed time.Duration
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a solve invocation.
type Options struct {
	// Ctx allows cancellation and deadlines, checked after every step.
	Ctx context.Context

	// OnEvent receives the incremental trace: visited events during the
	// search, then path events after reconstruction.
	OnEvent func(Event)
}

// DefaultOptions returns Options with a background context and no event sink.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnEvent: func(Event) {},
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

// WithOnEvent registers the trace event sink.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}
