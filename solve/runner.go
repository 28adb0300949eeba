package solve

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
)

// Runner owns a working grid and serializes solves over it. At most one run
// is in flight at a time; concurrent Run calls and any grid mutation during a
// run fail fast with ErrRunInFlight. Cancellation is cooperative: the active
// search stops after its current step.
type Runner struct {
	mu     sync.Mutex
	g      *grid.Grid
	active bool
	cancel context.CancelFunc
}

// NewRunner wraps the given working grid. Returns ErrGridNil for nil.
func NewRunner(g *grid.Grid) (*Runner, error) {
	if g == nil {
		return nil, ErrGridNil
	}

	return &Runner{g: g}, nil
}

// Active reports whether a run is currently in flight.
func (r *Runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.active
}

// Run validates the configuration, snapshots the working grid, and executes
// the selected algorithm. The snapshot decouples the search from any grid
// edits made after the run finishes; edits during the run are rejected
// anyway. Returns ErrRunInFlight synchronously when a run is already active.
func (r *Runner) Run(ctx context.Context, algo Algorithm, opts ...Option) (*Result, error) {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()

		return nil, ErrRunInFlight
	}
	// configuration errors surface before the run starts, with no state change
	if !algo.Valid() {
		r.mu.Unlock()

		return nil, ErrUnknownAlgorithm
	}
	if err := r.g.Validate(); err != nil {
		r.mu.Unlock()

		return nil, err
	}
	snap := r.g.Snapshot()
	runCtx, cancel := context.WithCancel(ctx)
	r.active = true
	r.cancel = cancel
	r.mu.Unlock()

	defer func() {
		cancel()
		r.mu.Lock()
		r.active = false
		r.cancel = nil
		r.mu.Unlock()
	}()

	res, err := Solve(snap, algo, append(opts, WithContext(runCtx))...)
	if err != nil {
		return nil, err
	}
	res.RunID = uuid.NewString()

	return res, nil
}

// Cancel requests that the active run stop after its current step.
// Reports whether a run was active to receive the request.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || r.cancel == nil {
		return false
	}
	r.cancel()

	return true
}

// Grid returns the working grid for read access. Use the Runner's guarded
// mutators to change it; direct mutation bypasses the in-flight protection.
func (r *Runner) Grid() *grid.Grid {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.g
}

// guard runs fn against the working grid unless a run is in flight.
func (r *Runner) guard(fn func(g *grid.Grid) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		return ErrRunInFlight
	}

	return fn(r.g)
}

// Resize replaces the working grid with a fresh, wall-free grid of the given
// size, preserving the weights mode. Start and end must be designated again.
// Rejected with ErrRunInFlight while a run is active, never applied mid-run.
func (r *Runner) Resize(size int) error {
	return r.guard(func(g *grid.Grid) error {
		var opts []grid.Option
		if g.WeightsEnabled() {
			opts = append(opts, grid.WithWeights())
		}
		fresh, err := grid.New(size, opts...)
		if err != nil {
			return err
		}
		r.g = fresh

		return nil
	})
}

// Swap installs a new working grid wholesale, replacing walls, weights and
// endpoints in one step. Rejected with ErrRunInFlight while a run is active.
func (r *Runner) Swap(g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}

	return r.guard(func(*grid.Grid) error {
		r.g = g

		return nil
	})
}

// ClearWalls removes every wall from the working grid between runs.
func (r *Runner) ClearWalls() error {
	return r.guard(func(g *grid.Grid) error {
		g.ClearWalls()

		return nil
	})
}

// SetWall marks or clears a wall on the working grid between runs.
func (r *Runner) SetWall(c grid.Coord, wall bool) error {
	return r.guard(func(g *grid.Grid) error { return g.SetWall(c, wall) })
}

// SetStart designates the start cell on the working grid between runs.
func (r *Runner) SetStart(c grid.Coord) error {
	return r.guard(func(g *grid.Grid) error { return g.SetStart(c) })
}

// SetEnd designates the end cell on the working grid between runs.
func (r *Runner) SetEnd(c grid.Coord) error {
	return r.guard(func(g *grid.Grid) error { return g.SetEnd(c) })
}

// SetWeight assigns a traversal weight on the working grid between runs.
func (r *Runner) SetWeight(c grid.Coord, w int) error {
	return r.guard(func(g *grid.Grid) error { return g.SetWeight(c, w) })
}
