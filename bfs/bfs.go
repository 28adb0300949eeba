package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	g     *grid.Grid
	opts  Options
	queue []grid.Coord
	seen  map[grid.Coord]bool
	res   *Result
}

// BFS runs breadth-first search on the grid snapshot g from its designated
// start toward its designated end, applying any number of functional Options.
// Returns ErrGridNil for a nil grid, grid validation errors for missing
// endpoints, a context error on cancellation, or any user-supplied hook error.
// An unreachable end is not an error: the Result carries Found=false.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	start, _ := g.Start()
	end, _ := g.End()
	n := g.Size() * g.Size()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]grid.Coord, 0, n),
		seen:  make(map[grid.Coord]bool, n),
		res: &Result{
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
			end:    end,
		},
	}

	// seed with the start cell at depth 0
	w.seen[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop(end)
}

// loop processes the queue until the end is dequeued, the queue empties,
// an error occurs, or the run is cancelled.
func (w *walker) loop(end grid.Coord) error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, cur)
		if err := w.opts.OnVisit(cur); err != nil {
			return fmt.Errorf("bfs: OnVisit hook at %v: %w", cur, err)
		}

		// goal test on dequeue, deliberately not on enqueue: this matches the
		// reference trace even though stopping on discovery would be cheaper.
		if cur == end {
			w.res.Found = true

			return nil
		}

		depth := w.res.Depth[cur]
		for _, nbr := range w.g.Neighbors(cur) {
			if w.seen[nbr] || !w.g.IsPassable(nbr) {
				continue
			}
			w.seen[nbr] = true
			w.res.Depth[nbr] = depth + 1
			w.res.Parent[nbr] = cur
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}
