package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// frame is one entry of the explicit traversal stack: a cell and the index of
// the next neighbor to examine. Keeping the cursor in the frame reproduces
// the recursive formulation's resume-after-return behavior exactly.
type frame struct {
	c    grid.Coord
	nbrs []grid.Coord
	next int
}

// walker encapsulates mutable DFS state for a single run.
type walker struct {
	g    *grid.Grid
	opts Options
	res  *Result
}

// DFS performs depth-first search on the grid snapshot g from its designated
// start toward its designated end, applying any number of functional Options.
// Returns ErrGridNil for a nil grid, grid validation errors for missing
// endpoints, a context error on cancellation, or any user-supplied hook error.
// An unreachable end is not an error: the Result carries Found=false.
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
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
	res := &Result{
		Order:   make([]grid.Coord, 0, n),
		Parent:  make(map[grid.Coord]grid.Coord, n),
		Visited: make(map[grid.Coord]bool, n),
		end:     end,
	}

	w := &walker{g: g, opts: o, res: res}

	return res, w.run(start, end)
}

// run drives the explicit-stack traversal until the end is discovered or the
// reachable component is exhausted.
func (w *walker) run(start, end grid.Coord) error {
	if err := w.visit(start); err != nil {
		return err
	}
	stack := make([]frame, 0, w.g.Size()*w.g.Size())
	stack = append(stack, frame{c: start, nbrs: w.g.Neighbors(start)})

	for len(stack) > 0 {
		// cancellation check (once per expansion step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]
		if f.next >= len(f.nbrs) {
			// dead end: fail back to the caller frame
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := f.nbrs[f.next]
		f.next++

		// goal test precedes the visited check, matching the recursive
		// reference: the end is claimed the moment it appears as a neighbor.
		if nbr == end {
			w.res.Parent[nbr] = f.c
			w.res.Found = true

			return nil
		}
		if !w.g.IsPassable(nbr) || w.res.Visited[nbr] {
			continue
		}

		w.res.Parent[nbr] = f.c
		if err := w.visit(nbr); err != nil {
			return err
		}
		stack = append(stack, frame{c: nbr, nbrs: w.g.Neighbors(nbr)})
	}

	return nil
}

// visit marks c, records it in Order, and fires the OnVisit hook.
func (w *walker) visit(c grid.Coord) error {
	w.res.Visited[c] = true
	w.res.Order = append(w.res.Order, c)
	if err := w.opts.OnVisit(c); err != nil {
		return fmt.Errorf("dfs: OnVisit hook at %v: %w", c, err)
	}

	return nil
}
