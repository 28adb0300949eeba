package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// AStar computes the optimal-cost route on the grid snapshot g from its
// designated start toward its designated end, guided by the Manhattan
// heuristic, applying any number of functional Options. Returns ErrGridNil
// for a nil grid, grid validation errors for missing endpoints, a context
// error on cancellation, or any user-supplied hook error. An unreachable end
// is not an error: the Result carries Found=false.
func AStar(g *grid.Grid, opts ...Option) (*Result, error) {
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
	r := &runner{
		g:      g,
		opts:   o,
		end:    end,
		closed: make(map[grid.Coord]bool, n),
		res: &Result{
			Order:  make([]grid.Coord, 0, n),
			GScore: make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
			end:    end,
		},
	}

	r.res.GScore[start] = 0
	heap.Init(&r.open)
	heap.Push(&r.open, &item{
		c:   start,
		f:   start.Manhattan(end),
		g:   0,
		idx: g.Index(start),
	})

	return r.res, r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *grid.Grid
	opts   Options
	end    grid.Coord
	closed map[grid.Coord]bool
	open   openPQ
	res    *Result
}

// process repeatedly pops the minimum-fScore open cell, settles it, and
// relaxes its neighbors until the end is popped or the open set empties.
func (r *runner) process() error {
	for r.open.Len() > 0 {
		// cancellation check (once per settle step)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		it := heap.Pop(&r.open).(*item)
		if r.closed[it.c] {
			// stale entry from lazy decrease-key
			continue
		}
		r.closed[it.c] = true

		r.res.Order = append(r.res.Order, it.c)
		if err := r.opts.OnVisit(it.c); err != nil {
			return fmt.Errorf("astar: OnVisit hook at %v: %w", it.c, err)
		}

		if it.c == r.end {
			r.res.Found = true

			return nil
		}

		r.relax(it.c)
	}

	return nil
}

// relax attempts to improve the gScore of each passable, unsettled neighbor
// of u, recomputing fScore and pushing a fresh open-set entry on success.
func (r *runner) relax(u grid.Coord) {
	gu := r.res.GScore[u]
	for _, v := range r.g.Neighbors(u) {
		if r.closed[v] || !r.g.IsPassable(v) {
			continue
		}
		newG := gu + r.g.EdgeWeight(u, v)
		if cur, ok := r.res.GScore[v]; ok && newG >= cur {
			continue
		}
		r.res.GScore[v] = newG
		r.res.Parent[v] = u
		heap.Push(&r.open, &item{
			c:   v,
			f:   newG + v.Manhattan(r.end),
			g:   newG,
			idx: r.g.Index(v),
		})
	}
}

// item is an open-set entry: a cell, its fScore and gScore, and its row-major
// index for the final tie-break.
type item struct {
	c   grid.Coord
	f   int
	g   int
	idx int
}

// openPQ is a min-heap of *item ordered by fScore, tie-broken by larger
// gScore (prefer entries deeper along a route), then by row-major index.
type openPQ []*item

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}

	return pq[i].idx < pq[j].idx
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
