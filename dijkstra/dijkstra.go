package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Dijkstra computes the minimal-cost route on the grid snapshot g from its
// designated start toward its designated end, applying any number of
// functional Options. Returns ErrGridNil for a nil grid, grid validation
// errors for missing endpoints, a context error on cancellation, or any
// user-supplied hook error. An unreachable end is not an error: the Result
// carries Found=false.
func Dijkstra(g *grid.Grid, opts ...Option) (*Result, error) {
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
		g:       g,
		opts:    o,
		settled: make(map[grid.Coord]bool, n),
		res: &Result{
			Order:  make([]grid.Coord, 0, n),
			Dist:   make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
			end:    end,
		},
	}

	r.res.Dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &item{c: start, dist: 0, idx: g.Index(start)})

	return r.res, r.process(end)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid
	opts    Options
	settled map[grid.Coord]bool
	pq      minPQ
	res     *Result
}

// process repeatedly settles the minimum-distance cell and relaxes its
// neighbors until the end is settled or the frontier empties.
func (r *runner) process(end grid.Coord) error {
	for r.pq.Len() > 0 {
		// cancellation check (once per settle step)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(*item)
		if r.settled[it.c] {
			// stale entry from lazy decrease-key
			continue
		}
		r.settled[it.c] = true

		r.res.Order = append(r.res.Order, it.c)
		if err := r.opts.OnVisit(it.c); err != nil {
			return fmt.Errorf("dijkstra: OnVisit hook at %v: %w", it.c, err)
		}

		// the settled minimum is final; stop the moment it is the end
		if it.c == end {
			r.res.Found = true

			return nil
		}

		r.relax(it.c)
	}

	return nil
}

// relax attempts to improve the distance of each passable, unsettled neighbor
// of u, recording the predecessor and pushing a fresh heap entry on success.
func (r *runner) relax(u grid.Coord) {
	du := r.res.Dist[u]
	for _, v := range r.g.Neighbors(u) {
		if r.settled[v] || !r.g.IsPassable(v) {
			continue
		}
		newDist := du + r.g.EdgeWeight(u, v)
		// strict improvement only, so cost-equal rediscoveries never
		// perturb the predecessor chain
		if cur, ok := r.res.Dist[v]; ok && newDist >= cur {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Parent[v] = u
		heap.Push(&r.pq, &item{c: v, dist: newDist, idx: r.g.Index(v)})
	}
}

// item is a frontier entry: a cell, its tentative distance, and its row-major
// index used as the deterministic tie-break among equal distances.
type item struct {
	c    grid.Coord
	dist int
	idx  int
}

// minPQ is a min-heap of *item ordered by dist, then row-major index.
// Lazy decrease-key: improved distances push duplicates; stale entries are
// skipped against the settled set when popped.
type minPQ []*item

func (pq minPQ) Len() int { return len(pq) }

func (pq minPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq minPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *minPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *minPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
