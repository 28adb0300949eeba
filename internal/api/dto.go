package api

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/solve"
)

// SolveRequest describes a full board and the algorithm(s) to run over it.
// Cells are [row, col] pairs. Set either "algorithm" or "algorithms"; the
// latter runs a comparison batch over the same board.
type SolveRequest struct {
	Size       int          `json:"size"`
	Start      [2]int       `json:"start"`
	End        [2]int       `json:"end"`
	Walls      [][2]int     `json:"walls,omitempty"`
	Weights    []WeightSpec `json:"weights,omitempty"`
	Algorithm  string       `json:"algorithm,omitempty"`
	Algorithms []string     `json:"algorithms,omitempty"`
}

// WeightSpec assigns a traversal weight to one cell.
type WeightSpec struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Weight int `json:"weight"`
}

// SolveResponse reports one finished run. Cost is null for algorithms that do
// not track cost (DFS) and for runs that found no path.
type SolveResponse struct {
	Algorithm string   `json:"algorithm"`
	RunID     string   `json:"run_id"`
	Found     bool     `json:"found"`
	Path      [][2]int `json:"path"`
	Cost      *int     `json:"cost"`
	Explored  int      `json:"explored"`
	ElapsedMs float64  `json:"elapsed_ms"`
}

// BatchResponse wraps a comparison run of several algorithms over one board.
type BatchResponse struct {
	Results []SolveResponse `json:"results"`
}

// algorithms resolves the requested algorithm names, treating the single and
// batch fields uniformly.
func (r *SolveRequest) algorithms() ([]solve.Algorithm, error) {
	names := r.Algorithms
	if len(names) == 0 {
		if r.Algorithm == "" {
			return nil, fmt.Errorf("missing algorithm")
		}
		names = []string{r.Algorithm}
	}
	algos := make([]solve.Algorithm, 0, len(names))
	for _, name := range names {
		a, err := solve.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}

	return algos, nil
}

// gridFromRequest materializes the request board. Every grid invariant
// violation (out-of-bounds wall, weight on a wall, coincident endpoints)
// surfaces as an error here, before any run starts.
func gridFromRequest(req *SolveRequest) (*grid.Grid, error) {
	var opts []grid.Option
	if len(req.Weights) > 0 {
		opts = append(opts, grid.WithWeights())
	}
	g, err := grid.New(req.Size, opts...)
	if err != nil {
		return nil, err
	}
	if err = g.SetStart(grid.Coord{Row: req.Start[0], Col: req.Start[1]}); err != nil {
		return nil, err
	}
	if err = g.SetEnd(grid.Coord{Row: req.End[0], Col: req.End[1]}); err != nil {
		return nil, err
	}
	for _, w := range req.Walls {
		if err = g.SetWall(grid.Coord{Row: w[0], Col: w[1]}, true); err != nil {
			return nil, err
		}
	}
	for _, ws := range req.Weights {
		if err = g.SetWeight(grid.Coord{Row: ws.Row, Col: ws.Col}, ws.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func toResponse(res *solve.Result) SolveResponse {
	path := make([][2]int, len(res.Path))
	for i, c := range res.Path {
		path[i] = [2]int{c.Row, c.Col}
	}
	var cost *int
	if res.HasCost {
		v := res.Cost
		cost = &v
	}

	return SolveResponse{
		Algorithm: res.Algorithm.String(),
		RunID:     res.RunID,
		Found:     res.Found,
		Path:      path,
		Cost:      cost,
		Explored:  res.Explored,
		ElapsedMs: float64(res.Elapsed.Microseconds()) / 1000.0,
	}
}
