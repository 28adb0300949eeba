package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleDijkstra shows weighted routing: the direct row is expensive, so the
// minimal-cost route dips through the unit-weight row below it.
func ExampleDijkstra() {
	g, _ := grid.New(5, grid.WithWeights())
	_ = g.SetStart(grid.Coord{Row: 0, Col: 0})
	_ = g.SetEnd(grid.Coord{Row: 0, Col: 4})
	for c := 1; c < 4; c++ {
		_ = g.SetWeight(grid.Coord{Row: 0, Col: c}, 9)
	}

	res, err := dijkstra.Dijkstra(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Cost())
	fmt.Println(res.Path())
	// Output:
	// true 6
	// [(0,0) (1,0) (1,1) (1,2) (1,3) (1,4) (0,4)]
}
