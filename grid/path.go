package grid

// ReconstructPath walks the predecessor map backward from end, appending each
// coordinate until one has no predecessor (by construction, the start cell),
// then reverses the accumulated sequence to yield start→end order.
//
// Callers must only invoke this for a successful search: if end never
// received a predecessor and is not itself the terminal of a one-cell chain,
// the single-element slice {end} is returned, which is meaningless for an
// unfound result. Solvers in this module guard on their Found flag first.
//
// Complexity: O(L) where L is the path length.
func ReconstructPath(parent map[Coord]Coord, end Coord) []Coord {
	path := []Coord{end}
	for cur := end; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse in place to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the edge weights along a start→end path: the cost of entering
// each cell after the first, under g's weight configuration.
// Complexity: O(L).
func PathCost(g *Grid, path []Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.EdgeWeight(path[i-1], path[i])
	}

	return total
}
