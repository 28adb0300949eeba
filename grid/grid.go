package grid

// Grid is a square matrix of cells with designated start and end coordinates.
// The zero value is not usable; construct with New. Mutators (SetWall,
// SetStart, ...) are intended for the interactive setup phase; solvers must
// receive the value returned by Snapshot and treat it as read-only.
type Grid struct {
	size     int
	cells    [][]cell
	start    Coord
	end      Coord
	hasStart bool
	hasEnd   bool
	weights  bool
}

// New constructs an empty (wall-free) Grid with the given side length.
// All cells start passable with weight DefaultWeight.
// Returns ErrBadSize if size is outside [MinSize, MaxSize].
// Complexity: O(size²) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrBadSize
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	cells := make([][]cell, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]cell, size)
		for c := 0; c < size; c++ {
			cells[r][c].weight = DefaultWeight
		}
	}

	return &Grid{size: size, cells: cells, weights: o.weights}, nil
}

// Size returns the grid side length.
func (g *Grid) Size() int { return g.size }

// WeightsEnabled reports whether per-cell weights participate in edge costs.
func (g *Grid) WeightsEnabled() bool { return g.weights }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// IsWall reports whether the cell at c is a wall. Out-of-bounds coordinates
// report false; callers are expected to bounds-check via InBounds or rely on
// Neighbors, which never yields out-of-bounds coordinates.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col].wall
}

// IsPassable reports whether the cell at c may be traversed: in bounds and
// not a wall.
func (g *Grid) IsPassable(c Coord) bool {
	return g.InBounds(c) && !g.cells[c.Row][c.Col].wall
}

// Weight returns the traversal weight assigned to the cell at c
// (DefaultWeight unless changed via SetWeight).
func (g *Grid) Weight(c Coord) int {
	if !g.InBounds(c) {
		return DefaultWeight
	}

	return g.cells[c.Row][c.Col].weight
}

// EdgeWeight returns the cost of moving from one cell into to:
// the destination cell's weight when weights are enabled, 1 otherwise.
// Complexity: O(1).
func (g *Grid) EdgeWeight(_, to Coord) int {
	if !g.weights {
		return 1
	}

	return g.Weight(to)
}

// Neighbors returns the axis-aligned neighbors of c clipped to the grid
// bounds, in the fixed enumeration order up, down, left, right. Walls are
// included; passability is the caller's concern (IsPassable).
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps c to its row-major index: Row*size + Col. Used as the
// deterministic tie-break key by the weighted solvers.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.size + c.Col
}

// Start returns the designated start coordinate; ok is false if unset.
func (g *Grid) Start() (c Coord, ok bool) { return g.start, g.hasStart }

// End returns the designated end coordinate; ok is false if unset.
func (g *Grid) End() (c Coord, ok bool) { return g.end, g.hasEnd }

// SetStart designates c as the start cell.
// Returns ErrOutOfBounds, ErrCellIsWall if c is a wall,
// or ErrSameStartEnd if c equals the current end.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.cells[c.Row][c.Col].wall {
		return ErrCellIsWall
	}
	if g.hasEnd && g.end == c {
		return ErrSameStartEnd
	}
	g.start, g.hasStart = c, true

	return nil
}

// SetEnd designates c as the end cell.
// Returns ErrOutOfBounds, ErrCellIsWall if c is a wall,
// or ErrSameStartEnd if c equals the current start.
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.cells[c.Row][c.Col].wall {
		return ErrCellIsWall
	}
	if g.hasStart && g.start == c {
		return ErrSameStartEnd
	}
	g.end, g.hasEnd = c, true

	return nil
}

// SetWall marks or clears the wall flag of the cell at c.
// Returns ErrOutOfBounds, or ErrCellIsWall when attempting to wall the
// start or end cell.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if wall && ((g.hasStart && g.start == c) || (g.hasEnd && g.end == c)) {
		return ErrCellIsWall
	}
	g.cells[c.Row][c.Col].wall = wall

	return nil
}

// SetWeight assigns a traversal weight to the cell at c.
// Returns ErrOutOfBounds or ErrBadWeight for weights below 1.
func (g *Grid) SetWeight(c Coord, w int) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if w < DefaultWeight {
		return ErrBadWeight
	}
	g.cells[c.Row][c.Col].weight = w

	return nil
}

// ClearWalls removes every wall, leaving start, end, and weights intact.
// Complexity: O(size²).
func (g *Grid) ClearWalls() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].wall = false
		}
	}
}

// Validate confirms the grid is runnable: both start and end designated.
// Returns ErrStartUnset or ErrEndUnset otherwise.
func (g *Grid) Validate() error {
	if !g.hasStart {
		return ErrStartUnset
	}
	if !g.hasEnd {
		return ErrEndUnset
	}

	return nil
}

// Snapshot returns an independent deep copy of the grid. Solvers receive
// snapshots so later interactive mutations never leak into an active run.
// Complexity: O(size²) time and memory.
func (g *Grid) Snapshot() *Grid {
	cells := make([][]cell, g.size)
	for r := 0; r < g.size; r++ {
		cells[r] = make([]cell, g.size)
		copy(cells[r], g.cells[r])
	}
	cp := *g
	cp.cells = cells

	return &cp
}
