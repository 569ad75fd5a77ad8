package maze

// Cell is a single grid coordinate. It doubles as the node identity of the
// search graph, so it must stay a plain comparable value type.
type Cell struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Col index of the cell
}

// Add returns the cell offset from c by delta.
func (c Cell) Add(delta Cell) Cell {
	return Cell{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
}

// Midpoint returns the cell halfway between c and other. Only meaningful for
// cells exactly two steps apart along one axis, where it names the wall cell
// separating the two rooms.
func (c Cell) Midpoint(other Cell) Cell {
	return Cell{Row: (c.Row + other.Row) / 2, Col: (c.Col + other.Col) / 2}
}

// Manhattan returns the taxicab distance between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// roomSteps are the two-step jumps between neighboring room cells. Order is
// fixed: down, up, right, left.
var roomSteps = []Cell{
	{Row: 2},
	{Row: -2},
	{Col: 2},
	{Col: -2},
}

// Steps are the four axis-aligned single-cell moves, in the same fixed
// order as roomSteps.
var Steps = []Cell{
	{Row: 1},
	{Row: -1},
	{Col: 1},
	{Col: -1},
}
