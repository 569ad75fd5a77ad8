/*
Package maze provides generation of perfect mazes on a rectangular cell grid.

A grid cell is either a wall or open. Rooms sit on even coordinates and the
odd cells between them act as walls that generation knocks down, so odd
dimensions give the cleanest layout; any positive dimensions are accepted.
The open cells of a finished maze form a spanning tree of the room graph:
every room is reachable and there is exactly one simple path between any two
rooms.

Generation does not know about start or goal cells. Callers that need
specific endpoints open (a solver picking corners, say) carve them with
CarveOpen after New returns.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// ErrInvalidDimensions is returned when rows or cols is not positive.
var ErrInvalidDimensions = errors.New("maze dimensions must be positive")

// Grid is a rectangular maze of wall and open cells. It is mutated only
// during generation and by CarveOpen; everything else is read-only.
type Grid struct {
	rows int
	cols int
	open [][]bool
}

// Options holds generation settings.
type Options struct {
	Rand *rand.Rand
}

// Option mutates generation Options.
type Option func(*Options)

// WithSeed makes generation reproducible: the same seed and dimensions
// always produce the same maze.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// New allocates a rows x cols grid of walls and carves a perfect maze into
// it with a randomized depth-first walk over the room cells.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	open := make([][]bool, rows)
	for i := range open {
		open[i] = make([]bool, cols)
	}

	g := &Grid{rows: rows, cols: cols, open: open}
	g.carve(options.Rand)
	return g, nil
}

// frame is one level of the depth-first walk: a room plus the shuffled room
// neighbors still to try. Holding frames on an explicit stack keeps deep
// mazes from hitting any recursion-depth ceiling.
type frame struct {
	room      Cell
	neighbors []Cell
	next      int
}

// carve runs the randomized depth-first spanning-tree walk ("recursive
// backtracker") from room (0,0). Each unvisited room reached two steps away
// gets the wall cell between opened, then the walk descends into it;
// exhausted frames pop off naturally.
func (g *Grid) carve(rng *rand.Rand) {
	start := Cell{}
	g.setOpen(start)
	stack := []*frame{{room: start, neighbors: g.shuffledRoomNeighbors(start, rng)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		descended := false
		for top.next < len(top.neighbors) {
			neighbor := top.neighbors[top.next]
			top.next++
			if g.IsOpen(neighbor.Row, neighbor.Col) {
				continue // room already visited
			}
			g.setOpen(top.room.Midpoint(neighbor))
			g.setOpen(neighbor)
			stack = append(stack, &frame{room: neighbor, neighbors: g.shuffledRoomNeighbors(neighbor, rng)})
			descended = true
			break
		}

		if !descended {
			stack = stack[:len(stack)-1]
		}
	}
}

// shuffledRoomNeighbors lists the in-bounds rooms two steps away from pos in
// random order. The shuffle is the only entropy in generation.
func (g *Grid) shuffledRoomNeighbors(pos Cell, rng *rand.Rand) []Cell {
	neighbors := make([]Cell, 0, len(roomSteps))
	for _, step := range roomSteps {
		neighbor := pos.Add(step)
		if g.inBounds(neighbor.Row, neighbor.Col) {
			neighbors = append(neighbors, neighbor)
		}
	}
	rng.Shuffle(len(neighbors), func(i, j int) {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	})
	return neighbors
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of grid columns.
func (g *Grid) Cols() int {
	return g.cols
}

// IsOpen reports whether the cell at (row, col) is open. Out-of-bounds
// coordinates are never open.
func (g *Grid) IsOpen(row, col int) bool {
	return g.inBounds(row, col) && g.open[row][col]
}

// CarveOpen forces a cell open. This is the documented post-generation step
// for callers that must guarantee their start and goal cells are
// traversable; the generator itself never sees endpoints.
func (g *Grid) CarveOpen(c Cell) {
	if g.inBounds(c.Row, c.Col) {
		g.open[c.Row][c.Col] = true
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) setOpen(c Cell) {
	g.open[c.Row][c.Col] = true
}

// String provides a textual representation of the maze, one rune pair per
// cell: "##" for walls, spaces for open cells.
func (g *Grid) String() string {
	var output strings.Builder

	output.WriteString("+" + strings.Repeat("--", g.cols) + "+\n")
	for row := 0; row < g.rows; row++ {
		output.WriteString("|")
		for col := 0; col < g.cols; col++ {
			if g.open[row][col] {
				output.WriteString("  ")
			} else {
				output.WriteString("##")
			}
		}
		output.WriteString("|\n")
	}
	output.WriteString("+" + strings.Repeat("--", g.cols) + "+\n")

	return output.String()
}
