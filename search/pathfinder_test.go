package search

import (
	"testing"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textGrid builds a Grid from strings, '.' open and '#' wall, so tests can
// pin exact layouts.
type textGrid []string

func (g textGrid) Rows() int { return len(g) }
func (g textGrid) Cols() int { return len(g[0]) }
func (g textGrid) IsOpen(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row]) && g[row][col] == '.'
}

func TestFindPathOpenGrid(t *testing.T) {
	grid := textGrid{
		".....",
		".....",
		".....",
		".....",
		".....",
	}
	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: 4, Col: 4}

	path, trace, err := FindPath(grid, start, goal)
	require.NoError(t, err)
	require.NotNil(t, path)

	t.Run("path is optimal", func(t *testing.T) {
		assert.Equal(t, 9, path.Len()) // Manhattan distance 8 edges
		assert.Equal(t, start, path[0])
		assert.Equal(t, goal, path[len(path)-1])
	})

	t.Run("terminal record", func(t *testing.T) {
		final := trace[len(trace)-1]
		assert.Equal(t, StatusGoalReached, final.Status)
		assert.Equal(t, goal, final.Node)
		assert.Equal(t, 8, final.G)
		assert.Equal(t, 0, final.H)
		assert.Equal(t, 8, final.F)
		assert.Empty(t, final.Neighbors)
	})

	t.Run("searching records are unique per cell", func(t *testing.T) {
		seen := map[maze.Cell]bool{}
		for _, step := range trace[:len(trace)-1] {
			assert.Equal(t, StatusSearching, step.Status)
			assert.False(t, seen[step.Node], "cell %v finalized twice", step.Node)
			seen[step.Node] = true
		}
	})

	t.Run("records are internally consistent", func(t *testing.T) {
		for _, step := range trace {
			assert.Equal(t, step.G+step.H, step.F)
			for _, eval := range step.Neighbors {
				assert.Equal(t, step.G+1, eval.G)
				assert.Equal(t, eval.G+eval.H, eval.F)
				assert.Equal(t, 1, maze.Manhattan(step.Node, eval.Cell))
			}
		}
	})
}

func TestFindPathInvalidEndpoints(t *testing.T) {
	grid := textGrid{
		"..#",
		"...",
	}

	cases := []struct {
		name        string
		start, goal maze.Cell
	}{
		{"start on wall", maze.Cell{Row: 0, Col: 2}, maze.Cell{Row: 0, Col: 0}},
		{"goal on wall", maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 0, Col: 2}},
		{"start out of bounds", maze.Cell{Row: -1, Col: 0}, maze.Cell{Row: 0, Col: 0}},
		{"goal out of bounds", maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 5, Col: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, trace, err := FindPath(grid, tc.start, tc.goal)
			assert.ErrorIs(t, err, ErrInvalidEndpoint)
			assert.Nil(t, path)
			assert.Nil(t, trace, "no partial trace on contract violation")
		})
	}
}

func TestFindPathNoPath(t *testing.T) {
	t.Run("isolated opposite corners", func(t *testing.T) {
		grid := textGrid{
			".##",
			"###",
			"##.",
		}
		path, trace, err := FindPath(grid, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2})
		assert.NoError(t, err)
		assert.Nil(t, path)
		require.Len(t, trace, 1) // only the start is reachable
		assert.Equal(t, StatusSearching, trace[0].Status)
		assert.Empty(t, trace[0].Neighbors)
	})

	t.Run("walled-off connector splits the grid", func(t *testing.T) {
		// Column 1 would be the sole connector between the halves and is
		// fully walled.
		grid := textGrid{
			".#.",
			".#.",
			".#.",
		}
		path, trace, err := FindPath(grid, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 0, Col: 2})
		assert.NoError(t, err)
		assert.Nil(t, path)

		visited := map[maze.Cell]bool{}
		for _, step := range trace {
			assert.Equal(t, StatusSearching, step.Status)
			visited[step.Node] = true
		}
		// The trace must cover the whole reachable half.
		assert.Equal(t, map[maze.Cell]bool{
			{Row: 0, Col: 0}: true,
			{Row: 1, Col: 0}: true,
			{Row: 2, Col: 0}: true,
		}, visited)
	})
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	grid := textGrid{".."}
	start := maze.Cell{}

	path, trace, err := FindPath(grid, start, start)
	require.NoError(t, err)
	assert.Equal(t, Path{start}, path)
	require.Len(t, trace, 1)
	assert.Equal(t, StatusGoalReached, trace[0].Status)
}

func TestFindPathDetour(t *testing.T) {
	// The wall forces the search away from the straight line.
	grid := textGrid{
		"....",
		".##.",
		".##.",
		"....",
	}
	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: 3, Col: 3}

	path, _, err := FindPath(grid, start, goal)
	require.NoError(t, err)
	assert.Equal(t, 7, path.Len())
	assertValidPath(t, grid, path, start, goal)
}

// TestFindPathOptimalOnMazes cross-checks A* path lengths against an
// independent breadth-first search on generated mazes.
func TestFindPathOptimalOnMazes(t *testing.T) {
	for _, seed := range []int64{3, 17, 404, 9000} {
		grid, err := maze.New(21, 21, maze.WithSeed(seed))
		require.NoError(t, err)

		start := maze.Cell{Row: 0, Col: 0}
		goal := maze.Cell{Row: 20, Col: 20}
		grid.CarveOpen(start)
		grid.CarveOpen(goal)

		path, trace, err := FindPath(grid, start, goal)
		require.NoError(t, err, "seed %d", seed)
		require.NotNil(t, path, "seed %d: perfect maze must connect all rooms", seed)

		assert.Equal(t, bfsShortestLen(grid, start, goal), path.Len(), "seed %d", seed)
		assertValidPath(t, grid, path, start, goal)

		final := trace[len(trace)-1]
		assert.Equal(t, StatusGoalReached, final.Status)
		assert.Equal(t, path.Len()-1, final.G)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	grid, err := maze.New(15, 15, maze.WithSeed(77))
	require.NoError(t, err)
	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: 14, Col: 14}

	pathA, traceA, err := FindPath(grid, start, goal)
	require.NoError(t, err)
	pathB, traceB, err := FindPath(grid, start, goal)
	require.NoError(t, err)

	assert.Equal(t, pathA, pathB)
	assert.Equal(t, traceA, traceB)
}

func assertValidPath(t *testing.T, g Grid, path Path, start, goal maze.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i, cell := range path {
		assert.True(t, g.IsOpen(cell.Row, cell.Col), "path cell %v is walled", cell)
		if i > 0 {
			assert.Equal(t, 1, maze.Manhattan(path[i-1], cell), "path cells %v and %v are not adjacent", path[i-1], cell)
		}
	}
}

// bfsShortestLen returns the number of cells on a shortest path from start
// to goal, or -1 when unreachable. Unit edge costs make plain BFS exact,
// giving an oracle that shares nothing with the A* implementation.
func bfsShortestLen(g Grid, start, goal maze.Cell) int {
	dist := map[maze.Cell]int{start: 1}
	queue := []maze.Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			return dist[current]
		}
		for _, step := range maze.Steps {
			next := current.Add(step)
			if _, seen := dist[next]; !seen && g.IsOpen(next.Row, next.Col) {
				dist[next] = dist[current] + 1
				queue = append(queue, next)
			}
		}
	}
	return -1
}
