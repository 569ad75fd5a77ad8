package i

import (
	"github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/google/uuid"
)

// PuzzleManager defines the interface for maze session orchestration:
// generating mazes, running searches over them, and serving replay frames.
type PuzzleManager interface {
	// Create generates a new maze session. A nil seed means a random maze;
	// a set seed reproduces the same maze every time.
	Create(rows, cols int, seed *int64) (*domain.Puzzle, error)

	// Get retrieves an existing session.
	Get(id uuid.UUID) (*domain.Puzzle, error)

	// Solve runs a shortest-path search between the endpoints and caches
	// the result on the session. An unreachable goal yields a solution
	// with Found set to false, not an error. A non-nil solver has its
	// solved-maze tally advanced when a path is found.
	Solve(id uuid.UUID, start, goal maze.Cell, solver uuid.UUID) (*domain.Solution, error)

	// Frame renders one replay frame of the session's most recent
	// solution.
	Frame(id uuid.UUID, index int) (*domain.FrameView, error)
}
