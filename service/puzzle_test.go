package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/identity"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/repo"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/search"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPuzzleService(t *testing.T) (i.PuzzleManager, i.UserRepo) {
	t.Helper()
	users := repo.NewUserRepo()
	svc, err := NewPuzzleService(repo.NewPuzzleRepo(), users, zerolog.Nop(), nil)
	require.NoError(t, err)
	return svc, users
}

func seedPtr(v int64) *int64 { return &v }

func TestPuzzleServiceCreate(t *testing.T) {
	svc, _ := newPuzzleService(t)

	t.Run("creates and stores a session", func(t *testing.T) {
		puzzle, err := svc.Create(11, 11, seedPtr(42))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, puzzle.ID)
		assert.Equal(t, maze.Cell{Row: 0, Col: 0}, puzzle.Start)
		assert.Equal(t, maze.Cell{Row: 10, Col: 10}, puzzle.Goal)
		assert.True(t, puzzle.Grid.IsOpen(10, 10), "goal must be carved open")

		stored, err := svc.Get(puzzle.ID)
		require.NoError(t, err)
		assert.Same(t, puzzle, stored)
	})

	t.Run("same seed reproduces the maze", func(t *testing.T) {
		a, err := svc.Create(11, 11, seedPtr(7))
		require.NoError(t, err)
		b, err := svc.Create(11, 11, seedPtr(7))
		require.NoError(t, err)
		assert.Equal(t, a.Grid.String(), b.Grid.String())
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		_, err := svc.Create(0, 11, nil)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("rejects oversized mazes", func(t *testing.T) {
		_, err := svc.Create(500, 11, nil)
		assert.ErrorIs(t, err, ErrPuzzleTooLarge)
	})
}

func TestPuzzleServiceSolve(t *testing.T) {
	svc, users := newPuzzleService(t)

	puzzle, err := svc.Create(11, 11, seedPtr(3))
	require.NoError(t, err)

	t.Run("finds the path between the corners", func(t *testing.T) {
		solution, err := svc.Solve(puzzle.ID, puzzle.Start, puzzle.Goal, uuid.Nil)
		require.NoError(t, err)
		assert.True(t, solution.Found)
		assert.Equal(t, puzzle.Start, solution.Path[0])
		assert.Equal(t, puzzle.Goal, solution.Path[solution.Path.Len()-1])
		assert.Equal(t, search.StatusGoalReached, solution.Trace[len(solution.Trace)-1].Status)
	})

	t.Run("repeated solve returns the cache", func(t *testing.T) {
		first, err := svc.Solve(puzzle.ID, puzzle.Start, puzzle.Goal, uuid.Nil)
		require.NoError(t, err)
		second, err := svc.Solve(puzzle.ID, puzzle.Start, puzzle.Goal, uuid.Nil)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("invalid endpoints propagate", func(t *testing.T) {
		_, err := svc.Solve(puzzle.ID, maze.Cell{Row: -1, Col: 0}, puzzle.Goal, uuid.Nil)
		assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
	})

	t.Run("unknown puzzle", func(t *testing.T) {
		_, err := svc.Solve(uuid.New(), puzzle.Start, puzzle.Goal, uuid.Nil)
		assert.ErrorIs(t, err, ErrPuzzleNotFound)
	})

	t.Run("tallies the solver", func(t *testing.T) {
		user := &identity.User{ID: uuid.New(), Username: "maze_runner_2"}
		require.NoError(t, users.Save(user))

		fresh, err := svc.Create(9, 9, seedPtr(5))
		require.NoError(t, err)
		_, err = svc.Solve(fresh.ID, fresh.Start, fresh.Goal, user.ID)
		require.NoError(t, err)

		stored, err := users.ByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.SolvedCount)
	})
}

func TestPuzzleServiceFrame(t *testing.T) {
	svc, _ := newPuzzleService(t)

	puzzle, err := svc.Create(9, 9, seedPtr(13))
	require.NoError(t, err)

	t.Run("unsolved puzzle has no frames", func(t *testing.T) {
		_, err := svc.Frame(puzzle.ID, 0)
		assert.ErrorIs(t, err, ErrNotSolved)
	})

	solution, err := svc.Solve(puzzle.ID, puzzle.Start, puzzle.Goal, uuid.Nil)
	require.NoError(t, err)
	total := len(solution.Trace) + solution.Path.Len()

	t.Run("first frame", func(t *testing.T) {
		view, err := svc.Frame(puzzle.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, view.Index)
		assert.Equal(t, total, view.Total)
		assert.Contains(t, view.Panel, "Step 1")
		assert.NotEmpty(t, view.Board)
	})

	t.Run("last frame", func(t *testing.T) {
		view, err := svc.Frame(puzzle.ID, total-1)
		require.NoError(t, err)
		assert.True(t, view.Last)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := svc.Frame(puzzle.ID, total)
		assert.ErrorIs(t, err, ErrNoSuchFrame)
		_, err = svc.Frame(puzzle.ID, -1)
		assert.ErrorIs(t, err, ErrNoSuchFrame)
	})
}

func TestPuzzleServiceConcurrentSolveAndReplay(t *testing.T) {
	svc, _ := newPuzzleService(t)

	puzzle, err := svc.Create(11, 11, seedPtr(21))
	require.NoError(t, err)
	_, err = svc.Solve(puzzle.ID, puzzle.Start, puzzle.Goal, uuid.Nil)
	require.NoError(t, err)

	// Solves write the session's solution cache while replay and lookup
	// requests read it. Run under the race detector.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		goal := maze.Cell{Row: 0, Col: 2 * (i % 5)}
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, err := svc.Solve(puzzle.ID, puzzle.Start, goal, uuid.Nil)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			view, err := svc.Frame(puzzle.ID, 0)
			if assert.NoError(t, err) {
				assert.Equal(t, 0, view.Index)
			}
		}()
		go func() {
			defer wg.Done()
			stored, err := svc.Get(puzzle.ID)
			if assert.NoError(t, err) {
				assert.NotNil(t, stored.LastSolved())
			}
		}()
	}
	wg.Wait()
}

var errRepoDown = errors.New("repo unavailable")

type failingPuzzleRepo struct{}

func (failingPuzzleRepo) Save(*domain.Puzzle) error { return errRepoDown }
func (failingPuzzleRepo) ByID(uuid.UUID) (*domain.Puzzle, error) { return nil, errRepoDown }

func TestPuzzleServiceGetErrors(t *testing.T) {
	t.Run("missing session maps the repo sentinel", func(t *testing.T) {
		svc, _ := newPuzzleService(t)
		_, err := svc.Get(uuid.New())
		assert.ErrorIs(t, err, ErrPuzzleNotFound)
	})

	t.Run("other repo failures pass through wrapped", func(t *testing.T) {
		svc, err := NewPuzzleService(failingPuzzleRepo{}, repo.NewUserRepo(), zerolog.Nop(), nil)
		require.NoError(t, err)

		_, err = svc.Get(uuid.New())
		assert.ErrorIs(t, err, errRepoDown)
		assert.NotErrorIs(t, err, ErrPuzzleNotFound)
	})
}
