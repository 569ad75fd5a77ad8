package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/repo"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/replay"
	"github.com/beka-birhanu/labyrinth-api/search"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultMaxDimension = 101

var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrPuzzleTooLarge = errors.New("puzzle dimensions exceed the configured maximum")
	ErrNotSolved      = errors.New("puzzle has no solution to replay yet")
	ErrNoSuchFrame    = errors.New("replay frame index out of range")
)

// PuzzleOptions configures the puzzle service.
type PuzzleOptions struct {
	MaxDimension int
}

// PuzzleService orchestrates maze generation, searching, and replay over a
// session store. Solves are serialized; each individual search is
// synchronous and single-threaded.
type PuzzleService struct {
	puzzles i.PuzzleRepo
	users   i.UserRepo
	logger  zerolog.Logger
	opts    *PuzzleOptions

	mu sync.Mutex
}

// NewPuzzleService constructs a PuzzleService.
func NewPuzzleService(puzzles i.PuzzleRepo, users i.UserRepo, logger zerolog.Logger, opts *PuzzleOptions) (i.PuzzleManager, error) {
	if puzzles == nil {
		return nil, errors.New("puzzle repository is required")
	}

	if opts == nil {
		opts = &PuzzleOptions{}
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	return &PuzzleService{
		puzzles: puzzles,
		users:   users,
		logger:  logger,
		opts:    opts,
	}, nil
}

// Create generates a maze and stores it as a new session. The default
// endpoints are the opposite corners, carved open after generation.
func (s *PuzzleService) Create(rows, cols int, seed *int64) (*domain.Puzzle, error) {
	if rows > s.opts.MaxDimension || cols > s.opts.MaxDimension {
		return nil, ErrPuzzleTooLarge
	}

	mazeSeed := rand.Int63()
	if seed != nil {
		mazeSeed = *seed
	}

	grid, err := maze.New(rows, cols, maze.WithSeed(mazeSeed))
	if err != nil {
		return nil, err
	}

	puzzle := domain.NewPuzzle(domain.PuzzleConfig{
		ID:    uuid.New(),
		Grid:  grid,
		Start: maze.Cell{Row: 0, Col: 0},
		Goal:  maze.Cell{Row: rows - 1, Col: cols - 1},
		Seed:  mazeSeed,
	})

	if err := s.puzzles.Save(puzzle); err != nil {
		return nil, fmt.Errorf("saving puzzle: %w", err)
	}

	s.logger.Info().
		Str("puzzle", puzzle.ID.String()).
		Int("rows", rows).
		Int("cols", cols).
		Int64("seed", mazeSeed).
		Msg("puzzle created")
	return puzzle, nil
}

// Get retrieves a session by ID.
func (s *PuzzleService) Get(id uuid.UUID) (*domain.Puzzle, error) {
	puzzle, err := s.puzzles.ByID(id)
	if errors.Is(err, repo.ErrPuzzleNotFound) {
		return nil, ErrPuzzleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading puzzle: %w", err)
	}
	return puzzle, nil
}

// Solve runs the search between the endpoints, caching the result on the
// session. Repeated solves of the same pair return the cache; the search is
// deterministic so the cache never goes stale.
func (s *PuzzleService) Solve(id uuid.UUID, start, goal maze.Cell, solver uuid.UUID) (*domain.Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	puzzle, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if cached := puzzle.SolutionFor(start, goal); cached != nil {
		return cached, nil
	}

	path, trace, err := search.FindPath(puzzle.Grid, start, goal)
	if err != nil {
		return nil, err
	}

	solution := &domain.Solution{
		Start: start,
		Goal:  goal,
		Found: path != nil,
		Path:  path,
		Trace: trace,
	}
	puzzle.AddSolution(solution)

	if err := s.puzzles.Save(puzzle); err != nil {
		return nil, fmt.Errorf("saving solution: %w", err)
	}

	s.logger.Info().
		Str("puzzle", puzzle.ID.String()).
		Bool("found", solution.Found).
		Int("path_len", solution.Path.Len()).
		Int("steps", len(solution.Trace)).
		Msg("puzzle solved")

	if solution.Found {
		s.recordSolve(solver)
	}
	return solution, nil
}

// Frame renders one frame of the session's most recent solution.
func (s *PuzzleService) Frame(id uuid.UUID, index int) (*domain.FrameView, error) {
	puzzle, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	solution := puzzle.LastSolved()
	if solution == nil {
		return nil, ErrNotSolved
	}

	replayer := replay.New(puzzle.Grid, solution.Start, solution.Goal, solution.Path, solution.Trace)
	if index < 0 || index >= replayer.Len() {
		return nil, ErrNoSuchFrame
	}

	frame := replayer.Frame(index)
	return &domain.FrameView{
		Index: frame.Index,
		Total: replayer.Len(),
		Phase: string(frame.Phase),
		Panel: frame.Panel(),
		Board: replayer.Board(frame),
		Last:  frame.Last,
	}, nil
}

// recordSolve advances the solver's tally. Solves without a known user are
// fine; failures here never fail the solve itself.
func (s *PuzzleService) recordSolve(solver uuid.UUID) {
	if s.users == nil || solver == uuid.Nil {
		return
	}

	user, err := s.users.ByID(solver)
	if err != nil {
		s.logger.Warn().Str("user", solver.String()).Msg("solver not found, tally skipped")
		return
	}
	user.RecordSolve()
	if err := s.users.Save(user); err != nil {
		s.logger.Warn().Err(err).Str("user", solver.String()).Msg("saving solve tally")
	}
}
