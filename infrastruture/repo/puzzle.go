package repo

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
)

var ErrPuzzleNotFound = errors.New("puzzle not found")

// PuzzleRepo is an in-memory, concurrency-safe puzzle session store.
type PuzzleRepo struct {
	mu      sync.RWMutex
	puzzles map[uuid.UUID]*domain.Puzzle
}

// NewPuzzleRepo constructs an empty puzzle repository.
func NewPuzzleRepo() i.PuzzleRepo {
	return &PuzzleRepo{puzzles: make(map[uuid.UUID]*domain.Puzzle)}
}

// Save inserts or updates a puzzle session.
func (r *PuzzleRepo) Save(puzzle *domain.Puzzle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puzzles[puzzle.ID] = puzzle
	return nil
}

// ByID looks up a puzzle session by ID.
func (r *PuzzleRepo) ByID(id uuid.UUID) (*domain.Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if puzzle, ok := r.puzzles[id]; ok {
		return puzzle, nil
	}
	return nil, ErrPuzzleNotFound
}
