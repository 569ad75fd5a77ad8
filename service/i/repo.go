package i

import (
	"github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/identity"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	Save(user *identity.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found.
	ByID(id uuid.UUID) (*identity.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found.
	ByUsername(username string) (*identity.User, error)
}

// PuzzleRepo defines the interface for puzzle session storage.
type PuzzleRepo interface {
	// Save inserts or updates a puzzle session.
	Save(puzzle *domain.Puzzle) error

	// ByID retrieves a puzzle session by ID.
	// Returns an error if the session is not found.
	ByID(id uuid.UUID) (*domain.Puzzle, error)
}
