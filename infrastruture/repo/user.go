// Package repo provides in-memory implementations of the service
// repository interfaces. Sessions and users live for the process lifetime
// only; nothing is persisted durably.
package repo

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/labyrinth-api/identity"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepo is an in-memory, concurrency-safe user store.
type UserRepo struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*identity.User
	byName map[string]*identity.User
}

// NewUserRepo constructs an empty user repository.
func NewUserRepo() i.UserRepo {
	return &UserRepo{
		byID:   make(map[uuid.UUID]*identity.User),
		byName: make(map[string]*identity.User),
	}
}

// Save inserts or updates a user. A username held by a different user is
// rejected.
func (r *UserRepo) Save(user *identity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[user.Username]; ok && existing.ID != user.ID {
		return ErrUsernameTaken
	}

	r.byID[user.ID] = user
	r.byName[user.Username] = user
	return nil
}

// ByID looks up a user by ID.
func (r *UserRepo) ByID(id uuid.UUID) (*identity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, ErrUserNotFound
}

// ByUsername looks up a user by username.
func (r *UserRepo) ByUsername(username string) (*identity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.byName[username]; ok {
		return user, nil
	}
	return nil, ErrUserNotFound
}
