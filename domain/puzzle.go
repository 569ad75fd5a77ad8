// Package domain holds the entities shared between the service layer and
// its consumers.
package domain

import (
	"sync"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/search"
	"github.com/google/uuid"
)

// Endpoints keys a solution by its start and goal cells.
type Endpoints struct {
	Start maze.Cell
	Goal  maze.Cell
}

// Solution is the outcome of one search over a puzzle. Found is false when
// the endpoints lie in disconnected regions; the trace is populated either
// way.
type Solution struct {
	Start maze.Cell
	Goal  maze.Cell
	Found bool
	Path  search.Path
	Trace search.Trace
}

// Puzzle is one maze session: the generated grid, its default endpoints,
// and the solutions computed so far. Solutions are read and written from
// concurrent request handlers, so the puzzle guards them itself.
type Puzzle struct {
	ID    uuid.UUID
	Grid  *maze.Grid
	Start maze.Cell
	Goal  maze.Cell
	Seed  int64

	mu         sync.RWMutex
	solutions  map[Endpoints]*Solution
	lastSolved *Solution
}

// PuzzleConfig holds parameters for creating a Puzzle.
type PuzzleConfig struct {
	ID    uuid.UUID
	Grid  *maze.Grid
	Start maze.Cell
	Goal  maze.Cell
	Seed  int64
}

// NewPuzzle wraps a generated grid into a session. It performs the
// documented post-generation step of carving the endpoints open, since the
// generator itself never sees them.
func NewPuzzle(config PuzzleConfig) *Puzzle {
	config.Grid.CarveOpen(config.Start)
	config.Grid.CarveOpen(config.Goal)
	return &Puzzle{
		ID:        config.ID,
		Grid:      config.Grid,
		Start:     config.Start,
		Goal:      config.Goal,
		Seed:      config.Seed,
		solutions: make(map[Endpoints]*Solution),
	}
}

// SolutionFor returns the cached solution for the endpoint pair, or nil.
// Searches are deterministic, so a cached solution never goes stale.
func (p *Puzzle) SolutionFor(start, goal maze.Cell) *Solution {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.solutions[Endpoints{Start: start, Goal: goal}]
}

// AddSolution caches a solution and marks it as the most recent one.
func (p *Puzzle) AddSolution(s *Solution) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.solutions[Endpoints{Start: s.Start, Goal: s.Goal}] = s
	p.lastSolved = s
}

// LastSolved returns the most recently computed solution, or nil when the
// puzzle has not been solved yet.
func (p *Puzzle) LastSolved() *Solution {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastSolved
}

// FrameView is one replay frame flattened for thin clients: the rendered
// panel and board plus cursor bookkeeping.
type FrameView struct {
	Index int
	Total int
	Phase string
	Panel string
	Board string
	Last  bool
}
