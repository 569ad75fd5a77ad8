// Package puzzleapi provides structures and utilities for creating,
// solving, and replaying maze puzzles over HTTP.
package puzzleapi

import (
	"github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/search"
)

// CreatePuzzleRequest asks for a new maze. A nil seed means a random maze.
type CreatePuzzleRequest struct {
	Rows int    `json:"rows" binding:"required,gt=0"`
	Cols int    `json:"cols" binding:"required,gt=0"`
	Seed *int64 `json:"seed"`
}

// PuzzleResponse describes a maze session. Cells holds one string per row,
// '#' for walls and '.' for open cells.
type PuzzleResponse struct {
	ID     string    `json:"id"`
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Start  maze.Cell `json:"start"`
	Goal   maze.Cell `json:"goal"`
	Seed   int64     `json:"seed"`
	Cells  []string  `json:"cells"`
	Solved bool      `json:"solved"`
}

// SolveRequest names the endpoints to search between. Pointers keep the
// origin cell (0,0) from tripping required-field validation.
type SolveRequest struct {
	Start *maze.Cell `json:"start" binding:"required"`
	Goal  *maze.Cell `json:"goal" binding:"required"`
}

// SolutionResponse is the outcome of a solve: the optimal path when one
// exists and the full step-by-step trace either way.
type SolutionResponse struct {
	Found   bool         `json:"found"`
	PathLen int          `json:"path_len"`
	Path    search.Path  `json:"path,omitempty"`
	Steps   search.Trace `json:"steps"`
}

// FrameResponse is one replay frame of the latest solution.
type FrameResponse struct {
	Index int    `json:"index"`
	Total int    `json:"total"`
	Phase string `json:"phase"`
	Panel string `json:"panel"`
	Board string `json:"board"`
	Last  bool   `json:"last"`
}

func newPuzzleResponse(p *domain.Puzzle) *PuzzleResponse {
	cells := make([]string, p.Grid.Rows())
	for row := 0; row < p.Grid.Rows(); row++ {
		line := make([]byte, p.Grid.Cols())
		for col := 0; col < p.Grid.Cols(); col++ {
			if p.Grid.IsOpen(row, col) {
				line[col] = '.'
			} else {
				line[col] = '#'
			}
		}
		cells[row] = string(line)
	}

	return &PuzzleResponse{
		ID:     p.ID.String(),
		Rows:   p.Grid.Rows(),
		Cols:   p.Grid.Cols(),
		Start:  p.Start,
		Goal:   p.Goal,
		Seed:   p.Seed,
		Cells:  cells,
		Solved: p.LastSolved() != nil,
	}
}

func newSolutionResponse(s *domain.Solution) *SolutionResponse {
	return &SolutionResponse{
		Found:   s.Found,
		PathLen: s.Path.Len(),
		Path:    s.Path,
		Steps:   s.Trace,
	}
}

func newFrameResponse(f *domain.FrameView) *FrameResponse {
	return &FrameResponse{
		Index: f.Index,
		Total: f.Total,
		Phase: f.Phase,
		Panel: f.Panel,
		Board: f.Board,
		Last:  f.Last,
	}
}
