package search

import "github.com/beka-birhanu/labyrinth-api/maze"

// StepStatus tags a step record.
type StepStatus string

const (
	// StatusSearching marks a regular expansion step.
	StatusSearching StepStatus = "searching"
	// StatusGoalReached marks the terminal step where the goal was popped.
	StatusGoalReached StepStatus = "goal_reached"
)

// NeighborEval is one neighbor evaluation performed during an expansion.
// Every in-bounds open neighbor appears here, whether or not it improved
// anything.
type NeighborEval struct {
	Cell maze.Cell `json:"cell"`
	G    int       `json:"g"` // tentative cost-so-far through the current node
	H    int       `json:"h"` // Manhattan distance to the goal
	F    int       `json:"f"` // G + H
}

// StepRecord captures one finalized frontier pop: the node, its scores, and
// every neighbor evaluation made from it. The ordered sequence of records
// is the whole contract between the search and any replay front end.
type StepRecord struct {
	Node      maze.Cell      `json:"node"`
	G         int            `json:"g"`
	H         int            `json:"h"`
	F         int            `json:"f"`
	Neighbors []NeighborEval `json:"neighbors"`
	Status    StepStatus     `json:"status"`
}

// Trace is the append-only sequence of step records in strict pop order.
type Trace []StepRecord

// Path is the ordered cell sequence from start to goal inclusive. A nil
// Path means no path exists.
type Path []maze.Cell

// Len returns the number of cells on the path.
func (p Path) Len() int {
	return len(p)
}
