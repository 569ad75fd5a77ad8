/*
Package search finds shortest paths through a maze grid with A* and records
a complete, replayable trace of the search.

Movement is 4-directional with unit edge costs; the heuristic is Manhattan
distance, which is admissible and consistent for that movement model, so
the first pop of the goal is accepted as optimal. Each finalized expansion
appends one StepRecord carrying every neighbor evaluation made, giving any
external renderer enough state to replay the search step by step after the
fact. The search itself performs no I/O and finishes in one call.
*/
package search

import (
	"container/heap"
	"errors"

	"github.com/beka-birhanu/labyrinth-api/maze"
)

// ErrInvalidEndpoint is returned when start or goal is out of bounds or on
// a wall cell. That is a caller contract violation, distinct from the
// legitimate no-path outcome.
var ErrInvalidEndpoint = errors.New("start or goal is out of bounds or walled")

// Grid is the read-only view of a maze the search needs. *maze.Grid
// satisfies it.
type Grid interface {
	IsOpen(row, col int) bool
	Rows() int
	Cols() int
}

// FindPath runs an A* search from start to goal over the open cells of g.
//
// It returns the optimal path and the full trace. A nil path with a nil
// error means no path exists; the trace then covers every cell reachable
// from start. The grid is never mutated.
func FindPath(g Grid, start, goal maze.Cell) (Path, Trace, error) {
	if !g.IsOpen(start.Row, start.Col) || !g.IsOpen(goal.Row, goal.Col) {
		return nil, nil, ErrInvalidEndpoint
	}

	open := make(frontier, 0)
	heap.Init(&open)

	startH := maze.Manhattan(start, goal)
	heap.Push(&open, &frontierItem{cell: start, g: 0, h: startH, f: startH})

	cameFrom := make(map[maze.Cell]maze.Cell)
	gScore := map[maze.Cell]int{start: 0}

	var trace Trace
	for open.Len() > 0 {
		item := heap.Pop(&open).(*frontierItem)
		current := item.cell

		// A better path to this cell was accepted after the entry was
		// pushed; drop it without emitting a step record.
		if item.g > gScore[current] {
			continue
		}

		if current == goal {
			trace = append(trace, StepRecord{
				Node:   current,
				G:      item.g,
				H:      item.h,
				F:      item.f,
				Status: StatusGoalReached,
			})
			return reconstructPath(cameFrom, goal, start), trace, nil
		}

		var evals []NeighborEval
		for _, step := range maze.Steps {
			neighbor := current.Add(step)
			if !g.IsOpen(neighbor.Row, neighbor.Col) {
				continue
			}

			tentativeG := item.g + 1
			h := maze.Manhattan(neighbor, goal)
			f := tentativeG + h

			// The trace shows every evaluation, accepted or not.
			evals = append(evals, NeighborEval{Cell: neighbor, G: tentativeG, H: h, F: f})

			if best, seen := gScore[neighbor]; !seen || tentativeG < best {
				gScore[neighbor] = tentativeG
				cameFrom[neighbor] = current
				heap.Push(&open, &frontierItem{cell: neighbor, g: tentativeG, h: h, f: f})
			}
		}

		trace = append(trace, StepRecord{
			Node:      current,
			G:         item.g,
			H:         item.h,
			F:         item.f,
			Neighbors: evals,
			Status:    StatusSearching,
		})
	}

	// Frontier drained without reaching the goal: a valid outcome, the
	// trace covers everything reachable.
	return nil, trace, nil
}

// reconstructPath walks the predecessor map back from goal and reverses.
func reconstructPath(cameFrom map[maze.Cell]maze.Cell, goal, start maze.Cell) Path {
	path := Path{goal}
	current := goal
	for current != start {
		previous, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
