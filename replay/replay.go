/*
Package replay steps through a finished search trace one frame at a time.

It is a pure reader over data the search already produced: first one frame
per step record, then, when a path was found, one frame per path prefix
while the final route is traced out. Nothing here feeds back into the
search, so any front end (terminal, HTTP client, test harness) can drive a
Replayer at its own pace, and several replayers can share one trace.
*/
package replay

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/search"
)

// Phase names which stage of the replay a frame belongs to.
type Phase string

const (
	// PhaseSearch frames walk the step records.
	PhaseSearch Phase = "search"
	// PhaseTrace frames grow the final path one cell at a time.
	PhaseTrace Phase = "trace"
)

// Frame is one discrete replay state.
type Frame struct {
	Index      int                `json:"index"`
	Phase      Phase              `json:"phase"`
	Step       *search.StepRecord `json:"step,omitempty"`        // set in the search phase
	PathPrefix search.Path        `json:"path_prefix,omitempty"` // set in the trace phase
	Last       bool               `json:"last"`
}

// Replayer walks a grid, a search outcome, and its trace frame by frame.
type Replayer struct {
	grid  search.Grid
	start maze.Cell
	goal  maze.Cell
	path  search.Path
	trace search.Trace

	cursor int
}

// New builds a Replayer over a finished search. The inputs are shared, not
// copied; the replayer never mutates them.
func New(grid search.Grid, start, goal maze.Cell, path search.Path, trace search.Trace) *Replayer {
	return &Replayer{grid: grid, start: start, goal: goal, path: path, trace: trace}
}

// Len returns the total number of frames: one per step record plus one per
// path cell.
func (r *Replayer) Len() int {
	return len(r.trace) + len(r.path)
}

// Advance produces the next frame. The second return is false once the
// replay is exhausted.
func (r *Replayer) Advance() (Frame, bool) {
	if r.cursor >= r.Len() {
		return Frame{}, false
	}
	frame := r.Frame(r.cursor)
	r.cursor++
	return frame, true
}

// Rewind resets the cursor to the first frame.
func (r *Replayer) Rewind() {
	r.cursor = 0
}

// Seek positions the cursor so the next Advance returns frame i.
func (r *Replayer) Seek(i int) {
	if i < 0 {
		i = 0
	}
	r.cursor = i
}

// Frame returns frame i without moving the cursor. i must be within
// [0, Len()).
func (r *Replayer) Frame(i int) Frame {
	if i < len(r.trace) {
		return Frame{
			Index: i,
			Phase: PhaseSearch,
			Step:  &r.trace[i],
			Last:  i == r.Len()-1,
		}
	}
	prefixLen := i - len(r.trace) + 1
	return Frame{
		Index:      i,
		Phase:      PhaseTrace,
		PathPrefix: r.path[:prefixLen],
		Last:       i == r.Len()-1,
	}
}

// Panel renders the frame's monospace info panel: status, current node
// scores, and the neighbor evaluations made from it.
func (f Frame) Panel() string {
	var b strings.Builder

	if f.Phase == PhaseTrace {
		fmt.Fprintf(&b, "Step %d: tracing final path\n", f.Index+1)
		b.WriteString("--------------------------------\n")
		fmt.Fprintf(&b, "Path so far: %d cells\n", len(f.PathPrefix))
		if f.Last {
			b.WriteString("\nSearch complete.\n")
		}
		return b.String()
	}

	step := f.Step
	fmt.Fprintf(&b, "Step %d: %s\n", f.Index+1, step.Status)
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "Current Node: (%d, %d)\n", step.Node.Row, step.Node.Col)
	fmt.Fprintf(&b, "  G (Cost): %d\n", step.G)
	fmt.Fprintf(&b, "  H (Dist): %d\n", step.H)
	fmt.Fprintf(&b, "  F (Total): %d\n\n", step.F)

	if len(step.Neighbors) == 0 {
		b.WriteString("No valid neighbors.\n")
		return b.String()
	}
	b.WriteString("Neighbors Checked:\n")
	for _, eval := range step.Neighbors {
		fmt.Fprintf(&b, "  (%d, %d): G=%d, H=%d, F=%d\n", eval.Cell.Row, eval.Cell.Col, eval.G, eval.H, eval.F)
	}
	return b.String()
}

// Board renders the maze with the replay state overlaid, one rune pair per
// cell: walls "##", visited cells "..", the current node "[]", traced path
// cells "()", start "S ", goal "G ".
func (r *Replayer) Board(f Frame) string {
	visited := make(map[maze.Cell]bool)
	limit := f.Index
	if limit >= len(r.trace) {
		limit = len(r.trace) - 1
	}
	for i := 0; i <= limit; i++ {
		visited[r.trace[i].Node] = true
	}

	onPath := make(map[maze.Cell]bool)
	for _, cell := range f.PathPrefix {
		onPath[cell] = true
	}

	var b strings.Builder
	for row := 0; row < r.grid.Rows(); row++ {
		for col := 0; col < r.grid.Cols(); col++ {
			cell := maze.Cell{Row: row, Col: col}
			switch {
			case !r.grid.IsOpen(row, col):
				b.WriteString("##")
			case f.Phase == PhaseSearch && f.Step.Node == cell:
				b.WriteString("[]")
			case onPath[cell]:
				b.WriteString("()")
			case cell == r.start:
				b.WriteString("S ")
			case cell == r.goal:
				b.WriteString("G ")
			case visited[cell]:
				b.WriteString("..")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
