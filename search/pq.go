package search

import "github.com/beka-birhanu/labyrinth-api/maze"

// frontierItem is one frontier entry. A cell may appear more than once when
// its best-known g improves after an earlier push; stale entries are
// filtered on pop against the authoritative g map.
type frontierItem struct {
	cell  maze.Cell
	g     int
	h     int
	f     int
	index int
}

// frontier is a min-heap for container/heap ordered by f, breaking ties by
// lower h (the deeper node), then by row, then by col. The tie-break makes
// the returned path reproducible for a given grid rather than dependent on
// incidental heap order.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	if q[i].cell.Row != q[j].cell.Row {
		return q[i].cell.Row < q[j].cell.Row
	}
	return q[i].cell.Col < q[j].cell.Col
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
