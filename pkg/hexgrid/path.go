package hexgrid

import (
	"container/heap"

	"github.com/Faultbox/hexdrape/pkg/hex"
)

// pathNode is a cell in the A* search.
type pathNode struct {
	cell   *Cell
	g      float32 // Cost from start
	f      float32 // g + heuristic
	parent *pathNode
	index  int // Index in heap
}

// pathHeap implements a priority queue ordered by f.
type pathHeap []*pathNode

func (h pathHeap) Len() int           { return len(h) }
func (h pathHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pathHeap) Push(x any) {
	node := x.(*pathNode)
	node.index = len(*h)
	*h = append(*h, node)
}

func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}

// PathFinder searches routes across the cells of a generated grid.
type PathFinder struct {
	grid *Grid

	// ClimbCost is added per world unit of elevation change between cells.
	ClimbCost float32
}

// NewPathFinder creates a path finder over grid.
func NewPathFinder(grid *Grid) *PathFinder {
	return &PathFinder{grid: grid}
}

// FindPath returns the cheapest chain of adjacent cells from start to goal,
// both included. It returns nil if either end was not generated or the two are
// not connected.
func (pf *PathFinder) FindPath(start, goal hex.Coord) []*Cell {
	startCell, ok := pf.grid.Lookup(start)
	if !ok {
		return nil
	}
	if _, ok := pf.grid.Lookup(goal); !ok {
		return nil
	}

	open := &pathHeap{}
	heap.Init(open)
	closed := make(map[hex.Coord]bool)
	nodes := make(map[hex.Coord]*pathNode)

	first := &pathNode{cell: startCell, f: float32(hex.Distance(start, goal))}
	heap.Push(open, first)
	nodes[start] = first

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if current.cell.Coord == goal {
			return reconstruct(current)
		}
		closed[current.cell.Coord] = true

		for _, d := range hex.Directions {
			next, ok := pf.grid.Neighbor(current.cell, d)
			if !ok || closed[next.Coord] {
				continue
			}

			g := current.g + pf.stepCost(current.cell, next)
			node, seen := nodes[next.Coord]
			if !seen {
				node = &pathNode{cell: next, g: g, parent: current}
				node.f = g + float32(hex.Distance(next.Coord, goal))
				nodes[next.Coord] = node
				heap.Push(open, node)
			} else if g < node.g {
				node.f += g - node.g
				node.g = g
				node.parent = current
				heap.Fix(open, node.index)
			}
		}
	}
	return nil
}

func (pf *PathFinder) stepCost(from, to *Cell) float32 {
	climb := to.Elevation() - from.Elevation()
	if climb < 0 {
		climb = -climb
	}
	return 1 + climb*pf.ClimbCost
}

func reconstruct(node *pathNode) []*Cell {
	var path []*Cell
	for ; node != nil; node = node.parent {
		path = append(path, node.cell)
	}
	// Built from goal to start
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
