package hexgrid

import (
	"fmt"
	"sort"

	"github.com/Faultbox/hexdrape/pkg/hex"
)

// Registry maps logical coordinates to cells. It is the visited set of the flood
// fill: a coordinate is present from the moment it is discovered.
type Registry struct {
	cells map[int]map[int]*Cell // [x][z]
	count int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cells: make(map[int]map[int]*Cell)}
}

// Register adds a cell. It fails with ErrDuplicateCoord if the coordinate is
// already taken; the existing entry is left untouched.
func (r *Registry) Register(c *Cell) error {
	column, ok := r.cells[c.Coord.X]
	if !ok {
		column = make(map[int]*Cell)
		r.cells[c.Coord.X] = column
	}
	if _, exists := column[c.Coord.Z]; exists {
		return fmt.Errorf("register %v: %w", c.Coord, ErrDuplicateCoord)
	}
	column[c.Coord.Z] = c
	r.count++
	return nil
}

// Lookup returns the cell at coord, if registered.
func (r *Registry) Lookup(coord hex.Coord) (*Cell, bool) {
	c, ok := r.cells[coord.X][coord.Z]
	return c, ok
}

// Contains reports whether coord has been registered.
func (r *Registry) Contains(coord hex.Coord) bool {
	_, ok := r.Lookup(coord)
	return ok
}

// Neighbor returns the registered cell adjacent to c in direction d.
func (r *Registry) Neighbor(c *Cell, d hex.Direction) (*Cell, bool) {
	return r.Lookup(c.Coord.Neighbor(d))
}

// Len returns the number of registered cells.
func (r *Registry) Len() int {
	return r.count
}

// Each calls fn for every cell in unspecified order.
func (r *Registry) Each(fn func(*Cell)) {
	for _, column := range r.cells {
		for _, c := range column {
			fn(c)
		}
	}
}

// Cells returns every cell sorted by X, then Z.
func (r *Registry) Cells() []*Cell {
	out := make([]*Cell, 0, r.count)
	r.Each(func(c *Cell) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.X != out[j].Coord.X {
			return out[i].Coord.X < out[j].Coord.X
		}
		return out[i].Coord.Z < out[j].Coord.Z
	})
	return out
}
