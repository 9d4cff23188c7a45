package hexgrid

import (
	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// Grid is the read-only result of a generation run.
type Grid struct {
	Layout hex.Layout

	// Origin is the world position of logical (0,0).
	Origin math.Vec3

	// Ratio is the world distance of one logical step along X and Z.
	Ratio math.Vec2

	// Buffers are the sealed mesh buffers in the order they were filled.
	Buffers []MeshBuffer

	Stats Stats

	cells *Registry
}

// Lookup returns the cell at coord, if it was generated.
func (g *Grid) Lookup(coord hex.Coord) (*Cell, bool) {
	return g.cells.Lookup(coord)
}

// Neighbor returns the generated cell adjacent to c in direction d.
func (g *Grid) Neighbor(c *Cell, d hex.Direction) (*Cell, bool) {
	return g.cells.Neighbor(c, d)
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return g.cells.Len()
}

// Cells returns every cell sorted by coordinate.
func (g *Grid) Cells() []*Cell {
	return g.cells.Cells()
}

// Bounds returns the ground-plane extent covered by the cells' corners.
func (g *Grid) Bounds() (lo, hi math.Vec3) {
	first := true
	for _, b := range g.Buffers {
		for _, v := range b.Vertices {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = math.Vec3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
			hi = math.Vec3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
		}
	}
	return lo, hi
}
