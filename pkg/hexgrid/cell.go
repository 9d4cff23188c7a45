// Package hexgrid grows a hexagonal wireframe grid over a bounded surface.
//
// Generation is a breadth-first flood fill over the logical lattice of package hex:
// every discovered coordinate is registered once, realized once (its six corners are
// dropped onto the surface) and packed into line-list mesh buffers that never exceed
// a vertex ceiling. The finished Grid is read-only and answers world-space picking
// queries.
package hexgrid

import (
	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// Cell is one hexagon of the grid.
type Cell struct {
	Coord  hex.Coord
	Center math.Vec3

	// Vertices holds the six boundary corners once the cell is realized, in the
	// winding order documented in package hex. Nil until then.
	Vertices *[hex.DirectionCount]math.Vec3

	// MeshIndex is the mesh buffer the cell's geometry was packed into.
	MeshIndex int
}

// NewCell creates an unrealized cell.
func NewCell(coord hex.Coord, center math.Vec3) *Cell {
	return &Cell{Coord: coord, Center: center}
}

// Realized reports whether the cell's geometry has been generated.
func (c *Cell) Realized() bool {
	return c.Vertices != nil
}

// Elevation returns the mean height of the cell's corners, or the center height
// while the cell is unrealized.
func (c *Cell) Elevation() float32 {
	if c.Vertices == nil {
		return c.Center.Y
	}
	var sum float32
	for _, v := range c.Vertices {
		sum += v.Y
	}
	return sum / hex.DirectionCount
}
