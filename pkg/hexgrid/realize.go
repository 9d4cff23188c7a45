package hexgrid

import (
	"fmt"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// Realize generates the six corners of c, drops them onto the surface and appends
// them to acc together with the boundary edges c is responsible for.
//
// Edge k (vertex k to k+1) is emitted only when the neighbor in direction k is
// unregistered or not yet realized, so an edge shared by two realized cells is
// drawn exactly once, by whichever side was realized first.
//
// Realizing a cell twice is rejected with ErrAlreadyRealized.
func Realize(c *Cell, layout hex.Layout, heights HeightSampler, reg *Registry, acc *Accumulator) error {
	if c.Realized() {
		return fmt.Errorf("realize %v: %w", c.Coord, ErrAlreadyRealized)
	}

	var corners [hex.DirectionCount]math.Vec3
	for i := range corners {
		v := c.Center.Add(layout.CornerOffset(i))
		v.Y = heights.HeightAt(v.X, v.Z)
		corners[i] = v
	}

	base, err := acc.AppendCell(corners)
	if err != nil {
		return fmt.Errorf("realize %v: %w", c.Coord, err)
	}

	for _, d := range hex.Directions {
		if n, ok := reg.Neighbor(c, d); ok && n.Realized() {
			continue
		}
		acc.AppendLine(base+uint16(d), base+uint16(d.Next()))
	}

	c.Vertices = &corners
	c.MeshIndex = acc.Index()
	return nil
}
