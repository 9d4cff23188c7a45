package hexgrid

import (
	gomath "math"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// WorldToLogicalRatio returns the world distance covered by one logical step
// along X and along Z. It realizes a throwaway cell at the origin on a flat
// surface; the cell is never registered anywhere.
func WorldToLogicalRatio(layout hex.Layout) math.Vec2 {
	ref := NewCell(hex.Coord{}, math.Vec3{})
	acc, _ := NewAccumulator(hex.DirectionCount)
	// A fresh cell in an empty one-cell buffer cannot fail to realize.
	_ = Realize(ref, layout, Flat(0), NewRegistry(), acc)

	// The top-right neighbor (+1,+1) sits at twice the midpoint of edge 1.
	adjacent := ref.Vertices[1].Lerp(ref.Vertices[2], 0.5).Scale(2)
	return math.Vec2{X: adjacent.X, Y: adjacent.Z}
}

// candidate returns the logical coordinate a world point falls nearest to:
// X is floored and Z rounded, matching the skew of the doubled-row lattice.
func (g *Grid) candidate(p math.Vec3) hex.Coord {
	local := p.Sub(g.Origin).XZ().Div(g.Ratio)
	return hex.Coord{
		X: int(gomath.Floor(float64(local.X))),
		Z: int(gomath.Round(float64(local.Y))),
	}
}

// CellAt returns the generated cell containing the world point p.
//
// Two candidates are tested, the floored/rounded coordinate and its +1 X
// neighbor, and the registered one whose center is closer on the ground plane
// wins. This is a nearest match: points close to a cell boundary may resolve to
// the adjacent cell. It returns false when neither candidate was generated.
func (g *Grid) CellAt(p math.Vec3) (*Cell, bool) {
	c := g.candidate(p)
	p1, ok1 := g.cells.Lookup(c)
	p2, ok2 := g.cells.Lookup(hex.Coord{X: c.X + 1, Z: c.Z})

	switch {
	case ok1 && ok2:
		ground := p.XZ()
		if p1.Center.XZ().Distance(ground) < p2.Center.XZ().Distance(ground) {
			return p1, true
		}
		return p2, true
	case ok1:
		return p1, true
	case ok2:
		return p2, true
	}
	return nil, false
}
