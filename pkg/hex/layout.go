package hex

import "github.com/Faultbox/hexdrape/pkg/math"

// DefaultRadius is the center-to-corner distance of a cell in world units.
const DefaultRadius float32 = 0.25

// Layout maps cells to world space. It is immutable once built; all per-direction
// offsets are computed up front.
type Layout struct {
	// Radius points from a cell center along +Z; corner i is Radius rotated
	// by i*60-30 degrees around +Y.
	Radius math.Vec3

	corners   [DirectionCount]math.Vec3
	neighbors [DirectionCount]math.Vec3
}

// NewLayout builds a layout for cells of the given circumradius.
func NewLayout(radius float32) Layout {
	l := Layout{Radius: math.Vec3{Z: radius}}
	for i := range DirectionCount {
		l.corners[i] = math.QuatFromYawDegrees(float32(i*60) - 30).Rotate(l.Radius)
	}

	// The neighbor across edge 0 sits at twice the edge midpoint; the others
	// follow by rotating that offset a sixth of a turn at a time.
	top := l.corners[0].Lerp(l.corners[1], 0.5).Scale(2)
	for _, d := range Directions {
		l.neighbors[d] = math.QuatFromYawDegrees(float32(d) * 60).Rotate(top)
	}
	return l
}

// CornerOffset returns the offset of vertex i from the cell center, before any
// elevation is applied.
func (l Layout) CornerOffset(i int) math.Vec3 { return l.corners[i] }

// NeighborOffset returns the center-to-center offset towards direction d.
func (l Layout) NeighborOffset(d Direction) math.Vec3 { return l.neighbors[d] }

// NeighborCenter returns the world center of the cell adjacent to center in direction d.
func (l Layout) NeighborCenter(center math.Vec3, d Direction) math.Vec3 {
	return center.Add(l.neighbors[d])
}
