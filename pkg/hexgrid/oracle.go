package hexgrid

import "github.com/Faultbox/hexdrape/pkg/math"

// HeightSampler reports the surface elevation under a ground-plane position.
type HeightSampler interface {
	HeightAt(x, z float32) float32
}

// HeightFunc adapts a plain function to HeightSampler.
type HeightFunc func(x, z float32) float32

// HeightAt calls f(x, z).
func (f HeightFunc) HeightAt(x, z float32) float32 { return f(x, z) }

// Flat is a level surface at a fixed elevation.
type Flat float32

// HeightAt returns the constant elevation.
func (f Flat) HeightAt(_, _ float32) float32 { return float32(f) }

// Containment decides whether a candidate cell center lies inside the region the
// grid may grow into. It must be deterministic and must reject every point beyond
// some finite distance, otherwise generation never terminates.
type Containment interface {
	InBounds(p math.Vec3) bool
}

// ContainmentFunc adapts a plain function to Containment.
type ContainmentFunc func(p math.Vec3) bool

// InBounds calls f(p).
func (f ContainmentFunc) InBounds(p math.Vec3) bool { return f(p) }

// Radius admits points within a horizontal distance of a center.
func Radius(center math.Vec2, r float32) Containment {
	return ContainmentFunc(func(p math.Vec3) bool {
		return p.XZ().Distance(center) <= r
	})
}
