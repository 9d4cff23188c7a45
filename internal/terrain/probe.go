package terrain

import (
	"github.com/Faultbox/hexdrape/internal/engine/picking"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// Probe decides grid containment by casting a ray straight down onto the
// surface: a point is in bounds when there is terrain below it.
type Probe struct {
	Surface *Heightmap

	// Lift raises the ray origin above the tested point so terrain slightly
	// above it is still found.
	Lift float32

	// MaxDistance is how far the ray travels.
	MaxDistance float32
}

// NewProbe creates a probe with a 10 unit lift and a 100 unit range.
func NewProbe(surface *Heightmap) Probe {
	return Probe{Surface: surface, Lift: 10, MaxDistance: 100}
}

// InBounds reports whether the downward probe from p hits the surface.
func (p Probe) InBounds(pt math.Vec3) bool {
	_, ok := p.Hit(pt)
	return ok
}

// Hit returns the surface point under pt, if the probe reaches it.
func (p Probe) Hit(pt math.Vec3) (math.Vec3, bool) {
	ray := picking.Ray{
		Origin:    pt.Add(math.Vec3{Y: p.Lift}),
		Direction: math.Vec3{Y: -1},
	}
	return ray.IntersectSurface(p.Surface, p.MaxDistance, p.Surface.TileSize/4)
}
