package picking

import "github.com/Faultbox/hexdrape/pkg/math"

// Surface is a height field that may have holes.
type Surface interface {
	// Sample returns the surface height at (x, z), or false where there is none.
	Sample(x, z float32) (float32, bool)
}

// Bounded is implemented by surfaces that know a box enclosing them. Rays are
// clipped to it before marching.
type Bounded interface {
	Box() AABB
}

// refineSteps is the number of bisection steps after the march brackets a hit.
const refineSteps = 16

// IntersectSurface marches the ray over s in increments of step, up to maxDist,
// and returns the first point where it passes from above the surface (or from
// over a hole) to at or below it. A ray that starts under the surface does not
// hit it until it has come back out.
func (r Ray) IntersectSurface(s Surface, maxDist, step float32) (math.Vec3, bool) {
	if s == nil || step <= 0 || maxDist <= 0 {
		return math.Vec3{}, false
	}

	start, end := float32(0), maxDist
	if b, ok := s.(Bounded); ok {
		enter, exit, hit := r.slabs(b.Box())
		if !hit {
			return math.Vec3{}, false
		}
		// One step of slack so flat surfaces on a box face are still crossed.
		start = max(start, enter-step)
		end = min(end, exit+step)
		if start > end {
			return math.Vec3{}, false
		}
	}

	t := start
	wasBelow := r.below(s, t)
	for t < end {
		next := min(t+step, end)
		nowBelow := r.below(s, next)
		if nowBelow && !wasBelow {
			return r.refine(s, t, next), true
		}
		wasBelow = nowBelow
		t = next
	}
	return math.Vec3{}, false
}

func (r Ray) below(s Surface, t float32) bool {
	p := r.At(t)
	h, ok := s.Sample(p.X, p.Z)
	return ok && p.Y <= h
}

// refine bisects [above, below] and returns the surface point at the lower end.
func (r Ray) refine(s Surface, above, below float32) math.Vec3 {
	for range refineSteps {
		mid := (above + below) / 2
		if r.below(s, mid) {
			below = mid
		} else {
			above = mid
		}
	}
	p := r.At(below)
	p.Y, _ = s.Sample(p.X, p.Z)
	return p
}
