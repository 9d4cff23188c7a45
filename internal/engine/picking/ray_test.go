package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hexdrape/pkg/math"
)

func approx(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestIntersectPlaneY(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		planeY float32
		wantX  float32
		wantZ  float32
		wantOK bool
	}{
		{"straight down", Ray{math.Vec3{X: 1, Y: 5, Z: 2}, math.Vec3{Y: -1}}, 0, 1, 2, true},
		{"diagonal", Ray{math.Vec3{Y: 2}, math.Vec3{X: 1, Y: -1}.Normalize()}, 0, 2, 0, true},
		{"parallel", Ray{math.Vec3{Y: 2}, math.Vec3{X: 1}}, 0, 0, 0, false},
		{"behind", Ray{math.Vec3{Y: 2}, math.Vec3{Y: 1}}, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, z, ok := tt.ray.IntersectPlaneY(tt.planeY)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (!approx(x, tt.wantX, 1e-4) || !approx(z, tt.wantZ, 1e-4)) {
				t.Errorf("hit (%v, %v), want (%v, %v)", x, z, tt.wantX, tt.wantZ)
			}
		})
	}
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(1, 1, 1, -1, -1, -1)

	if tHit, ok := (Ray{math.Vec3{Z: -5}, math.Vec3{Z: 1}}).IntersectAABB(box); !ok || !approx(tHit, 4, 1e-5) {
		t.Errorf("entry = %v, %v, want 4, true", tHit, ok)
	}
	if tHit, ok := (Ray{math.Vec3{}, math.Vec3{X: 1}}).IntersectAABB(box); !ok || !approx(tHit, 1, 1e-5) {
		t.Errorf("from inside = %v, %v, want exit 1, true", tHit, ok)
	}
	if _, ok := (Ray{math.Vec3{Y: 3, Z: -5}, math.Vec3{Z: 1}}).IntersectAABB(box); ok {
		t.Error("ray passing above the box should miss")
	}
	if _, ok := (Ray{math.Vec3{Z: 5}, math.Vec3{Z: 1}}).IntersectAABB(box); ok {
		t.Error("box behind the ray should miss")
	}
}

func TestScreenToRayCenter(t *testing.T) {
	eye := math.Vec3{X: 0, Y: 10, Z: 10}
	view := math.LookAt(eye, math.Vec3{}, math.Up)
	proj := math.Perspective(gomath.Pi/4, 1, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	ray := ScreenToRay(400, 400, 800, 800, inv)
	x, z, ok := ray.IntersectPlaneY(0)
	if !ok {
		t.Fatal("center ray should hit the ground")
	}
	if !approx(x, 0, 0.05) || !approx(z, 0, 0.05) {
		t.Errorf("center ray hits (%v, %v), want the look-at target", x, z)
	}
}

// slope is y = x over x in [-10, 10], with a hole for z > 5.
type slope struct{}

func (slope) Sample(x, z float32) (float32, bool) {
	if x < -10 || x > 10 || z > 5 {
		return 0, false
	}
	return x, true
}

type boxedPlane struct{ y float32 }

func (p boxedPlane) Sample(x, z float32) (float32, bool) {
	if x < -1 || x > 1 || z < -1 || z > 1 {
		return 0, false
	}
	return p.y, true
}

func (p boxedPlane) Box() AABB { return NewAABB(-1, p.y, -1, 1, p.y, 1) }

func TestIntersectSurface(t *testing.T) {
	tests := []struct {
		name    string
		surface Surface
		ray     Ray
		want    math.Vec3
		wantHit bool
	}{
		{"down onto slope", slope{}, Ray{math.Vec3{X: 3, Y: 20}, math.Vec3{Y: -1}}, math.Vec3{X: 3, Y: 3}, true},
		{"down into hole", slope{}, Ray{math.Vec3{X: 3, Y: 20, Z: 6}, math.Vec3{Y: -1}}, math.Vec3{}, false},
		{"out of range", slope{}, Ray{math.Vec3{X: 3, Y: 200}, math.Vec3{Y: -1}}, math.Vec3{}, false},
		{"starts underneath", slope{}, Ray{math.Vec3{X: 3, Y: -5}, math.Vec3{Y: -1}}, math.Vec3{}, false},
		{"flat boxed plane", boxedPlane{y: 2}, Ray{math.Vec3{Y: 12}, math.Vec3{Y: -1}}, math.Vec3{Y: 2}, true},
		{"missing the box", boxedPlane{y: 2}, Ray{math.Vec3{X: 5, Y: 12}, math.Vec3{Y: -1}}, math.Vec3{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectSurface(tt.surface, 100, 0.5)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && got.Distance(tt.want) > 0.01 {
				t.Errorf("hit at %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectSurfaceSlantedRay(t *testing.T) {
	// Meets y = x at (5, 5).
	ray := Ray{math.Vec3{X: 10, Y: 20}, math.Vec3{X: -1, Y: -3}.Normalize()}
	got, hit := ray.IntersectSurface(slope{}, 100, 0.25)
	if !hit {
		t.Fatal("expected a hit")
	}
	if got.Distance(math.Vec3{X: 5, Y: 5}) > 0.01 {
		t.Errorf("hit at %v, want (5, 5, 0)", got)
	}
}
