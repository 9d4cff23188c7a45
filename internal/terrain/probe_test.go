package terrain

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hexdrape/pkg/math"
)

func TestProbeInBounds(t *testing.T) {
	h := Flat(21, 21, 1, 0)
	h.Set(20, 20, float32(gomath.NaN()))
	probe := NewProbe(h)

	tests := []struct {
		name string
		p    math.Vec3
		want bool
	}{
		{"center", math.Vec3{}, true},
		{"near edge", math.Vec3{X: 9.9, Z: -9.9}, true},
		{"off the map", math.Vec3{X: 10.5}, false},
		{"over hole", math.Vec3{X: 9.5, Z: 9.5}, false},
		{"too high", math.Vec3{Y: 200}, false},
		{"within reach", math.Vec3{Y: 80}, true},
		{"under the ground", math.Vec3{Y: -20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := probe.InBounds(tt.p); got != tt.want {
				t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestProbeHitFollowsTerrain(t *testing.T) {
	h := NewHeightmap(3, 3, 1)
	for x := range 3 {
		for z := range 3 {
			h.Set(x, z, float32(x))
		}
	}
	hit, ok := NewProbe(h).Hit(math.Vec3{X: 0.5})
	if !ok {
		t.Fatal("probe should hit the ramp")
	}
	if !approx(hit.Y, 1.5) {
		t.Errorf("hit height = %v, want 1.5", hit.Y)
	}
}
