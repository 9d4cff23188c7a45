package hexgrid

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

func TestWorldToLogicalRatio(t *testing.T) {
	tests := []struct {
		radius float32
		want   math.Vec2
	}{
		{0.25, math.Vec2{X: 0.375, Y: 0.21650635}},
		{1, math.Vec2{X: 1.5, Y: 0.8660254}},
	}
	for _, tt := range tests {
		got := WorldToLogicalRatio(hex.NewLayout(tt.radius))
		if gomath.Abs(float64(got.X-tt.want.X)) > 1e-5 || gomath.Abs(float64(got.Y-tt.want.Y)) > 1e-5 {
			t.Errorf("radius %v: ratio = %v, want %v", tt.radius, got, tt.want)
		}
	}
}

func TestCellAtCenters(t *testing.T) {
	for _, start := range []math.Vec2{{}, {X: 10, Y: -4}, {X: -3.3, Y: 7.1}} {
		grid := generate(t, start, Radius(start, 1.5), 0)
		for _, c := range grid.Cells() {
			got, ok := grid.CellAt(c.Center)
			if !ok || got != c {
				t.Errorf("start %v: CellAt(center of %v) = %v, %v", start, c.Coord, got, ok)
			}
		}
	}
}

func TestCellAtInteriorPoints(t *testing.T) {
	grid := generate(t, math.Vec2{X: 2, Y: 2}, Radius(math.Vec2{X: 2, Y: 2}, 1.5), 0)
	offsets := []float32{-0.1, 0, 0.1}

	for _, c := range grid.Cells() {
		for _, dx := range offsets {
			for _, dz := range offsets {
				p := c.Center.Add(math.Vec3{X: dx, Y: 5, Z: dz})
				got, ok := grid.CellAt(p)
				if !ok || got != c {
					t.Errorf("CellAt(%v) inside %v = %v, %v", p, c.Coord, got, ok)
				}
			}
		}
	}
}

func TestCellAtOutsideGrid(t *testing.T) {
	grid := generate(t, math.Vec2{}, Radius(math.Vec2{}, 1), 0)

	for _, p := range []math.Vec3{{X: 100, Z: 100}, {X: -50}, {Z: 3}} {
		if c, ok := grid.CellAt(p); ok {
			t.Errorf("CellAt(%v) = %v, want no cell", p, c.Coord)
		}
	}
}

func TestGridBounds(t *testing.T) {
	grid := generate(t, math.Vec2{}, Radius(math.Vec2{}, 0.1), 0)
	lo, hi := grid.Bounds()
	if gomath.Abs(float64(lo.X+0.25)) > 1e-5 || gomath.Abs(float64(hi.X-0.25)) > 1e-5 {
		t.Errorf("X extent = [%v, %v], want [-0.25, 0.25]", lo.X, hi.X)
	}
	if gomath.Abs(float64(hi.Z-0.21650635)) > 1e-5 {
		t.Errorf("Z max = %v, want 0.2165", hi.Z)
	}
}
