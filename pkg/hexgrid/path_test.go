package hexgrid

import (
	"testing"

	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/math"
)

func TestFindPathStraightLine(t *testing.T) {
	grid := generate(t, math.Vec2{}, Radius(math.Vec2{}, 2), 0)
	pf := NewPathFinder(grid)

	goal := hex.Coord{X: 0, Z: 6}
	path := pf.FindPath(hex.Coord{}, goal)
	if len(path) != 4 {
		t.Fatalf("path length = %d, want 4", len(path))
	}
	if path[0].Coord != (hex.Coord{}) || path[3].Coord != goal {
		t.Errorf("path runs %v -> %v", path[0].Coord, path[3].Coord)
	}
	for i := 1; i < len(path); i++ {
		if hex.Distance(path[i-1].Coord, path[i].Coord) != 1 {
			t.Errorf("step %d jumps from %v to %v", i, path[i-1].Coord, path[i].Coord)
		}
	}
}

func TestFindPathSameCell(t *testing.T) {
	grid := generate(t, math.Vec2{}, Radius(math.Vec2{}, 1), 0)
	path := NewPathFinder(grid).FindPath(hex.Coord{}, hex.Coord{})
	if len(path) != 1 {
		t.Errorf("path length = %d, want 1", len(path))
	}
}

func TestFindPathMissingEnds(t *testing.T) {
	grid := generate(t, math.Vec2{}, Radius(math.Vec2{}, 1), 0)
	pf := NewPathFinder(grid)

	if path := pf.FindPath(hex.Coord{}, hex.Coord{X: 40, Z: 40}); path != nil {
		t.Errorf("path to an ungenerated cell = %v, want nil", path)
	}
	if path := pf.FindPath(hex.Coord{X: 1, Z: 0}, hex.Coord{}); path != nil {
		t.Errorf("path from an off-lattice coordinate = %v, want nil", path)
	}
}

func TestFindPathAvoidsClimbs(t *testing.T) {
	// A wall across the middle column, open below z = -0.5.
	wall := HeightFunc(func(x, z float32) float32 {
		if x > -0.3 && x < 0.3 && z > -0.5 {
			return 10
		}
		return 0
	})
	g := NewGenerator(hex.NewLayout(hex.DefaultRadius), wall, Radius(math.Vec2{}, 2))
	grid, err := g.Generate(math.Vec2{})
	if err != nil {
		t.Fatal(err)
	}
	pf := NewPathFinder(grid)
	pf.ClimbCost = 100

	from, to := hex.Coord{X: -2, Z: 0}, hex.Coord{X: 2, Z: 0}
	flat := NewPathFinder(grid).FindPath(from, to)
	detour := pf.FindPath(from, to)
	if flat == nil || detour == nil {
		t.Fatal("both searches should find a path")
	}
	if len(detour) <= len(flat) {
		t.Errorf("climb-averse path has %d cells, flat path %d; expected a detour", len(detour), len(flat))
	}
	for _, c := range detour {
		if c.Elevation() > 5 {
			t.Errorf("detour climbs onto %v at elevation %v", c.Coord, c.Elevation())
		}
	}
}
