package terrain

import (
	gomath "math"
	"testing"
)

func TestBuildMeshFlat(t *testing.T) {
	m := BuildMesh(Flat(3, 4, 1, 2))

	if len(m.Vertices) != 12 {
		t.Errorf("got %d vertices, want 12", len(m.Vertices))
	}
	// 2x3 tiles, two triangles each
	if len(m.Indices) != 2*3*6 {
		t.Errorf("got %d indices, want 36", len(m.Indices))
	}
	for i, v := range m.Vertices {
		if v.Position[1] != 2 {
			t.Errorf("vertex %d at height %v, want 2", i, v.Position[1])
		}
		if v.Normal != [3]float32{0, 1, 0} {
			t.Errorf("vertex %d normal %v, want straight up", i, v.Normal)
		}
	}
}

func TestBuildMeshSkipsHoles(t *testing.T) {
	h := Flat(3, 3, 1, 0)
	h.Set(0, 0, float32(gomath.NaN()))

	m := BuildMesh(h)
	// Only the tile at (0,0) touches the hole.
	if len(m.Indices) != 3*6 {
		t.Errorf("got %d indices, want 18", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if idx == 0 {
			t.Fatal("hole vertex is referenced by a triangle")
		}
	}
}

func TestBuildMeshSlopeNormal(t *testing.T) {
	h := NewHeightmap(3, 3, 1)
	for x := range 3 {
		for z := range 3 {
			h.Set(x, z, float32(x))
		}
	}
	n := BuildMesh(h).Vertices[4].Normal // sample (1,1)
	// Rises one unit per unit of X, so the normal leans towards -X at 45 degrees.
	if !approx(n[0], -float32(gomath.Sqrt2)/2) || !approx(n[1], float32(gomath.Sqrt2)/2) || !approx(n[2], 0) {
		t.Errorf("normal = %v", n)
	}
}

func TestBuildMeshTooSmall(t *testing.T) {
	if m := BuildMesh(NewHeightmap(1, 5, 1)); len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Errorf("expected an empty mesh, got %d vertices", len(m.Vertices))
	}
}
