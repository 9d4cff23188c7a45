package terrain

import "github.com/Faultbox/hexdrape/pkg/math"

// Vertex is a terrain mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds a triangulated heightmap ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// BuildMesh triangulates the heightmap with one vertex per sample and two
// triangles per tile. Tiles touching a hole are left out. Normals are
// estimated from the neighboring samples.
func BuildMesh(h *Heightmap) *Mesh {
	if h.TilesX < 2 || h.TilesZ < 2 {
		return &Mesh{}
	}

	index := func(x, z int) uint32 { return uint32(x*h.TilesZ + z) }

	vertices := make([]Vertex, 0, h.TilesX*h.TilesZ)
	for x := range h.TilesX {
		for z := range h.TilesZ {
			y := h.Altitudes[x][z]
			if isHole(y) {
				y = 0
			}
			vertices = append(vertices, Vertex{
				Position: [3]float32{
					h.Origin.X + float32(x)*h.TileSize,
					y,
					h.Origin.Y + float32(z)*h.TileSize,
				},
				Normal: h.normal(x, z).Array(),
			})
		}
	}

	var indices []uint32
	for x := 0; x < h.TilesX-1; x++ {
		for z := 0; z < h.TilesZ-1; z++ {
			if isHole(h.Altitudes[x][z]) || isHole(h.Altitudes[x+1][z]) ||
				isHole(h.Altitudes[x][z+1]) || isHole(h.Altitudes[x+1][z+1]) {
				continue
			}
			sw, se := index(x, z), index(x+1, z)
			nw, ne := index(x, z+1), index(x+1, z+1)
			// Counter-clockwise seen from above
			indices = append(indices, sw, nw, se, se, nw, ne)
		}
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}

// normal estimates the surface normal at sample (x, z) by central differences,
// ignoring neighbors that are holes or off the map.
func (h *Heightmap) normal(x, z int) math.Vec3 {
	at := func(ix, iz int) (float32, bool) {
		if ix < 0 || iz < 0 || ix >= h.TilesX || iz >= h.TilesZ {
			return 0, false
		}
		a := h.Altitudes[ix][iz]
		return a, !isHole(a)
	}

	center, ok := at(x, z)
	if !ok {
		return math.Up
	}
	slope := func(lo, hi float32, okLo, okHi bool) float32 {
		switch {
		case okLo && okHi:
			return (hi - lo) / (2 * h.TileSize)
		case okHi:
			return (hi - center) / h.TileSize
		case okLo:
			return (center - lo) / h.TileSize
		}
		return 0
	}

	west, okW := at(x-1, z)
	east, okE := at(x+1, z)
	south, okS := at(x, z-1)
	north, okN := at(x, z+1)
	dx := slope(west, east, okW, okE)
	dz := slope(south, north, okS, okN)
	return math.Vec3{X: -dx, Y: 1, Z: -dz}.Normalize()
}
