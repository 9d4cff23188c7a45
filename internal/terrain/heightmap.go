// Package terrain provides the height surfaces hex grids are draped over.
package terrain

import (
	gomath "math"

	"github.com/Faultbox/hexdrape/internal/engine/picking"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// Heightmap is a regular grid of altitude samples. A NaN altitude marks a hole:
// there is no terrain within one tile of it.
type Heightmap struct {
	Altitudes [][]float32 // 2D array [x][z] of heights
	TilesX    int         // Number of samples in X direction
	TilesZ    int         // Number of samples in Z direction
	TileSize  float32     // Distance between samples in world units
	Origin    math.Vec2   // World (X, Z) of sample [0][0]

	minY, maxY float32
}

// NewHeightmap creates a heightmap of level ground at height 0, centered on the
// world origin.
func NewHeightmap(tilesX, tilesZ int, tileSize float32) *Heightmap {
	altitudes := make([][]float32, tilesX)
	for x := range tilesX {
		altitudes[x] = make([]float32, tilesZ)
	}
	return &Heightmap{
		Altitudes: altitudes,
		TilesX:    tilesX,
		TilesZ:    tilesZ,
		TileSize:  tileSize,
		Origin: math.Vec2{
			X: -float32(tilesX-1) * tileSize / 2,
			Y: -float32(tilesZ-1) * tileSize / 2,
		},
	}
}

// Flat creates level ground at the given height.
func Flat(tilesX, tilesZ int, tileSize, height float32) *Heightmap {
	h := NewHeightmap(tilesX, tilesZ, tileSize)
	for x := range tilesX {
		for z := range tilesZ {
			h.Set(x, z, height)
		}
	}
	return h
}

// Set stores the altitude of sample (x, z). Use NaN to punch a hole.
func (h *Heightmap) Set(x, z int, altitude float32) {
	h.Altitudes[x][z] = altitude
	if isHole(altitude) {
		return
	}
	h.minY = min(h.minY, altitude)
	h.maxY = max(h.maxY, altitude)
}

// Bounds returns the ground-plane extent covered by samples.
func (h *Heightmap) Bounds() (lo, hi math.Vec2) {
	lo = h.Origin
	hi = h.Origin.Add(math.Vec2{
		X: float32(h.TilesX-1) * h.TileSize,
		Y: float32(h.TilesZ-1) * h.TileSize,
	})
	return lo, hi
}

// Box returns a box enclosing every sample. Removing terrain with Set does not
// shrink it.
func (h *Heightmap) Box() picking.AABB {
	lo, hi := h.Bounds()
	return picking.NewAABB(lo.X, h.minY, lo.Y, hi.X, h.maxY, hi.Y)
}

// cell returns the tile under (x, z) and the fractional position inside it.
func (h *Heightmap) cell(x, z float32) (cx, cz int, fx, fz float32, ok bool) {
	if h.TilesX < 2 || h.TilesZ < 2 {
		return 0, 0, 0, 0, false
	}
	gx := (x - h.Origin.X) / h.TileSize
	gz := (z - h.Origin.Y) / h.TileSize
	if gx < 0 || gz < 0 || gx > float32(h.TilesX-1) || gz > float32(h.TilesZ-1) {
		return 0, 0, 0, 0, false
	}

	cx, cz = int(gx), int(gz)
	// The far edge belongs to the last tile.
	cx = min(cx, h.TilesX-2)
	cz = min(cz, h.TilesZ-2)
	return cx, cz, gx - float32(cx), gz - float32(cz), true
}

// Sample returns the bilinearly interpolated height at world (x, z). It reports
// false outside the heightmap and over holes.
func (h *Heightmap) Sample(x, z float32) (float32, bool) {
	cx, cz, fx, fz, ok := h.cell(x, z)
	if !ok {
		return 0, false
	}

	sw := h.Altitudes[cx][cz]
	se := h.Altitudes[cx+1][cz]
	nw := h.Altitudes[cx][cz+1]
	ne := h.Altitudes[cx+1][cz+1]
	if isHole(sw) || isHole(se) || isHole(nw) || isHole(ne) {
		return 0, false
	}

	// South edge (lower Z): lerp between SW and SE
	south := sw*(1-fx) + se*fx
	// North edge (higher Z): lerp between NW and NE
	north := nw*(1-fx) + ne*fx
	return south*(1-fz) + north*fz, true
}

// HeightAt returns the terrain height at world (x, z). Where Sample has no
// answer it falls back to the mean of the surrounding samples that exist,
// clamped to the heightmap, and to 0 when there are none. Cell corners that
// overhang the terrain edge therefore stay close to it.
func (h *Heightmap) HeightAt(x, z float32) float32 {
	if y, ok := h.Sample(x, z); ok {
		return y
	}
	if h.TilesX == 0 || h.TilesZ == 0 {
		return 0
	}

	gx := int(gomath.Floor(float64((x - h.Origin.X) / h.TileSize)))
	gz := int(gomath.Floor(float64((z - h.Origin.Y) / h.TileSize)))

	var sum float32
	n := 0
	for _, ix := range [2]int{gx, gx + 1} {
		for _, iz := range [2]int{gz, gz + 1} {
			ix := clampi(ix, 0, h.TilesX-1)
			iz := clampi(iz, 0, h.TilesZ-1)
			if a := h.Altitudes[ix][iz]; !isHole(a) {
				sum += a
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float32(n)
}

func isHole(v float32) bool {
	return v != v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
