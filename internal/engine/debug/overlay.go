// Package debug builds overlay geometry and captures screenshots for the viewer.
//
// Overlay builders return flat [x, y, z] float slices laid out as GL_LINES
// endpoint pairs.
package debug

import (
	"github.com/Faultbox/hexdrape/pkg/hex"
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// CellOutline returns the six boundary edges of a realized cell, raised by lift.
func CellOutline(c *hexgrid.Cell, lift float32) []float32 {
	if !c.Realized() {
		return nil
	}
	out := make([]float32, 0, hex.DirectionCount*2*3)
	for i := range hex.DirectionCount {
		a := c.Vertices[i]
		b := c.Vertices[(i+1)%hex.DirectionCount]
		out = append(out, a.X, a.Y+lift, a.Z, b.X, b.Y+lift, b.Z)
	}
	return out
}

// PathLines joins consecutive cells of a path center to center, each center
// placed at its cell's elevation plus lift.
func PathLines(path []*hexgrid.Cell, lift float32) []float32 {
	if len(path) < 2 {
		return nil
	}
	out := make([]float32, 0, (len(path)-1)*2*3)
	point := func(c *hexgrid.Cell) math.Vec3 {
		return math.Vec3{X: c.Center.X, Y: c.Elevation() + lift, Z: c.Center.Z}
	}
	for i := 1; i < len(path); i++ {
		a, b := point(path[i-1]), point(path[i])
		out = append(out, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return out
}

// BBoxWireframe returns the 12 edges of an axis-aligned box.
func BBoxWireframe(lo, hi math.Vec3) []float32 {
	minX, minY, minZ := lo.X, lo.Y, lo.Z
	maxX, maxY, maxZ := hi.X, hi.Y, hi.Z
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
