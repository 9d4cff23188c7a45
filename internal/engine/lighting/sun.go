// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "math"

// SunDirection converts sun angles in degrees to a unit vector pointing
// towards the sun. Azimuth is rotation around Y starting from +Z, elevation
// is measured from the horizon.
func SunDirection(azimuth, elevation float32) [3]float32 {
	// Convert degrees to radians
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	// Spherical to Cartesian conversion
	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return [3]float32{x, y, z}
}

// LightDirection is the direction light travels for a sun at the given angles.
func LightDirection(azimuth, elevation float32) [3]float32 {
	d := SunDirection(azimuth, elevation)
	return [3]float32{-d[0], -d[1], -d[2]}
}
