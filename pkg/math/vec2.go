// Package math provides the float32 vector, quaternion and matrix types shared by
// the grid generator, the terrain surface and the viewer.
package math

import "math"

// Vec2 is a 2D vector. For ground-plane quantities Y holds the world Z component.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides component-wise. Zero components of d yield zero.
func (v Vec2) Div(d Vec2) Vec2 {
	var out Vec2
	if d.X != 0 {
		out.X = v.X / d.X
	}
	if d.Y != 0 {
		out.Y = v.Y / d.Y
	}
	return out
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}
