// Package camera provides the orbit camera used by the grid viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/hexdrape/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FovY float32 // radians
	Near float32
	Far  float32
}

// NewOrbitCamera creates a new orbit camera with defaults sized for hex cells
// a fraction of a unit across.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        20,
		RotationX:       0.8,
		MinDistance:     1,
		MaxDistance:     500,
		MinPitch:        0.1,
		MaxPitch:        1.55,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            gomath.Pi / 4,
		Near:            0.05,
		Far:             2000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.RotationX), float64(c.RotationY)
	return c.Center.Add(math.Vec3{
		X: c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw)),
		Y: c.Distance * float32(gomath.Sin(pitch)),
		Z: c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw)),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// ViewProjection returns projection * view for a viewport of the given aspect ratio.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = min(max(c.RotationX, c.MinPitch), c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}

// HandleMovement pans the camera center point based on keyboard input.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sin := float32(gomath.Sin(float64(c.RotationY)))
	cos := float32(gomath.Cos(float64(c.RotationY)))

	// Negate forward so W moves "into" the scene
	c.Center.X += (-sin*forward + cos*right) * speed
	c.Center.Z += (-cos*forward - sin*right) * speed
	c.Center.Y += up * speed
}

// FitToBounds centers the camera on a box and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Lerp(hi, 0.5)

	size := max(hi.X-lo.X, hi.Z-lo.Z)
	c.Distance = min(max(size*0.9, c.MinDistance), c.MaxDistance)

	c.RotationX = 0.8 // Look down at ~45 degrees
	c.RotationY = 0
}
