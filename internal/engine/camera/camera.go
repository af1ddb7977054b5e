// Package camera provides the orbit camera used to inspect models.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/objview/pkg/math"
)

// Near and far plane distances are multiples of the fitted model radius.
const (
	nearFactor = 0.01
	farFactor  = 20
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Elevation above the XZ plane, radians
	Yaw      float32 // Rotation around Y, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32 // fraction of distance per wheel step

	// FOV is the vertical field of view in degrees.
	FOV          float32
	Orthographic bool

	radius float32
	home   framing
}

// framing is the position saved by FitToBounds.
type framing struct {
	center      math.Vec3
	distance    float32
	pitch, yaw  float32
	minDistance float32
	maxDistance float32
	radius      float32
}

// NewOrbitCamera creates an orbit camera looking at the origin from a
// distance suited to a unit-sized model.
func NewOrbitCamera(fovDegrees float32) *OrbitCamera {
	c := &OrbitCamera{
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
		FOV:             fovDegrees,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
	}
	c.FitToBounds(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)

	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * sy,
		Y: c.Distance * sp,
		Z: c.Distance * cp * cy,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective or orthographic projection for
// the given aspect ratio. The orthographic volume matches the perspective
// frustum's extent at the orbit center, so toggling keeps the model's size.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	near := c.radius * nearFactor
	far := c.Distance + c.radius*farFactor
	halfFOV := c.FOV * math32.Pi / 360

	if c.Orthographic {
		halfH := c.Distance * math32.Tan(halfFOV)
		halfW := halfH * aspect
		return math.Ortho(-halfW, halfW, -halfH, halfH, near, far)
	}
	return math.Perspective(2*halfFOV, aspect, near, far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta. Positive delta
// moves closer.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on the box and backs off far enough for the
// whole box to fit in view. The result becomes the Reset position.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	radius := max.Sub(min).Length() / 2
	if radius <= 0 {
		radius = 1
	}
	c.radius = radius

	halfFOV := c.FOV * math32.Pi / 360
	c.Distance = radius / math32.Sin(halfFOV)
	c.MinDistance = radius * 0.1
	c.MaxDistance = radius * 50

	// Slightly above and to the side, like a three-quarter studio view.
	c.Pitch = 0.4
	c.Yaw = 0.6

	c.home = framing{
		center:      c.Center,
		distance:    c.Distance,
		pitch:       c.Pitch,
		yaw:         c.Yaw,
		minDistance: c.MinDistance,
		maxDistance: c.MaxDistance,
		radius:      c.radius,
	}
}

// Radius returns the radius of the last fitted bounds.
func (c *OrbitCamera) Radius() float32 {
	return c.radius
}

// Reset restores the position computed by the last FitToBounds, keeping the
// projection mode.
func (c *OrbitCamera) Reset() {
	h := c.home
	c.Center = h.center
	c.Distance = h.distance
	c.Pitch = h.pitch
	c.Yaw = h.yaw
	c.MinDistance = h.minDistance
	c.MaxDistance = h.maxDistance
	c.radius = h.radius
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
