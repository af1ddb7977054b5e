package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/objview/pkg/math"
)

const eps = 1e-4

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera(45)
	c.FitToBounds(math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{X: 2, Y: 4, Z: 4})

	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 2}, c.Center)
	assert.InDelta(t, 3, c.Radius(), eps)
	// The bounding sphere exactly fills the vertical field of view.
	assert.InDelta(t, 3/math32.Sin(22.5*math32.Pi/180), c.Distance, eps)

	dist := c.Position().Sub(c.Center).Length()
	assert.InDelta(t, c.Distance, dist, eps)
}

func TestFitToEmptyBounds(t *testing.T) {
	c := NewOrbitCamera(45)
	p := math.Vec3{X: 5, Y: 5, Z: 5}
	c.FitToBounds(p, p)

	assert.Equal(t, p, c.Center)
	assert.Equal(t, float32(1), c.Radius())
	assert.Greater(t, c.Distance, float32(0))
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(45)

	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPitch, c.Pitch)

	c.HandleDrag(0, -10000)
	assert.Equal(t, c.MinPitch, c.Pitch)

	yaw := c.Yaw
	c.HandleDrag(10, 0)
	assert.InDelta(t, yaw-10*c.DragSensitivity, c.Yaw, eps)
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera(45)

	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, c.MinDistance, c.Distance)

	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera(45)
	c.FitToBounds(math.Vec3{}, math.Vec3{X: 10, Y: 10, Z: 10})
	want := c.Position()

	c.HandleDrag(50, 20)
	c.HandleZoom(3)
	c.Center = math.Vec3{X: -3}
	c.Orthographic = true

	c.Reset()
	assert.Equal(t, math.Vec3{X: 5, Y: 5, Z: 5}, c.Center)
	assert.InDelta(t, 5*math32.Sqrt(3), c.Radius(), eps)
	assert.InDelta(t, c.Radius()*0.1, c.MinDistance, eps)
	got := c.Position()
	assert.InDelta(t, want.X, got.X, eps)
	assert.InDelta(t, want.Y, got.Y, eps)
	assert.InDelta(t, want.Z, got.Z, eps)
	assert.True(t, c.Orthographic)

	// Reset is repeatable.
	c.HandleZoom(2)
	c.Reset()
	assert.InDelta(t, want.X, c.Position().X, eps)
}

func TestViewMatrixMapsCenterToAxis(t *testing.T) {
	c := NewOrbitCamera(45)
	c.FitToBounds(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 3, Y: 1, Z: 1})

	p := c.ViewMatrix().TransformVec3(c.Center)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
	assert.InDelta(t, -c.Distance, p.Z, eps)
}

func TestProjectionModes(t *testing.T) {
	c := NewOrbitCamera(45)

	persp := c.ProjectionMatrix(2)
	assert.Equal(t, float32(-1), persp[11])

	c.Orthographic = true
	ortho := c.ProjectionMatrix(2)
	assert.Equal(t, float32(0), ortho[11])
	assert.Equal(t, float32(1), ortho[15])
	// Width is twice the height at aspect 2.
	assert.InDelta(t, ortho[5]/2, ortho[0], eps)
}
