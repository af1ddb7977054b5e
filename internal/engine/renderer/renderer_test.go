package renderer

import (
	"testing"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/pkg/math"
)

// Backend.Begin passes modes straight to glBegin.
func TestModesMatchGL(t *testing.T) {
	assert.Equal(t, uint32(gl.POINTS), uint32(model.ModePoints))
	assert.Equal(t, uint32(gl.LINES), uint32(model.ModeLines))
	assert.Equal(t, uint32(gl.TRIANGLES), uint32(model.ModeTriangles))
	assert.Equal(t, uint32(gl.QUADS), uint32(model.ModeQuads))
}

func TestAxes(t *testing.T) {
	a := axes(5)
	assert.Equal(t, math.Vec3{X: 5}, a[0].end)
	assert.Equal(t, math.Vec3{Y: 5}, a[1].end)
	assert.Equal(t, math.Vec3{Z: 5}, a[2].end)
	assert.Equal(t, [3]float32{0, 0, 1}, a[2].color)
}

func TestAspect(t *testing.T) {
	r := &Renderer{config: Config{Width: 1600, Height: 800}}
	assert.Equal(t, float32(2), r.Aspect())

	w, h := r.Size()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 800, h)

	r.config.Height = 0
	assert.Equal(t, float32(1), r.Aspect())
}
