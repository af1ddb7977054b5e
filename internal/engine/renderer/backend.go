package renderer

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/texture"
)

// Backend issues model draw commands as OpenGL immediate-mode calls.
type Backend struct{}

var _ model.Backend = (*Backend)(nil)

// SetMaterial sets the front and back material colors and shininess.
func (b *Backend) SetMaterial(ambient, diffuse, specular [4]float32, shininess float32) {
	gl.Materialfv(gl.FRONT_AND_BACK, gl.AMBIENT, &ambient[0])
	gl.Materialfv(gl.FRONT_AND_BACK, gl.DIFFUSE, &diffuse[0])
	gl.Materialfv(gl.FRONT_AND_BACK, gl.SPECULAR, &specular[0])
	gl.Materialf(gl.FRONT_AND_BACK, gl.SHININESS, shininess)
}

// BindTexture binds tex to the 2D texture target.
func (b *Backend) BindTexture(tex *texture.Texture) {
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
}

// EnableTexturing turns on 2D texturing.
func (b *Backend) EnableTexturing() { gl.Enable(gl.TEXTURE_2D) }

// DisableTexturing turns off 2D texturing.
func (b *Backend) DisableTexturing() { gl.Disable(gl.TEXTURE_2D) }

// Begin starts a primitive batch.
func (b *Backend) Begin(mode model.Mode) { gl.Begin(uint32(mode)) }

// TexCoord sets the texture coordinate of the next vertex.
func (b *Backend) TexCoord(u, v float32) { gl.TexCoord2f(u, v) }

// Normal sets the normal of the next vertex.
func (b *Backend) Normal(x, y, z float32) { gl.Normal3f(x, y, z) }

// Vertex emits a vertex.
func (b *Backend) Vertex(x, y, z float32) { gl.Vertex3f(x, y, z) }

// End closes the current primitive batch.
func (b *Backend) End() { gl.End() }
