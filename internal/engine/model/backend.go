package model

import "github.com/Faultbox/objview/internal/engine/texture"

// Backend receives the draw commands and appearance state changes issued
// while rendering a model tree.
type Backend interface {
	// SetMaterial makes the colors and specular exponent the active appearance.
	SetMaterial(ambient, diffuse, specular [4]float32, shininess float32)

	BindTexture(tex *texture.Texture)
	EnableTexturing()
	DisableTexturing()

	// Begin starts a primitive; TexCoord, Normal and Vertex are streamed per
	// vertex in that order until End.
	Begin(mode Mode)
	TexCoord(u, v float32)
	Normal(x, y, z float32)
	Vertex(x, y, z float32)
	End()
}
