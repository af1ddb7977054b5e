package model

import (
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/pkg/math"
)

// Specular exponents are declared in [0, ShininessInputMax] and stored in
// [0, ShininessOutputMax], the range fixed-function lighting accepts.
const (
	ShininessInputMax  = 1000
	ShininessOutputMax = 128
)

// Fixed-function defaults pushed for colors a material does not declare.
var (
	DefaultAmbient  = [4]float32{0.2, 0.2, 0.2, 1}
	DefaultDiffuse  = [4]float32{0.8, 0.8, 0.8, 1}
	DefaultSpecular = [4]float32{0, 0, 0, 1}
)

// Material describes the appearance of a model. Colors and textures are
// optional; nil means the value was not declared.
type Material struct {
	name string

	ambient  *math.Vec3
	diffuse  *math.Vec3
	specular *math.Vec3

	specularExponent float32
	alpha            float32

	ambientTexture *texture.Texture
	diffuseTexture *texture.Texture
}

// MaterialParams are the declared values of a material before construction.
type MaterialParams struct {
	Name     string
	Ambient  *math.Vec3
	Diffuse  *math.Vec3
	Specular *math.Vec3

	// SpecularExponent is in the 0-1000 reference range.
	SpecularExponent float32
	Alpha            float32

	AmbientTexture *texture.Texture
	DiffuseTexture *texture.Texture
}

// NewMaterial builds a material, rescaling the specular exponent once.
func NewMaterial(p MaterialParams) *Material {
	return &Material{
		name:             p.Name,
		ambient:          p.Ambient,
		diffuse:          p.Diffuse,
		specular:         p.Specular,
		specularExponent: remapShininess(p.SpecularExponent),
		alpha:            p.Alpha,
		ambientTexture:   p.AmbientTexture,
		diffuseTexture:   p.DiffuseTexture,
	}
}

// remapShininess maps an exponent from the declared range into the stored range.
func remapShininess(ns float32) float32 {
	return ns * (float32(ShininessOutputMax) / float32(ShininessInputMax))
}

// Name returns the material name.
func (m *Material) Name() string { return m.name }

// AmbientColor returns the ambient color, or nil if undeclared.
func (m *Material) AmbientColor() *math.Vec3 { return m.ambient }

// SetAmbientColor overrides the ambient color.
func (m *Material) SetAmbientColor(c *math.Vec3) { m.ambient = c }

// DiffuseColor returns the diffuse color, or nil if undeclared.
func (m *Material) DiffuseColor() *math.Vec3 { return m.diffuse }

// SetDiffuseColor overrides the diffuse color.
func (m *Material) SetDiffuseColor(c *math.Vec3) { m.diffuse = c }

// SpecularColor returns the specular color, or nil if undeclared.
func (m *Material) SpecularColor() *math.Vec3 { return m.specular }

// SetSpecularColor overrides the specular color.
func (m *Material) SetSpecularColor(c *math.Vec3) { m.specular = c }

// SpecularExponent returns the stored exponent in the 0-128 range.
func (m *Material) SpecularExponent() float32 { return m.specularExponent }

// SetSpecularExponent stores v as is; no range conversion is applied.
func (m *Material) SetSpecularExponent(v float32) { m.specularExponent = v }

// Alpha returns the declared opacity (0 when undeclared).
func (m *Material) Alpha() float32 { return m.alpha }

// SetAlpha overrides the opacity.
func (m *Material) SetAlpha(v float32) { m.alpha = v }

// AmbientTexture returns the ambient map, or nil.
func (m *Material) AmbientTexture() *texture.Texture { return m.ambientTexture }

// SetAmbientTexture overrides the ambient map.
func (m *Material) SetAmbientTexture(t *texture.Texture) { m.ambientTexture = t }

// DiffuseTexture returns the diffuse map, or nil.
func (m *Material) DiffuseTexture() *texture.Texture { return m.diffuseTexture }

// SetDiffuseTexture overrides the diffuse map.
func (m *Material) SetDiffuseTexture(t *texture.Texture) { m.diffuseTexture = t }

// RGBA expands a color to four components with w = 1, substituting def when
// the color is nil.
func RGBA(c *math.Vec3, def [4]float32) [4]float32 {
	if c == nil {
		return def
	}
	return [4]float32{c.X, c.Y, c.Z, 1}
}
