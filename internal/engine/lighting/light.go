// Package lighting defines the studio light rig used by the viewer.
package lighting

import "github.com/Faultbox/objview/pkg/math"

// MaxLights is the number of fixed-function light slots the rig may use.
const MaxLights = 8

// referenceRadius is the model radius the rig positions are tuned for.
const referenceRadius = 8

// Light is a fixed-function light source.
type Light struct {
	Name string

	// Color is the light's base RGB color (0-1 range).
	Color [3]float32

	// Portions of Color emitted as each lighting component.
	AmbientIntensity  float32
	DiffuseIntensity  float32
	SpecularIntensity float32

	// Position in eye-independent world space. Directional lights point from
	// Position towards the origin.
	Position    math.Vec3
	Directional bool

	Enabled bool
}

// Components returns the ambient, diffuse and specular colors of the light.
// Alpha is always 1.
func (l Light) Components() (ambient, diffuse, specular [4]float32) {
	scale := func(k float32) [4]float32 {
		return [4]float32{
			clamp01(l.Color[0] * k),
			clamp01(l.Color[1] * k),
			clamp01(l.Color[2] * k),
			1,
		}
	}
	return scale(l.AmbientIntensity), scale(l.DiffuseIntensity), scale(l.SpecularIntensity)
}

// HomogeneousPosition returns the position as passed to the GL, with w = 0
// for directional lights and w = 1 for positional ones.
func (l Light) HomogeneousPosition() [4]float32 {
	w := float32(1)
	if l.Directional {
		w = 0
	}
	return [4]float32{l.Position.X, l.Position.Y, l.Position.Z, w}
}

// RGB8 converts 8-bit color channels to the 0-1 range.
func RGB8(r, g, b uint8) [3]float32 {
	const p = 1.0 / 255
	return [3]float32{float32(r) * p, float32(g) * p, float32(b) * p}
}

// ThreePoint returns the key, back and fill lights of a classic studio rig,
// all enabled.
func ThreePoint() []Light {
	return []Light{
		{
			Name:              "key",
			Color:             RGB8(255, 255, 225),
			AmbientIntensity:  0.1,
			DiffuseIntensity:  0.95,
			SpecularIntensity: 0.1,
			Position:          math.Vec3{X: 2, Y: 8, Z: 10},
			Directional:       true,
			Enabled:           true,
		},
		{
			Name:              "back",
			Color:             RGB8(185, 191, 215),
			AmbientIntensity:  0.05,
			DiffuseIntensity:  0.50,
			SpecularIntensity: 0.01,
			Position:          math.Vec3{X: -5, Y: 8, Z: -1},
			Enabled:           true,
		},
		{
			Name:              "fill",
			Color:             RGB8(255, 255, 255),
			AmbientIntensity:  0,
			DiffuseIntensity:  0.25,
			SpecularIntensity: 0.01,
			Position:          math.Vec3{X: 10, Y: 5, Z: -1},
			Enabled:           true,
		},
	}
}

// FitToRadius returns a copy of lights with positional lights moved so the
// rig keeps its shape around a model of the given radius centered at center.
// Directional lights are unchanged.
func FitToRadius(lights []Light, center math.Vec3, radius float32) []Light {
	out := make([]Light, len(lights))
	copy(out, lights)
	if radius <= 0 {
		return out
	}
	k := radius / referenceRadius
	for i := range out {
		if out[i].Directional {
			continue
		}
		out[i].Position = center.Add(out[i].Position.Scale(k))
	}
	return out
}

// Toggle flips the light at index i and reports its new state. Out of range
// indices are ignored.
func Toggle(lights []Light, i int) (enabled, ok bool) {
	if i < 0 || i >= len(lights) {
		return false, false
	}
	lights[i].Enabled = !lights[i].Enabled
	return lights[i].Enabled, true
}

func clamp01(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
