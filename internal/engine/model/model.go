package model

// Model is a node of the scene graph. It owns its faces, an optional
// material, a texture-enable flag and an ordered list of child parts.
//
// Rendering recurses into parts without any cycle detection: a model must
// never become its own descendant.
type Model struct {
	material       *Material
	faces          []Face
	textureEnabled bool
	parts          []*Model
}

// New creates a model. material may be nil, in which case rendering leaves
// the backend appearance state untouched.
func New(material *Material, faces []Face) *Model {
	return &Model{
		material:       material,
		faces:          faces,
		textureEnabled: true,
	}
}

// Material returns the model material, or nil.
func (m *Model) Material() *Material {
	return m.material
}

// SetMaterial replaces the model material.
func (m *Model) SetMaterial(material *Material) {
	m.material = material
}

// Faces returns the faces in declaration order. The slice must not be modified.
func (m *Model) Faces() []Face {
	return m.faces
}

// TextureEnabled reports whether the diffuse texture is applied when drawing.
func (m *Model) TextureEnabled() bool {
	return m.textureEnabled
}

// SetTextureEnabled sets the flag on this model and overwrites it on every
// direct part. Grandchildren keep their own value.
func (m *Model) SetTextureEnabled(enabled bool) {
	m.textureEnabled = enabled
	for _, part := range m.parts {
		part.textureEnabled = enabled
	}
}

// AddPart appends a child. It returns false for a nil part.
func (m *Model) AddPart(part *Model) bool {
	if part == nil {
		return false
	}
	m.parts = append(m.parts, part)
	return true
}

// RemovePart removes the first occurrence of part. It returns false, leaving
// the parts untouched, when part is not a direct child.
func (m *Model) RemovePart(part *Model) bool {
	for i, p := range m.parts {
		if p == part {
			m.parts = append(m.parts[:i], m.parts[i+1:]...)
			return true
		}
	}
	return false
}

// Parts returns a copy of the child list.
func (m *Model) Parts() []*Model {
	out := make([]*Model, len(m.parts))
	copy(out, m.parts)
	return out
}

// Render draws this model and then every part in order. No backend state is
// saved or restored between siblings.
func (m *Model) Render(b Backend) {
	m.renderSelf(b)
	for _, part := range m.parts {
		part.Render(b)
	}
}

func (m *Model) renderSelf(b Backend) {
	textured := false
	if mat := m.material; mat != nil {
		b.SetMaterial(
			RGBA(mat.ambient, DefaultAmbient),
			RGBA(mat.diffuse, DefaultDiffuse),
			RGBA(mat.specular, DefaultSpecular),
			mat.specularExponent,
		)
		if mat.diffuseTexture != nil && m.textureEnabled {
			b.BindTexture(mat.diffuseTexture)
			b.EnableTexturing()
			textured = true
		}
	}

	for _, face := range m.faces {
		b.Begin(face.Topology.Mode())
		for _, v := range face.Vertices {
			uv := v.TexCoord.FlipV()
			b.TexCoord(uv.X, uv.Y)
			b.Normal(v.Normal.X, v.Normal.Y, v.Normal.Z)
			b.Vertex(v.Position.X, v.Position.Y, v.Position.Z)
		}
		b.End()
	}

	if textured {
		b.DisableTexturing()
	}
}

// Bounds returns the bounding box of every vertex in the subtree. ok is false
// when the subtree has no vertices.
func (m *Model) Bounds() (b Bounds, ok bool) {
	for _, face := range m.faces {
		for _, v := range face.Vertices {
			if !ok {
				b = Bounds{Min: v.Position, Max: v.Position}
				ok = true
				continue
			}
			b = b.extend(v.Position)
		}
	}
	for _, part := range m.parts {
		pb, pok := part.Bounds()
		if !pok {
			continue
		}
		if !ok {
			b, ok = pb, true
			continue
		}
		b = b.extend(pb.Min).extend(pb.Max)
	}
	return b, ok
}

// Stats summarizes a model subtree.
type Stats struct {
	Nodes    int
	Faces    map[Topology]int
	Vertices int
	Textured int // nodes whose material has a diffuse texture
}

// TotalFaces returns the face count over all topologies.
func (s Stats) TotalFaces() int {
	n := 0
	for _, c := range s.Faces {
		n += c
	}
	return n
}

// Stats counts nodes, faces and vertices in the subtree.
func (m *Model) Stats() Stats {
	s := Stats{Faces: make(map[Topology]int)}
	m.collectStats(&s)
	return s
}

func (m *Model) collectStats(s *Stats) {
	s.Nodes++
	if m.material != nil && m.material.diffuseTexture != nil {
		s.Textured++
	}
	for _, face := range m.faces {
		s.Faces[face.Topology]++
		s.Vertices += len(face.Vertices)
	}
	for _, part := range m.parts {
		part.collectStats(s)
	}
}
