package formats

import (
	"fmt"
	"os"

	"github.com/Faultbox/objview/pkg/math"
)

// MTLMaterial is one material record of a library. Pointer fields and empty
// map paths mean the directive was not declared for this material.
type MTLMaterial struct {
	Name string

	Ambient  *math.Vec3 // Ka
	Diffuse  *math.Vec3 // Kd
	Specular *math.Vec3 // Ks

	// Shininess is the raw Ns value in the 0-1000 reference range.
	Shininess *float32
	Alpha     *float32 // d

	AmbientMap string // map_Ka, relative to the library directory
	DiffuseMap string // map_Kd, relative to the library directory
}

// mtlState accumulates the material currently being declared.
type mtlState struct {
	current MTLMaterial
	started bool
	out     []MTLMaterial
}

// begin handles newmtl: the material in progress, if any, is finished and a
// fresh accumulator takes the new name.
func (s *mtlState) begin(name string) {
	if s.started {
		s.out = append(s.out, s.current)
		s.current = MTLMaterial{}
	}
	s.current.Name = name
	s.started = true
}

// finish flushes the last material at end of input.
func (s *mtlState) finish() []MTLMaterial {
	if s.started {
		s.out = append(s.out, s.current)
	}
	return s.out
}

// apply stores one field directive into the accumulator, replacing any prior
// value for the same field.
func (s *mtlState) apply(tokens []string) error {
	cur := &s.current
	switch tokens[0] {
	case "Ka", "Kd", "Ks":
		v, err := parseVec3(tokens)
		if err != nil {
			return err
		}
		switch tokens[0] {
		case "Ka":
			cur.Ambient = &v
		case "Kd":
			cur.Diffuse = &v
		case "Ks":
			cur.Specular = &v
		}
	case "Ns":
		v, err := parseFloat32(tokens)
		if err != nil {
			return err
		}
		cur.Shininess = &v
	case "d":
		v, err := parseFloat32(tokens)
		if err != nil {
			return err
		}
		cur.Alpha = &v
	case "map_Ka":
		path, err := singleArg(tokens)
		if err != nil {
			return err
		}
		cur.AmbientMap = path
	case "map_Kd":
		path, err := singleArg(tokens)
		if err != nil {
			return err
		}
		cur.DiffuseMap = path
	}
	return nil
}

// ParseMTL parses a material library and returns its materials in
// declaration order. The result may be empty.
func ParseMTL(data []byte) ([]MTLMaterial, error) {
	var state mtlState

	err := scanLines(data, func(_ int, tokens []string) error {
		if tokens[0] == "newmtl" {
			name, err := singleArg(tokens)
			if err != nil {
				return err
			}
			state.begin(name)
			return nil
		}
		return state.apply(tokens)
	})
	if err != nil {
		return nil, err
	}
	return state.finish(), nil
}

// ParseMTLFile parses a material library from disk.
func ParseMTLFile(path string) ([]MTLMaterial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MTL file: %w", err)
	}
	return ParseMTL(data)
}
