// Package formats provides parsers for the Wavefront OBJ geometry format and
// its MTL material libraries.
//
// Only a fixed subset is recognized. Geometry files understand v, vt, vn, f
// and mtllib; material libraries understand newmtl, Ka, Kd, Ks, Ns, d,
// map_Ka and map_Kd. Every other directive is skipped.
package formats

import (
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/objview/pkg/math"
)

// MaxFaceVertices is the largest vertex group count accepted on a face line.
const MaxFaceVertices = 4

// OBJVertex is one resolved vertex group of a face. Values are copies of the
// referenced buffer entries.
type OBJVertex struct {
	Position math.Vec3
	TexCoord math.Vec2
	Normal   math.Vec3
}

// OBJFace is a face line with its vertex groups in declaration order.
type OBJFace struct {
	Vertices []OBJVertex
	Line     int
}

// OBJ is a parsed geometry description.
type OBJ struct {
	Positions    []math.Vec3
	TexCoords    []math.Vec2
	Normals      []math.Vec3
	Faces        []OBJFace
	MaterialLibs []string
}

// LibraryFunc is invoked for every mtllib directive at the point it appears
// in the file. A non-nil error aborts parsing.
type LibraryFunc func(name string) error

// ParseOBJ parses geometry text. onLib may be nil, in which case material
// library names are only recorded.
func ParseOBJ(data []byte, onLib LibraryFunc) (*OBJ, error) {
	obj := &OBJ{}

	err := scanLines(data, func(line int, tokens []string) error {
		switch tokens[0] {
		case "v":
			v, err := parseVec3(tokens)
			if err != nil {
				return err
			}
			obj.Positions = append(obj.Positions, v)
		case "vt":
			v, err := parseVec2(tokens)
			if err != nil {
				return err
			}
			obj.TexCoords = append(obj.TexCoords, v)
		case "vn":
			v, err := parseVec3(tokens)
			if err != nil {
				return err
			}
			obj.Normals = append(obj.Normals, v)
		case "f":
			face, err := obj.parseFace(tokens)
			if err != nil {
				return err
			}
			face.Line = line
			obj.Faces = append(obj.Faces, face)
		case "mtllib":
			name, err := singleArg(tokens)
			if err != nil {
				return err
			}
			obj.MaterialLibs = append(obj.MaterialLibs, name)
			if onLib != nil {
				return onLib(name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// ParseOBJFile parses a geometry file from disk without resolving libraries.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data, nil)
}

// parseFace resolves every "p/t/n" group of a face line against the buffers
// populated so far. All three indices are required.
func (obj *OBJ) parseFace(tokens []string) (OBJFace, error) {
	groups := tokens[1:]
	if len(groups) < 1 || len(groups) > MaxFaceVertices {
		return OBJFace{}, malformed("face has %d vertices; supported counts are 1 to %d", len(groups), MaxFaceVertices)
	}

	face := OBJFace{Vertices: make([]OBJVertex, 0, len(groups))}
	for i, group := range groups {
		indices := strings.Split(group, "/")
		if len(indices) != 3 || indices[0] == "" || indices[1] == "" || indices[2] == "" {
			return OBJFace{}, malformed("face vertex %d: %q must be position/texcoord/normal", i+1, group)
		}

		p, err := resolveIndex(indices[0], len(obj.Positions))
		if err != nil {
			return OBJFace{}, fmt.Errorf("face vertex %d position: %w", i+1, err)
		}
		t, err := resolveIndex(indices[1], len(obj.TexCoords))
		if err != nil {
			return OBJFace{}, fmt.Errorf("face vertex %d texcoord: %w", i+1, err)
		}
		n, err := resolveIndex(indices[2], len(obj.Normals))
		if err != nil {
			return OBJFace{}, fmt.Errorf("face vertex %d normal: %w", i+1, err)
		}

		face.Vertices = append(face.Vertices, OBJVertex{
			Position: obj.Positions[p],
			TexCoord: obj.TexCoords[t],
			Normal:   obj.Normals[n],
		})
	}
	return face, nil
}
