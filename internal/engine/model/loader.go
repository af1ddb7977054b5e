package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/formats"
)

// Load errors. Malformed text is reported with formats.ErrMalformedData.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrMissingLibrary   = errors.New("missing material library")
)

// TextureLoader turns a texture file path into a bindable texture.
type TextureLoader interface {
	Load(path string) (*texture.Texture, error)
}

// Load reads a geometry file and builds its root model: every face in
// declaration order with the first material of the referenced libraries.
// textures may be nil to skip texture maps. On error no model is returned.
func Load(path string, textures TextureLoader) (*Model, error) {
	m, _, err := LoadWithMaterials(path, textures)
	return m, err
}

// LoadWithMaterials is Load that also returns every material declared by the
// referenced libraries, in declaration order.
func LoadWithMaterials(path string, textures TextureLoader) (*Model, []*Material, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrResourceNotFound, path, err)
	}

	dir := filepath.Dir(path)
	var materials []*Material
	obj, err := formats.ParseOBJ(data, func(name string) error {
		libPath := filepath.Join(dir, name)
		libData, err := os.ReadFile(libPath)
		if err != nil {
			return fmt.Errorf("%w: no material for %s: %w", ErrMissingLibrary, filepath.Base(path), err)
		}
		mats, err := loadLibrary(libPath, libData, textures)
		if err != nil {
			return fmt.Errorf("material library %s: %w", name, err)
		}
		materials = append(materials, mats...)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", filepath.Base(path), err)
	}

	faces := make([]Face, 0, len(obj.Faces))
	for _, f := range obj.Faces {
		vertices := make([]Vertex, len(f.Vertices))
		for i, v := range f.Vertices {
			vertices[i] = Vertex{Position: v.Position, TexCoord: v.TexCoord, Normal: v.Normal}
		}
		face, err := NewFace(vertices)
		if err != nil {
			return nil, nil, fmt.Errorf("loading %s: %w", filepath.Base(path), &formats.ParseError{Line: f.Line, Err: err})
		}
		faces = append(faces, face)
	}

	var root *Material
	if len(materials) > 0 {
		root = materials[0]
	}

	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("positions", len(obj.Positions)),
		zap.Int("faces", len(faces)),
		zap.Int("materials", len(materials)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return New(root, faces), materials, nil
}

// loadLibrary parses the contents of the library at libPath and resolves its
// texture maps relative to the library's own directory.
func loadLibrary(libPath string, data []byte, textures TextureLoader) ([]*Material, error) {
	parsed, err := formats.ParseMTL(data)
	if err != nil {
		return nil, err
	}

	libDir := filepath.Dir(libPath)
	logger.Debug("material library parsed",
		zap.String("path", libPath),
		zap.Int("materials", len(parsed)),
	)

	out := make([]*Material, 0, len(parsed))
	for _, p := range parsed {
		params := MaterialParams{
			Name:           p.Name,
			Ambient:        p.Ambient,
			Diffuse:        p.Diffuse,
			Specular:       p.Specular,
			AmbientTexture: resolveTexture(textures, libDir, p.AmbientMap),
			DiffuseTexture: resolveTexture(textures, libDir, p.DiffuseMap),
		}
		if p.Shininess != nil {
			params.SpecularExponent = *p.Shininess
		}
		if p.Alpha != nil {
			params.Alpha = *p.Alpha
		}
		out = append(out, NewMaterial(params))
	}
	return out, nil
}

// resolveTexture loads a map referenced by a library. A failed load is logged
// and yields nil so the material renders untextured.
func resolveTexture(textures TextureLoader, libDir, rel string) *texture.Texture {
	if rel == "" || textures == nil {
		return nil
	}

	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(libDir, rel)
	}

	tex, err := textures.Load(path)
	if err != nil {
		logger.Warn("texture load failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	return tex
}
