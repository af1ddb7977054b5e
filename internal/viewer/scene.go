package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/math"
)

// Scene is one viewable model tree.
type Scene struct {
	Name   string
	Root   *model.Model
	Bounds model.Bounds
	Empty  bool // no vertices anywhere in the tree
}

// LoadScene loads the root model of cfg and attaches every part beneath it.
func LoadScene(cfg config.ModelConfig, textures model.TextureLoader) (*Scene, error) {
	root, err := model.Load(cfg.Path, textures)
	if err != nil {
		return nil, err
	}

	for _, p := range cfg.Parts {
		part, err := model.Load(p, textures)
		if err != nil {
			return nil, fmt.Errorf("part of %s: %w", cfg.DisplayName(), err)
		}
		root.AddPart(part)
	}

	s := &Scene{Name: cfg.DisplayName(), Root: root}
	b, ok := root.Bounds()
	if !ok {
		s.Empty = true
		b = model.Bounds{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	}
	s.Bounds = b

	stats := root.Stats()
	logger.Info("scene ready",
		zap.String("name", s.Name),
		zap.Int("parts", len(cfg.Parts)),
		zap.Int("faces", stats.TotalFaces()),
		zap.Int("vertices", stats.Vertices),
	)
	return s, nil
}

// LoadScenes loads every configured scene in order. Any failure aborts.
func LoadScenes(cfgs []config.ModelConfig, textures model.TextureLoader) ([]*Scene, error) {
	scenes := make([]*Scene, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := LoadScene(c, textures)
		if err != nil {
			return nil, fmt.Errorf("loading scene %s: %w", c.DisplayName(), err)
		}
		scenes = append(scenes, s)
	}
	return scenes, nil
}

// Radius returns half the diagonal of the scene bounds.
func (s *Scene) Radius() float32 {
	return s.Bounds.Size().Length() / 2
}
