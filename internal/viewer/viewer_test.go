package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/texture"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const triangleOBJ = `v 0 0 0
v 2 0 0
v 0 2 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`

func TestLoadSceneWithParts(t *testing.T) {
	dir := t.TempDir()
	body := writeFile(t, dir, "reaper_2.obj", triangleOBJ)
	cloak := writeFile(t, dir, "reaper_1.obj", "v 0 0 -4\nvt 0 0\nvn 0 0 1\nf 1/1/1\n")

	s, err := LoadScene(config.ModelConfig{Name: "reaper", Path: body, Parts: []string{cloak}}, texture.NewLoader(texture.DecodeOnly))
	require.NoError(t, err)

	assert.Equal(t, "reaper", s.Name)
	assert.False(t, s.Empty)
	require.Len(t, s.Root.Parts(), 1)
	assert.Equal(t, float32(-4), s.Bounds.Min.Z)
	assert.Equal(t, float32(2), s.Bounds.Max.X)

	stats := s.Root.Stats()
	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 1, stats.Faces[model.Points])
}

func TestLoadScenesAbortsOnFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.obj", triangleOBJ)

	_, err := LoadScenes([]config.ModelConfig{
		{Path: good},
		{Path: filepath.Join(dir, "missing.obj")},
	}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrResourceNotFound)
	assert.Contains(t, err.Error(), "missing.obj")
}

func TestLoadScenePartFailure(t *testing.T) {
	dir := t.TempDir()
	body := writeFile(t, dir, "body.obj", triangleOBJ)

	_, err := LoadScene(config.ModelConfig{Path: body, Parts: []string{filepath.Join(dir, "nope.obj")}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrResourceNotFound)
}

func TestEmptyScene(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.obj", "# nothing here\n")

	s, err := LoadScene(config.ModelConfig{Path: path}, nil)
	require.NoError(t, err)
	assert.True(t, s.Empty)
	assert.Equal(t, "empty.obj", s.Name)
	assert.Greater(t, s.Radius(), float32(0))
}

func TestStateApply(t *testing.T) {
	cfg := config.Default().Viewer
	cfg.Lights.Back = false
	s := NewState(cfg, 3)

	assert.True(t, s.Textures)
	assert.False(t, s.Lights[1].Enabled)

	assert.True(t, s.Apply(ActionFor(input.KeySpace)))
	assert.True(t, s.Apply(ActionNextScene))
	assert.True(t, s.Apply(ActionNextScene))
	assert.Equal(t, 0, s.Scene)

	s.Apply(ActionFor(input.KeyT))
	assert.False(t, s.Textures)

	s.Apply(ActionFor(input.KeyP))
	assert.True(t, s.Orthographic)

	s.Apply(ActionFor(input.KeyM))
	assert.False(t, s.Rotating)

	s.Apply(ActionFor(input.Key2))
	assert.True(t, s.Lights[1].Enabled)
	s.Apply(ActionFor(input.Key1))
	assert.False(t, s.Lights[0].Enabled)

	s.Apply(ActionFor(input.KeyX))
	assert.True(t, s.ShowAxes)
	s.Apply(ActionFor(input.KeyB))
	assert.True(t, s.ShowBounds)

	assert.False(t, s.Apply(ActionFor(input.KeyF12)))
	assert.False(t, s.Quit)
	s.Apply(ActionFor(input.KeyEscape))
	assert.True(t, s.Quit)
}

func TestSingleSceneDoesNotSwitch(t *testing.T) {
	s := NewState(config.Default().Viewer, 1)
	assert.False(t, s.Apply(ActionNextScene))
	assert.Equal(t, 0, s.Scene)
}

func TestAdvance(t *testing.T) {
	cfg := config.Default().Viewer
	cfg.RotateSpeed = 90
	s := NewState(cfg, 1)

	s.Advance(1)
	assert.Equal(t, float32(90), s.Angle)
	s.Advance(3)
	assert.Equal(t, float32(0), s.Angle)

	s.Apply(ActionToggleRotation)
	s.Advance(1)
	assert.Equal(t, float32(0), s.Angle)
}

func TestTitle(t *testing.T) {
	s := NewState(config.Default().Viewer, 2)
	s.Apply(ActionToggleFillLight)
	s.Apply(ActionToggleProjection)

	got := Title("objview", "cube.obj", s, 60)
	assert.Equal(t, "objview - cube.obj (1/2) - ortho, tex on, lights [1] on [2] on [3] off - 60 fps", got)
}

func TestUnboundKey(t *testing.T) {
	assert.Equal(t, ActionNone, ActionFor(input.KeyUnknown))
}
