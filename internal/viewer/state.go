package viewer

import (
	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/internal/engine/lighting"
)

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextScene
	ActionToggleTextures
	ActionToggleProjection
	ActionToggleRotation
	ActionToggleKeyLight
	ActionToggleBackLight
	ActionToggleFillLight
	ActionToggleAxes
	ActionToggleBounds
	ActionScreenshot
	ActionResetCamera
)

var keyBindings = map[input.Key]Action{
	input.KeyEscape: ActionQuit,
	input.KeySpace:  ActionNextScene,
	input.KeyT:      ActionToggleTextures,
	input.KeyP:      ActionToggleProjection,
	input.KeyM:      ActionToggleRotation,
	input.Key1:      ActionToggleKeyLight,
	input.Key2:      ActionToggleBackLight,
	input.Key3:      ActionToggleFillLight,
	input.KeyX:      ActionToggleAxes,
	input.KeyB:      ActionToggleBounds,
	input.KeyF12:    ActionScreenshot,
	input.KeyR:      ActionResetCamera,
}

// ActionFor returns the action bound to key.
func ActionFor(key input.Key) Action {
	return keyBindings[key]
}

// State is the toggleable viewer state, independent of any GL resources.
type State struct {
	Scene        int
	SceneCount   int
	Textures     bool
	Orthographic bool
	Rotating     bool
	ShowAxes     bool
	ShowBounds   bool
	Lights       []lighting.Light

	// Angle is the current model rotation around Y, in degrees.
	Angle float32
	// RotateSpeed is in degrees per second.
	RotateSpeed float32

	Quit bool
}

// NewState builds the initial state from the viewer configuration.
func NewState(cfg config.ViewerConfig, sceneCount int) *State {
	lights := lighting.ThreePoint()
	lights[0].Enabled = cfg.Lights.Key
	lights[1].Enabled = cfg.Lights.Back
	lights[2].Enabled = cfg.Lights.Fill

	return &State{
		SceneCount:   sceneCount,
		Textures:     cfg.Textures,
		Orthographic: cfg.Orthographic,
		Rotating:     cfg.AutoRotate,
		ShowAxes:     cfg.ShowAxes,
		Lights:       lights,
		RotateSpeed:  cfg.RotateSpeed,
	}
}

// Apply updates the state for a. It reports whether the scene changed.
// Screenshot and camera reset are side effects handled by the caller.
func (s *State) Apply(a Action) (sceneChanged bool) {
	switch a {
	case ActionQuit:
		s.Quit = true
	case ActionNextScene:
		if s.SceneCount > 1 {
			s.Scene = (s.Scene + 1) % s.SceneCount
			return true
		}
	case ActionToggleTextures:
		s.Textures = !s.Textures
	case ActionToggleProjection:
		s.Orthographic = !s.Orthographic
	case ActionToggleRotation:
		s.Rotating = !s.Rotating
	case ActionToggleKeyLight:
		lighting.Toggle(s.Lights, 0)
	case ActionToggleBackLight:
		lighting.Toggle(s.Lights, 1)
	case ActionToggleFillLight:
		lighting.Toggle(s.Lights, 2)
	case ActionToggleAxes:
		s.ShowAxes = !s.ShowAxes
	case ActionToggleBounds:
		s.ShowBounds = !s.ShowBounds
	}
	return false
}

// Advance moves the rotation forward by dt seconds when rotating.
func (s *State) Advance(dt float32) {
	if !s.Rotating {
		return
	}
	s.Angle += s.RotateSpeed * dt
	for s.Angle >= 360 {
		s.Angle -= 360
	}
}

// LightSummary returns "on"/"off" flags for the title bar, e.g. "[1] on [2] off [3] on".
func (s *State) LightSummary() string {
	out := ""
	for i, l := range s.Lights {
		if i > 0 {
			out += " "
		}
		state := "off"
		if l.Enabled {
			state = "on"
		}
		out += "[" + string(rune('1'+i)) + "] " + state
	}
	return out
}
