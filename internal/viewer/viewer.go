// Package viewer implements the interactive model viewer: window, main loop,
// key bindings and scene switching.
package viewer

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/camera"
	"github.com/Faultbox/objview/internal/engine/debug"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/renderer"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/engine/window"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/math"
)

// Viewer is the main viewer instance.
type Viewer struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	textures *texture.Loader
	camera   *camera.OrbitCamera
	shots    *debug.ScreenshotCapture

	scenes []*Scene
	state  *State
	lights []lighting.Light // rig fitted to the current scene

	screenshotPending bool
	fps               int
}

// New creates the window and GL context, then loads every configured scene.
func New(cfg *config.Config) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("scenes", len(cfg.Scenes)),
	)

	v := &Viewer{config: cfg}

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window created.
	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		Background: cfg.Viewer.Background,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.textures = texture.NewLoader(v.renderer)
	v.scenes, err = LoadScenes(cfg.Scenes, v.textures)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.input = input.New()
	v.camera = camera.NewOrbitCamera(cfg.Viewer.FOV)
	v.shots = debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "objview")
	v.state = NewState(cfg.Viewer, len(v.scenes))
	v.enterScene()

	logger.Info("viewer initialized", zap.Int("textures", len(v.textures.Textures())))
	return v, nil
}

// Run starts the main loop and returns when the window is closed or Esc is
// pressed.
func (v *Viewer) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for !v.state.Quit {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			break
		}
		v.handleEvents(v.input.Events())

		v.state.Advance(dt)
		v.render()

		if v.screenshotPending {
			v.screenshotPending = false
			v.capture()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.fps = frameCount
			frameCount = 0
			fpsTimer = time.Now()
			v.updateTitle()
			logger.Debug("fps", zap.Int("count", v.fps), zap.Float32("dt_ms", dt*1000))
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		if v.textures != nil {
			hits, misses := v.textures.Stats()
			logger.Debug("texture cache", zap.Int("hits", hits), zap.Int("misses", misses))
			v.textures.Release()
		}
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents(events []input.Event) {
	for _, e := range events {
		switch e.Type {
		case input.EventQuit:
			v.state.Quit = true
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)
		case input.EventKeyDown:
			if !e.Repeat {
				v.handleAction(ActionFor(e.Key))
			}
		case input.EventMouseMove:
			if e.Drag {
				v.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
			}
		case input.EventMouseWheel:
			v.camera.HandleZoom(float32(e.DeltaY))
		}
	}
}

func (v *Viewer) handleAction(a Action) {
	if a == ActionNone {
		return
	}
	if v.state.Apply(a) {
		v.enterScene()
	}

	switch a {
	case ActionToggleProjection:
		v.camera.Orthographic = v.state.Orthographic
	case ActionToggleKeyLight, ActionToggleBackLight, ActionToggleFillLight:
		v.fitLights()
	case ActionResetCamera:
		v.camera.Reset()
	case ActionScreenshot:
		v.screenshotPending = true
	}

	logger.Debug("action",
		zap.Int("action", int(a)),
		zap.Bool("textures", v.state.Textures),
		zap.Bool("ortho", v.state.Orthographic),
		zap.String("lights", v.state.LightSummary()),
	)
	v.updateTitle()
}

// enterScene fits the camera and lights to the current scene.
func (v *Viewer) enterScene() {
	s := v.scenes[v.state.Scene]
	v.camera.FitToBounds(s.Bounds.Min, s.Bounds.Max)
	v.camera.Orthographic = v.state.Orthographic
	v.shots.SetPrefix(s.Name)
	v.fitLights()

	if s.Empty {
		logger.Warn("scene has no geometry", zap.String("name", s.Name))
	}
	logger.Info("showing scene", zap.String("name", s.Name), zap.Int("index", v.state.Scene))
	v.updateTitle()
}

func (v *Viewer) fitLights() {
	s := v.scenes[v.state.Scene]
	v.lights = lighting.FitToRadius(v.state.Lights, s.Bounds.Center(), s.Radius())
}

func (v *Viewer) render() {
	s := v.scenes[v.state.Scene]

	v.renderer.BeginFrame(v.camera.ProjectionMatrix(v.renderer.Aspect()), v.camera.ViewMatrix())
	v.renderer.ApplyLights(v.lights)

	if v.state.ShowAxes {
		v.renderer.DrawAxes(s.Radius())
	}

	// Spin around the vertical axis through the scene center.
	c := s.Bounds.Center()
	spin := math.Translate(c.X, c.Y, c.Z).
		Mul(math.RotateY(v.state.Angle * math32.Pi / 180)).
		Mul(math.Translate(-c.X, -c.Y, -c.Z))

	v.renderer.PushTransform(spin)
	s.Root.SetTextureEnabled(v.state.Textures)
	s.Root.Render(v.renderer.Backend())
	if v.state.ShowBounds {
		v.renderer.DrawLines(debug.BoxEdges(s.Bounds.Min, s.Bounds.Max, s.Radius()*0.01), [3]float32{1, 1, 0})
	}
	v.renderer.PopTransform()

	v.renderer.EndFrame()
}

func (v *Viewer) capture() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) updateTitle() {
	v.window.SetTitle(Title(v.config.Window.Title, v.scenes[v.state.Scene].Name, v.state, v.fps))
}

// Title formats the window title for the current state.
func Title(app, scene string, s *State, fps int) string {
	proj := "persp"
	if s.Orthographic {
		proj = "ortho"
	}
	tex := "tex on"
	if !s.Textures {
		tex = "tex off"
	}
	return fmt.Sprintf("%s - %s (%d/%d) - %s, %s, lights %s - %d fps",
		app, scene, s.Scene+1, s.SceneCount, proj, tex, s.LightSummary(), fps)
}
