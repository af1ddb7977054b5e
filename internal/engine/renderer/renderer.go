// Package renderer provides the fixed-function OpenGL 2.1 renderer that
// draws models, lights and helpers.
package renderer

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
}

// Renderer owns the GL state of the viewer.
type Renderer struct {
	config   Config
	backend  *Backend
	textures map[uint32]struct{}
	log      *zap.Logger
}

// New creates a new renderer.
// Must be called after the OpenGL context is created and made current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config:   cfg,
		backend:  &Backend{},
		textures: make(map[uint32]struct{}),
		log:      logger.Named("renderer"),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ShadeModel(gl.SMOOTH)
	gl.Enable(gl.NORMALIZE)
	gl.Hint(gl.PERSPECTIVE_CORRECTION_HINT, gl.NICEST)

	// Textures modulate the lit color; specular is added after texturing so
	// highlights stay white on dark textures.
	gl.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.MODULATE)
	gl.LightModeli(gl.LIGHT_MODEL_COLOR_CONTROL, gl.SEPARATE_SPECULAR_COLOR)
	noAmbient := [4]float32{0, 0, 0, 1}
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &noAmbient[0])

	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Backend returns the model.Backend that draws with this renderer's context.
func (r *Renderer) Backend() *Backend {
	return r.backend
}

// Close releases every texture uploaded through this renderer.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("textures", len(r.textures)))
	for id := range r.textures {
		r.DeleteTexture(id)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	width, height := r.Size()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// BeginFrame clears the framebuffer and loads the camera matrices. The
// modelview matrix is left at the view transform, so lights and helpers are
// placed in world space.
func (r *Renderer) BeginFrame(proj, view math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(proj.Ptr())
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(view.Ptr())
}

// ApplyLights enables lighting and configures one GL light per entry.
// Disabled lights and slots past the rig are switched off.
func (r *Renderer) ApplyLights(lights []lighting.Light) {
	gl.Enable(gl.LIGHTING)
	for i := 0; i < lighting.MaxLights; i++ {
		slot := uint32(gl.LIGHT0 + i)
		if i >= len(lights) || !lights[i].Enabled {
			gl.Disable(slot)
			continue
		}
		l := lights[i]
		ambient, diffuse, specular := l.Components()
		pos := l.HomogeneousPosition()
		gl.Lightfv(slot, gl.AMBIENT, &ambient[0])
		gl.Lightfv(slot, gl.DIFFUSE, &diffuse[0])
		gl.Lightfv(slot, gl.SPECULAR, &specular[0])
		gl.Lightfv(slot, gl.POSITION, &pos[0])
		gl.Enable(slot)
	}
}

// DrawAxes draws the X, Y and Z axes in red, green and blue with the given
// length. Lighting is suspended while drawing.
func (r *Renderer) DrawAxes(length float32) {
	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.LINE_BIT)
	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.TEXTURE_2D)
	gl.LineWidth(2)

	gl.Begin(gl.LINES)
	for _, a := range axes(length) {
		gl.Color3f(a.color[0], a.color[1], a.color[2])
		gl.Vertex3f(0, 0, 0)
		gl.Vertex3f(a.end.X, a.end.Y, a.end.Z)
	}
	gl.End()

	gl.PopAttrib()
}

// DrawLines draws unlit line segments between consecutive point pairs.
func (r *Renderer) DrawLines(points []math.Vec3, color [3]float32) {
	if len(points) < 2 {
		return
	}
	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT)
	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.TEXTURE_2D)

	gl.Color3f(color[0], color[1], color[2])
	gl.Begin(gl.LINES)
	for _, p := range points[:len(points)&^1] {
		gl.Vertex3f(p.X, p.Y, p.Z)
	}
	gl.End()

	gl.PopAttrib()
}

// PushTransform multiplies m onto the modelview stack until PopTransform.
func (r *Renderer) PushTransform(m math.Mat4) {
	gl.PushMatrix()
	gl.MultMatrixf(m.Ptr())
}

// PopTransform restores the modelview matrix saved by PushTransform.
func (r *Renderer) PopTransform() {
	gl.PopMatrix()
}

// EndFrame switches lighting off so the next frame starts from a known state.
func (r *Renderer) EndFrame() {
	for i := 0; i < lighting.MaxLights; i++ {
		gl.Disable(uint32(gl.LIGHT0 + i))
	}
	gl.Disable(gl.LIGHTING)
}

// Upload implements texture.Uploader: it creates a 2D texture with linear
// filtering and repeat wrapping.
func (r *Renderer) Upload(img *image.RGBA) (uint32, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("empty texture image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenTextures returned no name")
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures[id] = struct{}{}
	r.log.Debug("texture uploaded", zap.Uint32("id", id), zap.Int("width", w), zap.Int("height", h))
	return id, nil
}

// DeleteTexture frees a texture created by Upload.
func (r *Renderer) DeleteTexture(id uint32) {
	if _, ok := r.textures[id]; !ok {
		return
	}
	gl.DeleteTextures(1, &id)
	delete(r.textures, id)
}

// ReadPixels reads the current framebuffer as tightly packed RGBA rows,
// bottom row first.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.Size()
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
