package texture

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/logger"
)

// Loader reads, decodes and uploads textures, caching results by path.
type Loader struct {
	up    Uploader
	cache *cache
}

// NewLoader creates a loader that hands decoded images to up.
func NewLoader(up Uploader) *Loader {
	return &Loader{
		up:    up,
		cache: newCache(),
	}
}

// Load returns the texture for path. Repeated calls for the same file return
// the same *Texture, or the same error if the first attempt failed.
func (l *Loader) Load(path string) (*Texture, error) {
	key := filepath.Clean(path)
	if e, ok := l.cache.get(key); ok {
		return e.tex, e.err
	}

	tex, err := l.load(key)
	l.cache.set(key, tex, err)
	return tex, err
}

func (l *Loader) load(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}

	img, err := Decode(data, path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	rgba := ToRGBA(img)
	id, err := l.up.Upload(rgba)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", filepath.Base(path), err)
	}

	tex := &Texture{
		ID:     id,
		Path:   path,
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
	}
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height),
		zap.Uint32("id", id),
	)
	return tex, nil
}

// Textures returns every texture this loader has uploaded.
func (l *Loader) Textures() []*Texture {
	return l.cache.textures()
}

// Release forgets every cached texture. The caller owns deleting the backend
// handles returned by Textures beforehand.
func (l *Loader) Release() {
	l.cache.clear()
}

// Stats returns cache hit and miss counts.
func (l *Loader) Stats() (hits, misses int) {
	return l.cache.stats()
}
