package texture

import "image"

// Texture is an uploaded texture image.
type Texture struct {
	ID     uint32 // backend handle, 0 when decoded only
	Path   string
	Width  int
	Height int
}

// Uploader turns decoded pixels into a backend texture handle.
type Uploader interface {
	Upload(img *image.RGBA) (uint32, error)
}

// UploaderFunc adapts a function to the Uploader interface.
type UploaderFunc func(img *image.RGBA) (uint32, error)

// Upload calls f(img).
func (f UploaderFunc) Upload(img *image.RGBA) (uint32, error) {
	return f(img)
}

// DecodeOnly is an Uploader for headless tools. Images are decoded and
// validated but never uploaded, and every texture gets ID 0.
var DecodeOnly Uploader = UploaderFunc(func(*image.RGBA) (uint32, error) {
	return 0, nil
})
