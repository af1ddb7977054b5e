// Package texture loads texture images from disk, decodes them into RGBA and
// hands them to an uploader that returns a bindable handle.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strings"

	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
)

// ErrUnsupportedFormat reports an image the decoders cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Decode decodes image data, choosing the TGA decoder by file extension and
// the registered image decoders otherwise.
func Decode(data []byte, path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return DecodeTGA(data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
		}
		return nil, err
	}
	return img, nil
}

// ToRGBA converts any image into a tightly packed *image.RGBA with its origin
// at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
