package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// tgaReader walks TGA pixel data and writes pixels in file order.
type tgaReader struct {
	img           *image.RGBA
	data          []byte
	width, height int
	bytesPerPixel int
	topToBottom   bool
	pixel         int
}

// DecodeTGA decodes a TGA image. Uncompressed (type 2) and RLE (type 10)
// true-color images with 24 or 32 bits per pixel are supported.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("%w: TGA data too short", ErrUnsupportedFormat)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped TGA", ErrUnsupportedFormat)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("%w: TGA type %d", ErrUnsupportedFormat, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: TGA bit depth %d", ErrUnsupportedFormat, bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	r := &tgaReader{
		img:           image.NewRGBA(image.Rect(0, 0, width, height)),
		data:          data[offset:],
		width:         width,
		height:        height,
		bytesPerPixel: bpp / 8,
		// Bit 5 of the descriptor marks top-to-bottom row order.
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		if len(r.data) < width*height*r.bytesPerPixel {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		r.readRaw(width*height, 0)
	} else {
		r.readRLE()
	}
	if r.pixel < width*height {
		return nil, fmt.Errorf("TGA pixel data truncated: %d of %d pixels", r.pixel, width*height)
	}
	return r.img, nil
}

// colorAt reads one BGR(A) pixel at byte offset i.
func (r *tgaReader) colorAt(i int) color.RGBA {
	c := color.RGBA{R: r.data[i+2], G: r.data[i+1], B: r.data[i], A: 255}
	if r.bytesPerPixel == 4 {
		c.A = r.data[i+3]
	}
	return c
}

// put writes c at the next pixel position.
func (r *tgaReader) put(c color.RGBA) {
	x := r.pixel % r.width
	y := r.pixel / r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.pixel++
}

// readRaw copies count literal pixels starting at byte offset pos and
// returns the offset after them.
func (r *tgaReader) readRaw(count, pos int) int {
	total := r.width * r.height
	for i := 0; i < count && r.pixel < total; i++ {
		if pos+r.bytesPerPixel > len(r.data) {
			return len(r.data)
		}
		r.put(r.colorAt(pos))
		pos += r.bytesPerPixel
	}
	return pos
}

// readRLE expands run-length packets until the image is full or data runs out.
func (r *tgaReader) readRLE() {
	total := r.width * r.height
	pos := 0
	for r.pixel < total && pos < len(r.data) {
		packet := r.data[pos]
		pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 == 0 {
			pos = r.readRaw(count, pos)
			continue
		}

		if pos+r.bytesPerPixel > len(r.data) {
			return
		}
		c := r.colorAt(pos)
		pos += r.bytesPerPixel
		for i := 0; i < count && r.pixel < total; i++ {
			r.put(c)
		}
	}
}
