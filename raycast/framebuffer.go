package raycast

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrInvalidDimensions = errors.New("invalid framebuffer dimensions")
	ErrIndexOutOfBounds  = errors.New("framebuffer index out of bounds")
)

// Framebuffer is a row-major buffer of 0xRRGGBB pixels with a current draw color.
type Framebuffer struct {
	Width  int
	Height int
	Buffer []uint32

	current uint32
}

// NewFramebuffer allocates a black width×height buffer.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Buffer: make([]uint32, width*height),
	}, nil
}

// SetCurrentColor sets the color written by Point.
func (f *Framebuffer) SetCurrentColor(c uint32) { f.current = c }

// Point writes the current color at (x, y).
func (f *Framebuffer) Point(x, y int) error {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfBounds, x, y, f.Width, f.Height)
	}
	f.Buffer[y*f.Width+x] = f.current
	return nil
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Buffer[y*f.Width+x]
}

func (f *Framebuffer) Clear(c uint32) {
	for i := range f.Buffer {
		f.Buffer[i] = c
	}
}

// Image copies the buffer into an opaque RGBA image.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, p := range f.Buffer {
		img.SetRGBA(i%f.Width, i/f.Width, FromHex(p).RGBA())
	}
	return img
}
