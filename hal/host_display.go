package hal

import (
	"fmt"
	"sync"
)

// hostDisplay keeps the last presented frame for the window to draw.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []uint32
	frames uint64
}

func (d *hostDisplay) Present(pixels []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return fmt.Errorf("present: %d pixels for %dx%d", len(pixels), width, height)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.width != width || d.height != height {
		d.width = width
		d.height = height
		d.pix = make([]uint32, len(pixels))
	}
	copy(d.pix, pixels)
	d.frames++
	return nil
}

func (d *hostDisplay) size() (w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

// Frames returns how many frames have been presented.
func (d *hostDisplay) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// snapshotRGBA converts the last frame into dst (4 bytes per pixel).
// It reports false if nothing has been presented or dst is too small.
func (d *hostDisplay) snapshotRGBA(dst []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pix == nil || len(dst) < len(d.pix)*4 {
		return false
	}
	packedToRGBA(dst, d.pix)
	return true
}
