package app

import (
	"fmt"
	"image/color"

	"teddy/internal/buildinfo"
	"teddy/raycast"

	"github.com/chewxy/math32"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	colorHUDFG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorHUDBG = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
)

const (
	hudMargin     = 2
	hudLineHeight = 7
)

// hud draws the camera angles in the top-left corner of the frame.
type hud struct {
	d    *fbDisplay
	font tinyfont.Fonter
}

func newHUD(fb *raycast.Framebuffer) *hud {
	return &hud{d: &fbDisplay{fb: fb}, font: &tinyfont.TomThumb}
}

func (h *hud) lines(cam *raycast.Camera) []string {
	return []string{
		"teddy " + buildinfo.Short(),
		fmt.Sprintf("yaw %4.0f pitch %4.0f", degrees(cam.Yaw()), degrees(cam.Pitch())),
	}
}

func (h *hud) draw(cam *raycast.Camera) {
	lines := h.lines(cam)

	var maxW uint32
	for _, s := range lines {
		_, w := tinyfont.LineWidth(h.font, s)
		if w > maxW {
			maxW = w
		}
	}
	h.d.fillRect(0, 0, int(maxW)+2*hudMargin, len(lines)*hudLineHeight+2*hudMargin, colorHUDBG)

	y := int16(hudMargin + hudLineHeight - 1)
	for _, s := range lines {
		tinyfont.WriteLine(h.d, h.font, hudMargin, y, s, colorHUDFG)
		y += hudLineHeight
	}
}

func degrees(rad float32) float32 { return rad * 180 / math32.Pi }

// fbDisplay adapts a raycast.Framebuffer to drivers.Displayer. Pixels outside
// the buffer are clipped.
type fbDisplay struct {
	fb *raycast.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width), int16(d.fb.Height)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetCurrentColor(raycast.RGB(c.R, c.G, c.B).Hex())
	_ = d.fb.Point(int(x), int(y))
}

func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) fillRect(x, y, w, h int, c color.RGBA) {
	x0 := clampInt(x, 0, d.fb.Width)
	y0 := clampInt(y, 0, d.fb.Height)
	x1 := clampInt(x+w, 0, d.fb.Width)
	y1 := clampInt(y+h, 0, d.fb.Height)

	d.fb.SetCurrentColor(raycast.RGB(c.R, c.G, c.B).Hex())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			_ = d.fb.Point(px, py)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
