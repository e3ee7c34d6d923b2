package raycast

import "image/color"

// Color is an RGB color in 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Background is returned for rays that hit nothing.
var Background = RGB(120, 180, 130)

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// FromHex unpacks a 0xRRGGBB pixel. Bits above 24 are ignored.
func FromHex(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// Hex packs the color as r<<16 | g<<8 | b.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA converts to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }
