package hal

func rgbFromPacked(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// packedToRGBA expands 0xRRGGBB pixels into opaque RGBA bytes.
func packedToRGBA(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		r, g, b := rgbFromPacked(p)
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
