package raycast

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want uint32
	}{
		{RGB(0, 0, 0), 0x000000},
		{RGB(255, 255, 255), 0xFFFFFF},
		{RGB(139, 69, 19), 0x8B4513},
		{Background, 0x78B482},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Fatalf("%v.Hex() = %#06x, want %#06x", tt.c, got, tt.want)
		}
		if got := FromHex(tt.want); got != tt.c {
			t.Fatalf("FromHex(%#06x) = %v, want %v", tt.want, got, tt.c)
		}
	}
}

func TestFromHexIgnoresHighBits(t *testing.T) {
	if got, want := FromHex(0xFF123456), RGB(0x12, 0x34, 0x56); got != want {
		t.Fatalf("FromHex() = %v, want %v", got, want)
	}
}
