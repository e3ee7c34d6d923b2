//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = map[KeyCode]ebiten.Key{
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyEscape: ebiten.KeyEscape,
	KeyF1:     ebiten.KeyF1,
}

type hostKeyboard struct {
	down    map[KeyCode]bool
	pressed map[KeyCode]bool
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{
		down:    make(map[KeyCode]bool, len(hostKeys)),
		pressed: make(map[KeyCode]bool, len(hostKeys)),
	}
}

func (k *hostKeyboard) IsKeyDown(code KeyCode) bool   { return k.down[code] }
func (k *hostKeyboard) JustPressed(code KeyCode) bool { return k.pressed[code] }

// poll samples ebiten's key state; call once per Update.
func (k *hostKeyboard) poll() {
	for code, key := range hostKeys {
		k.down[code] = ebiten.IsKeyPressed(key)
		k.pressed[code] = inpututil.IsKeyJustPressed(key)
	}
}
