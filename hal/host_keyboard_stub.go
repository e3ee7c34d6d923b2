//go:build !cgo

package hal

type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

func (k *hostKeyboard) IsKeyDown(KeyCode) bool   { return false }
func (k *hostKeyboard) JustPressed(KeyCode) bool { return false }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
