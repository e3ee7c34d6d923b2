package hal

import "errors"

var (
	// ErrDisplayInit reports that the window or display surface could not be created.
	ErrDisplayInit = errors.New("display init failed")

	// ErrQuit is returned by an app step to end the run loop cleanly.
	ErrQuit = errors.New("quit")
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Display accepts whole frames of packed 0xRRGGBB pixels.
type Display interface {
	Present(pixels []uint32, width, height int) error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyF1
)

// Keyboard reports the key state sampled at the start of the current tick.
type Keyboard interface {
	// IsKeyDown reports whether the key is held.
	IsKeyDown(code KeyCode) bool
	// JustPressed reports whether the key went down during this tick.
	JustPressed(code KeyCode) bool
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
