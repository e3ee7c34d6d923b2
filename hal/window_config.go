package hal

import "fmt"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	// Width and Height are the logical frame size; the window is Scale times larger.
	Width  int
	Height int
	Scale  int
	TPS    int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "teddy"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

// windowResult maps how the window loop ended to RunWindow's return value.
// A plain window close is logged here; ErrQuit exits are logged by the app.
func windowResult(h *hostHAL, quit bool, stepErr, runErr error) error {
	switch {
	case stepErr != nil:
		return stepErr
	case runErr != nil:
		return fmt.Errorf("%w: %v", ErrDisplayInit, runErr)
	case !quit:
		Logf(h.logger, "teddy: window closed after %d frames", h.display.Frames())
	}
	return nil
}
