package app

import (
	"errors"
	"fmt"

	"teddy/hal"
	"teddy/internal/buildinfo"
	"teddy/raycast"
	"teddy/scene"

	"github.com/chewxy/math32"
)

// DefaultOrbitStep is the orbit angle applied per tick while an arrow key is held.
const DefaultOrbitStep = math32.Pi / 10

type Config struct {
	Width  int
	Height int
	// OrbitStep is radians per tick. The orbit speed therefore follows the
	// tick rate of the runner, not wall-clock time. Zero or negative selects
	// DefaultOrbitStep; main rejects such flag values up front.
	OrbitStep float32
	HUD       bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.OrbitStep <= 0 {
		c.OrbitStep = DefaultOrbitStep
	}
	return c
}

type session struct {
	log  hal.Logger
	disp hal.Display
	kbd  hal.Keyboard

	cfg     Config
	fb      *raycast.Framebuffer
	objects []raycast.Object
	cam     *raycast.Camera
	hud     *hud

	frame uint64
}

// New builds the bear scene and returns the per-tick step function.
// The step returns hal.ErrQuit when Escape is held.
func New(h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSession(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

func newSession(h hal.HAL, cfg Config) (*session, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	cfg = cfg.withDefaults()

	disp := h.Display()
	if disp == nil {
		return nil, fmt.Errorf("app: %w: no display", hal.ErrDisplayInit)
	}
	fb, err := raycast.NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	s := &session{
		log:     h.Logger(),
		disp:    disp,
		cfg:     cfg,
		fb:      fb,
		objects: scene.Bear(),
		cam:     scene.DefaultCamera(),
		hud:     newHUD(fb),
	}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
	}

	hal.Logf(s.log, "teddy %s: %dx%d, %d objects, orbit step %.3f rad", buildinfo.Long(), cfg.Width, cfg.Height, len(s.objects), cfg.OrbitStep)
	return s, nil
}

func (s *session) step() error {
	if s.keyDown(hal.KeyEscape) {
		hal.Logf(s.log, "teddy: escape after %d frames", s.frame)
		return hal.ErrQuit
	}
	if s.kbd != nil && s.kbd.JustPressed(hal.KeyF1) {
		s.cfg.HUD = !s.cfg.HUD
	}
	s.applyOrbit()

	if err := s.renderFrame(); err != nil {
		return err
	}
	if err := s.disp.Present(s.fb.Buffer, s.fb.Width, s.fb.Height); err != nil {
		// Dropped frames are not retried; the next tick redraws everything.
		hal.Logf(s.log, "teddy: frame %d skipped: %v", s.frame, err)
	}
	s.frame++
	return nil
}

func (s *session) keyDown(code hal.KeyCode) bool {
	return s.kbd != nil && s.kbd.IsKeyDown(code)
}

func (s *session) applyOrbit() {
	step := s.cfg.OrbitStep
	if s.keyDown(hal.KeyLeft) {
		s.cam.Orbit(step, 0)
	}
	if s.keyDown(hal.KeyRight) {
		s.cam.Orbit(-step, 0)
	}
	if s.keyDown(hal.KeyUp) {
		s.cam.Orbit(0, -step)
	}
	if s.keyDown(hal.KeyDown) {
		s.cam.Orbit(0, step)
	}
}

func (s *session) renderFrame() (err error) {
	defer recoverFrame(s.log, s.frame, &err)

	raycast.Render(s.fb, s.objects, s.cam)
	if s.cfg.HUD {
		s.hud.draw(s.cam)
	}
	return nil
}
