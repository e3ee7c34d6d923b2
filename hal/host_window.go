//go:build cgo

package hal

import (
	"errors"
	"image"

	"teddy/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that shows every presented frame and feeds
// keyboard state to the app. It blocks until the window closes or the app
// returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	cfg = cfg.withDefaults()

	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, cfg: cfg}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	err = ebiten.RunGame(g)
	return windowResult(h, g.quit, g.stepErr, err)
}

type hostGame struct {
	h   *hostHAL
	cfg WindowConfig

	img   *image.RGBA
	fbImg *ebiten.Image

	step    func() error
	stepErr error
	quit    bool
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			g.quit = true
			return ebiten.Termination
		}
		g.stepErr = err
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.h.display.size()
	if w <= 0 || h <= 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	if !g.h.display.snapshotRGBA(g.img.Pix) {
		return
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
