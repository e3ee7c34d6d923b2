package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"teddy/app"
	"teddy/hal"
)

func main() {
	var (
		hcfg hal.HeadlessConfig
		wcfg hal.WindowConfig
		acfg app.Config
		step float64
		spin bool
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&spin, "spin", false, "Hold Left in headless mode so the camera keeps orbiting.")
	flag.IntVar(&acfg.Width, "width", 800, "Framebuffer width.")
	flag.IntVar(&acfg.Height, "height", 600, "Framebuffer height.")
	flag.IntVar(&wcfg.Scale, "scale", 1, "Window scale factor.")
	flag.Float64Var(&step, "orbit-step", float64(app.DefaultOrbitStep), "Orbit angle per tick while an arrow key is held (radians).")
	flag.BoolVar(&acfg.HUD, "hud", false, "Show the camera HUD (F1 toggles).")
	flag.Parse()

	acfg.OrbitStep = float32(step)
	if err := checkConfig(acfg); err != nil {
		fatalf("%v", err)
	}
	wcfg.Width = acfg.Width
	wcfg.Height = acfg.Height
	wcfg.Title = "teddy"
	if spin {
		hcfg.Held = append(hcfg.Held, hal.KeyLeft)
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, acfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(wcfg, newApp); err != nil {
		fatalf("%v", err)
	}
}

// checkConfig rejects flag values that app.Config would otherwise replace
// with defaults.
func checkConfig(c app.Config) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size: %dx%d", c.Width, c.Height)
	}
	if c.OrbitStep <= 0 {
		return fmt.Errorf("invalid orbit-step: %v (must be > 0)", c.OrbitStep)
	}
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
