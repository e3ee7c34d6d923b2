package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the run after N ticks (0 = run until canceled or ErrQuit).
	Ticks uint64
	// Held lists keys reported as held on every tick.
	Held []KeyCode
}

// RunHeadless runs the app on a ticker without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(os.Stdout, newScriptedKeyboard(cfg.Held))
	return runTicks(ctx, h, newApp, d, cfg.Ticks)
}

func runTicks(ctx context.Context, h *hostHAL, newApp func(HAL) (func() error, error), d time.Duration, limit uint64) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.kbd.poll()
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if limit > 0 && tick >= limit {
				return nil
			}
		}
	}
}

type scriptedKeyboard struct {
	held map[KeyCode]bool
}

func newScriptedKeyboard(held []KeyCode) *scriptedKeyboard {
	k := &scriptedKeyboard{held: make(map[KeyCode]bool, len(held))}
	for _, c := range held {
		k.held[c] = true
	}
	return k
}

func (k *scriptedKeyboard) IsKeyDown(code KeyCode) bool { return k.held[code] }
func (k *scriptedKeyboard) JustPressed(KeyCode) bool    { return false }
func (k *scriptedKeyboard) poll()                       {}
