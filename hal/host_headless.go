//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// ANSI draws every presented frame to Out as an ANSI terminal frame.
	ANSI bool

	// Out receives log lines and ANSI frames. Defaults to os.Stdout.
	Out io.Writer
}

// RunHeadless runs the app without opening a window, stepping it Hz times per
// second until ctx is done, the step fails, or Ticks steps have run.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	var ansi io.Writer
	if cfg.ANSI {
		ansi = cfg.Out
		fmt.Fprint(cfg.Out, "\x1b[2J")
	}
	h := newHostHAL(cfg.Out, ansi)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return fmt.Errorf("headless tick %d: %w", tick, err)
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
