//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"vgacube/app"
	"vgacube/hal"
)

func main() {
	var (
		cfg    hal.HeadlessConfig
		appCfg app.Config
		scale  int
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.ANSI, "ansi", false, "Draw frames to stdout with ANSI escapes in headless mode.")
	flag.IntVar(&scale, "scale", 2, "Window zoom factor.")
	flag.Uint64Var(&appCfg.LogEvery, "log-every", 0, "Log a status line every N frames (0 = off).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{Scale: scale, TPS: cfg.Hz}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
