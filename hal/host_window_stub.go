//go:build !tinygo && !cgo

package hal

import "fmt"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	TPS   int
}

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return fmt.Errorf("window mode requires cgo (build with CGO_ENABLED=1, or use -headless): %w", ErrNotImplemented)
}
