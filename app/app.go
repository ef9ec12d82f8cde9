package app

import (
	"errors"
	"fmt"

	"vgacube/cubeos/tasks/spincube"
	"vgacube/hal"
	"vgacube/internal/buildinfo"
)

// ErrHalted is returned by the step function once a fatal error stopped the
// render loop. No further frames are drawn after it.
var ErrHalted = errors.New("halted")

type Config struct {
	// LogEvery writes a status line every LogEvery frames; 0 disables it.
	LogEvery uint64
}

type system struct {
	h      hal.HAL
	task   *spincube.Task
	halted error
}

// New initializes the renderer with default config and returns its step
// function. Each call draws one frame.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newSystem(h, cfg).step
}

// Run starts the render loop and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{h: h}

	var tm hal.TextMode
	if d := h.Display(); d != nil {
		tm = d.TextMode()
	}
	if tm == nil {
		s.halted = fmt.Errorf("%w: no text display", ErrHalted)
		s.logf("vgacube: %v", s.halted)
		return s
	}

	s.task = spincube.New(tm, h.Logger(), spincube.Config{LogEvery: cfg.LogEvery})
	s.logf("vgacube %s: %dx%d cells, 2x2 supersampling", buildinfo.Short(), tm.Cols(), tm.Rows())
	return s
}

func (s *system) step() (err error) {
	if s.halted != nil {
		return s.halted
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		showPanic(s.h, panicInfo{Value: r, Stack: captureStack()})
		s.halted = fmt.Errorf("%w: %v", ErrHalted, r)
		err = s.halted
	}()

	if err := s.task.Step(); err != nil {
		s.halted = fmt.Errorf("%w: %w", ErrHalted, err)
		s.logf("vgacube: %v", err)
		return s.halted
	}
	return nil
}

func (s *system) logf(format string, args ...any) {
	if l := s.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
