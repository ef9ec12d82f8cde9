package spincube

import (
	"fmt"

	"vgacube/cubeos/cube"
	"vgacube/hal"
)

// Config tunes the task's ambient behavior. The rendering itself is fixed.
type Config struct {
	// LogEvery writes a status line every LogEvery frames; 0 disables it.
	LogEvery uint64
}

// Task renders the spinning cube, one frame per Step.
type Task struct {
	out hal.TextMode
	log hal.Logger
	cfg Config

	r  *cube.Renderer
	st State

	frames uint64
}

func New(out hal.TextMode, log hal.Logger, cfg Config) *Task {
	return &Task{
		out: out,
		log: log,
		cfg: cfg,
		r:   cube.NewRenderer(out.Cols(), out.Rows()),
	}
}

// State returns the animation state the next frame will be drawn with.
func (t *Task) State() State { return t.st }

// Frames returns the number of frames presented so far.
func (t *Task) Frames() uint64 { return t.frames }

// Step draws one frame, presents it, and advances the animation.
func (t *Task) Step() error {
	t.r.Render(t.st.Yaw, t.st.Pitch(), t.out)
	if err := t.out.Present(); err != nil {
		return fmt.Errorf("spincube: present frame %d: %w", t.frames, err)
	}
	t.frames++

	if t.log != nil && t.cfg.LogEvery > 0 && t.frames%t.cfg.LogEvery == 0 {
		t.log.WriteLineString(fmt.Sprintf("spincube: frame=%d yaw=%.2f pitch=%.3f", t.frames, t.st.Yaw, t.st.Pitch()))
	}

	t.st = t.st.Advance()
	return nil
}
