package spincube

import (
	"math"

	"vgacube/cubeos/cube"
)

// Rotation cadence. The view only moves every StepEvery frames, which keeps
// the spin speed independent of how fast frames are produced.
const (
	StepEvery = 10

	YawStep   cube.Scalar = 0.2
	PitchStep cube.Scalar = 0.1

	// PitchMax bounds the pitch to ±45°.
	PitchMax = cube.Pi / 4
)

// State is the animation state threaded through the loop.
type State struct {
	Yaw     cube.Scalar
	PitchV  cube.Scalar
	Counter int
}

// Pitch returns the bounded pitch angle for the current phase.
func (s State) Pitch() cube.Scalar {
	return PitchMax * cube.Scalar(math.Sin(float64(s.PitchV)))
}

// Advance counts one frame and returns the next state. Every StepEvery-th call
// steps yaw and pitch phase and resets the counter.
func (s State) Advance() State {
	s.Counter++
	if s.Counter == StepEvery {
		s.Yaw += YawStep
		s.PitchV += PitchStep
		s.Counter = 0
	}
	return s
}
