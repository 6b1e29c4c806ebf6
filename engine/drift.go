package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift-scene/camera"
	"github.com/lixenwraith/drift-scene/physics"
)

// DriftState is the per-tick outcome of the drift animator
type DriftState uint8

const (
	StateDrifting DriftState = iota
	StateColliding
	StateReset
)

func (s DriftState) String() string {
	switch s {
	case StateColliding:
		return "COLLIDING"
	case StateDrifting:
		return "DRIFTING"
	case StateReset:
		return "RESET"
	}
	return "UNKNOWN"
}

// Evaluate picks the state for a tick from scratch; collision wins over drift, an expired window wins over both
func Evaluate(progress float64, collided bool) DriftState {
	switch {
	case progress >= 1:
		return StateReset
	case collided:
		return StateColliding
	default:
		return StateDrifting
	}
}

// DriftConfig holds the collision tunables
type DriftConfig struct {
	Threshold float32
	Impulse   float32
}

// DriftAnimator advances the two bodies through the cycle
type DriftAnimator struct {
	cfg   DriftConfig
	cycle *Cycle
}

func NewDriftAnimator(cfg DriftConfig, cycle *Cycle) *DriftAnimator {
	return &DriftAnimator{cfg: cfg, cycle: cycle}
}

// Step is the outcome of one animator tick
type Step struct {
	State    DriftState
	Progress float64
	Collided bool
}

// Advance runs one tick against the bodies in place, projecting through cam
// Collision is only tested while the window is open
func (d *DriftAnimator) Advance(a, b *Body, cam *camera.Camera, clock float64) Step {
	progress := d.cycle.Progress(clock)
	collided := progress < 1 && physics.Intersects(a, b, d.cfg.Threshold)
	state := Evaluate(progress, collided)

	switch state {
	case StateColliding:
		sepA, sepB := physics.Separation(d.cfg.Impulse)
		a.Translate(sepA)
		b.Translate(sepB)

	case StateDrifting:
		p := float32(progress)
		va, vb := d.cycle.Drift(0), d.cycle.Drift(1)
		a.Translate(mgl32.Vec3{va.X() * p, va.Y() * p, 0})
		b.Translate(mgl32.Vec3{vb.X() * p, vb.Y() * p, 0})

	case StateReset:
		d.cycle.Reopen(clock)
	}

	// Every state leaves model and MVP current for the active camera
	a.Commit()
	b.Commit()
	a.Refresh(cam)
	b.Refresh(cam)

	return Step{State: state, Progress: progress, Collided: collided}
}

func (d *DriftAnimator) Cycle() *Cycle { return d.cycle }
