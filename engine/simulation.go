package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift-scene/camera"
	"github.com/lixenwraith/drift-scene/input"
	"github.com/lixenwraith/drift-scene/vmath"
)

// SimulationConfig collects everything needed to build the scene state
type SimulationConfig struct {
	Presets    []camera.Preset
	Projection camera.Projection

	CameraSpeed float32
	TiltStep    float32

	// InitialOffset places the bodies' accumulated translations at -x and +x
	InitialOffset float32

	Drift DriftConfig
	Cycle CycleConfig

	Seed uint64
}

// Simulation is the whole mutable scene state, owned by the frame loop
// Not safe for concurrent use
type Simulation struct {
	Rig      *camera.Rig
	Bodies   [2]*Body
	Animator *DriftAnimator

	cameraSpeed float32
	tiltStep    float32

	clock float64
	ticks uint64
}

// NewSimulation builds the rig, both bodies and the first animation window at clock 0
func NewSimulation(cfg SimulationConfig) (*Simulation, error) {
	rig, err := camera.NewRig(cfg.Presets, cfg.Projection)
	if err != nil {
		return nil, fmt.Errorf("camera rig: %w", err)
	}

	cycle := NewCycle(cfg.Cycle, 0, vmath.NewFastRand(cfg.Seed))

	s := &Simulation{
		Rig: rig,
		Bodies: [2]*Body{
			NewBody(mgl32.Vec3{-cfg.InitialOffset, 0, 0}),
			NewBody(mgl32.Vec3{cfg.InitialOffset, 0, 0}),
		},
		Animator:    NewDriftAnimator(cfg.Drift, cycle),
		cameraSpeed: cfg.CameraSpeed,
		tiltStep:    cfg.TiltStep,
	}
	return s, nil
}

// TickResult reports what one tick did
type TickResult struct {
	Tick uint64
	Step

	Clock          float64
	ActiveCamera   int
	CameraSwitched bool

	// Rejected holds camera commands refused this tick; the tick itself always completes
	Rejected []error
}

// Tick advances the scene by one frame
// Camera commands apply first (move/strafe, then selection, then tilt on the newly active slot),
// then the drift animator runs against the active camera
func Tick(s *Simulation, in input.Frame, clockNow float64) TickResult {
	s.ticks++
	s.clock = clockNow
	res := TickResult{Tick: s.ticks, Clock: clockNow}

	cam := s.Rig.Active()
	if in.MoveForward {
		cam.Move(s.cameraSpeed)
	}
	if in.MoveBack {
		cam.Move(-s.cameraSpeed)
	}
	if in.StrafeRight {
		cam.Strafe(s.cameraSpeed)
	}
	if in.StrafeLeft {
		cam.Strafe(-s.cameraSpeed)
	}

	if in.SelectCamera > 0 {
		prev := s.Rig.ActiveIndex()
		if err := s.Rig.SetActive(in.SelectCamera - 1); err != nil {
			res.Rejected = append(res.Rejected, err)
		} else {
			res.CameraSwitched = prev != s.Rig.ActiveIndex()
		}
		cam = s.Rig.Active()
	}

	if in.TiltUp {
		if err := cam.Tilt(mgl32.Vec3{0, s.tiltStep, 0}); err != nil {
			res.Rejected = append(res.Rejected, err)
		}
	}
	if in.TiltDown {
		if err := cam.Tilt(mgl32.Vec3{0, -s.tiltStep, 0}); err != nil {
			res.Rejected = append(res.Rejected, err)
		}
	}

	res.Step = s.Animator.Advance(s.Bodies[0], s.Bodies[1], cam, clockNow)
	res.ActiveCamera = s.Rig.ActiveIndex()
	return res
}

func (s *Simulation) Clock() float64 { return s.clock }
func (s *Simulation) Ticks() uint64  { return s.ticks }
func (s *Simulation) Cycle() *Cycle  { return s.Animator.Cycle() }
