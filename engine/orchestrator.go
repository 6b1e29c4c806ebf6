package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/drift-scene/input"
)

// BodyFrame is the per-body snapshot handed to the renderer
type BodyFrame struct {
	Translation mgl32.Vec3
	Model       mgl32.Mat4
	View        mgl32.Mat4
	MVP         mgl32.Mat4
}

// Publication is everything the presentation side needs for one frame
type Publication struct {
	Tick     uint64
	Camera   int
	Cameras  int
	Progress float64
	State    DriftState
	Resets   uint64
	FrameMs  float64
	Bodies   [2]BodyFrame
}

// Renderer consumes one publication per tick
type Renderer interface {
	Publish(Publication)
}

// Observer is notified after every tick, before publication
type Observer interface {
	ObserveTick(TickResult)
}

// FrameStats averages frame cost over a fixed wall-clock interval
type FrameStats struct {
	interval   time.Duration
	windowFrom time.Time
	frames     int
	lastMs     float64
}

func NewFrameStats(interval time.Duration, now time.Time) *FrameStats {
	return &FrameStats{interval: interval, windowFrom: now}
}

// Record counts one frame and reports whether the interval closed, with the average ms/frame over it
func (s *FrameStats) Record(now time.Time) (float64, bool) {
	s.frames++
	elapsed := now.Sub(s.windowFrom)
	if elapsed < s.interval {
		return s.lastMs, false
	}
	s.lastMs = float64(elapsed.Microseconds()) / 1000.0 / float64(s.frames)
	s.frames = 0
	s.windowFrom = now
	return s.lastMs, true
}

func (s *FrameStats) LastMs() float64 { return s.lastMs }

// Orchestrator runs the per-frame pipeline: tick, notify observers, publish
type Orchestrator struct {
	sim       *Simulation
	clock     *SimClock
	renderer  Renderer
	observers []Observer
	stats     *FrameStats
	logger    zerolog.Logger
}

// NewOrchestrator wires a simulation to its clock and outputs; renderer may be nil for headless runs
func NewOrchestrator(sim *Simulation, clock *SimClock, renderer Renderer, statsInterval time.Duration, logger zerolog.Logger, observers ...Observer) *Orchestrator {
	return &Orchestrator{
		sim:       sim,
		clock:     clock,
		renderer:  renderer,
		observers: observers,
		stats:     NewFrameStats(statsInterval, clock.Now()),
		logger:    logger,
	}
}

// Frame runs exactly one tick with the commands collected since the previous frame
func (o *Orchestrator) Frame(in input.Frame) TickResult {
	res := Tick(o.sim, in, o.clock.Seconds())

	for _, err := range res.Rejected {
		o.logger.Warn().Err(err).Uint64("tick", res.Tick).Int("camera", res.ActiveCamera).Msg("camera command rejected")
	}
	if res.CameraSwitched {
		o.logger.Debug().Int("camera", res.ActiveCamera).Msg("active camera switched")
	}
	switch res.State {
	case StateColliding:
		o.logger.Debug().Uint64("tick", res.Tick).Float64("progress", res.Progress).Msg("bodies collided")
	case StateReset:
		o.logger.Info().
			Uint64("tick", res.Tick).
			Float64("window_start", o.sim.Cycle().WindowStart()).
			Msg("drift window reopened")
	}

	if ms, closed := o.stats.Record(o.clock.Now()); closed {
		o.logger.Debug().Float64("ms_per_frame", ms).Uint64("tick", res.Tick).Msg("frame stats")
	}

	for _, obs := range o.observers {
		obs.ObserveTick(res)
	}

	if o.renderer != nil {
		o.renderer.Publish(o.publication(res))
	}
	return res
}

func (o *Orchestrator) publication(res TickResult) Publication {
	p := Publication{
		Tick:     res.Tick,
		Camera:   res.ActiveCamera,
		Cameras:  o.sim.Rig.Len(),
		Progress: res.Progress,
		State:    res.State,
		Resets:   o.sim.Cycle().Resets(),
		FrameMs:  o.stats.LastMs(),
	}
	for i, b := range o.sim.Bodies {
		p.Bodies[i] = BodyFrame{
			Translation: b.Translation(),
			Model:       b.ModelMatrix(),
			View:        b.ViewMatrix(),
			MVP:         b.MVP(),
		}
	}
	return p
}

func (o *Orchestrator) Simulation() *Simulation { return o.sim }
