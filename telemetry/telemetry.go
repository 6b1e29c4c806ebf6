package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/drift-scene/engine"
)

const instrumentationName = "github.com/lixenwraith/drift-scene/telemetry"

// Meter returns the global meter; a no-op unless a provider was installed
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Summary is a point-in-time copy of the local tallies
type Summary struct {
	Ticks          uint64
	Collisions     uint64
	Resets         uint64
	CameraSwitches uint64
	Rejected       uint64
}

// Recorder counts scene events as OTel instruments and local tallies
// Implements engine.Observer
type Recorder struct {
	ticks      metric.Int64Counter
	collisions metric.Int64Counter
	resets     metric.Int64Counter
	switches   metric.Int64Counter
	rejected   metric.Int64Counter
	progress   metric.Float64Gauge

	summary struct {
		ticks, collisions, resets, switches, rejected atomic.Uint64
	}
}

// New creates every instrument on m
func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	if r.ticks, err = m.Int64Counter("scene.ticks",
		metric.WithDescription("Simulation ticks run")); err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	if r.collisions, err = m.Int64Counter("scene.collisions",
		metric.WithDescription("Ticks resolved as colliding")); err != nil {
		return nil, fmt.Errorf("creating collisions counter: %w", err)
	}
	if r.resets, err = m.Int64Counter("scene.resets",
		metric.WithDescription("Drift windows reopened")); err != nil {
		return nil, fmt.Errorf("creating resets counter: %w", err)
	}
	if r.switches, err = m.Int64Counter("camera.switches",
		metric.WithDescription("Active camera changes")); err != nil {
		return nil, fmt.Errorf("creating switches counter: %w", err)
	}
	if r.rejected, err = m.Int64Counter("camera.commands.rejected",
		metric.WithDescription("Camera commands refused")); err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}
	if r.progress, err = m.Float64Gauge("scene.progress",
		metric.WithDescription("Drift window progress at the last tick")); err != nil {
		return nil, fmt.Errorf("creating progress gauge: %w", err)
	}
	return r, nil
}

// ObserveTick records one tick
func (r *Recorder) ObserveTick(res engine.TickResult) {
	ctx := context.Background()
	camAttr := metric.WithAttributes(attribute.Int("camera", res.ActiveCamera))

	r.ticks.Add(ctx, 1)
	r.summary.ticks.Add(1)
	r.progress.Record(ctx, res.Progress, camAttr)

	switch res.State {
	case engine.StateColliding:
		r.collisions.Add(ctx, 1)
		r.summary.collisions.Add(1)
	case engine.StateReset:
		r.resets.Add(ctx, 1)
		r.summary.resets.Add(1)
	}

	if res.CameraSwitched {
		r.switches.Add(ctx, 1, camAttr)
		r.summary.switches.Add(1)
	}
	if n := len(res.Rejected); n > 0 {
		r.rejected.Add(ctx, int64(n), camAttr)
		r.summary.rejected.Add(uint64(n))
	}
}

// Summary returns the local tallies
func (r *Recorder) Summary() Summary {
	return Summary{
		Ticks:          r.summary.ticks.Load(),
		Collisions:     r.summary.collisions.Load(),
		Resets:         r.summary.resets.Load(),
		CameraSwitches: r.summary.switches.Load(),
		Rejected:       r.summary.rejected.Load(),
	}
}
