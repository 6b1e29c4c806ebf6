package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift-scene/vmath"
)

// ProgressMode selects how window progress is derived from the clock
type ProgressMode uint8

const (
	// ProgressElapsed uses (clock - windowStart) / period and reopens at the current clock
	ProgressElapsed ProgressMode = iota

	// ProgressReference uses clock / (period + windowStart) and reopens at clock + period
	// Later windows span two periods and open at a progress of c/(c+2*period) for reset clock c
	ProgressReference
)

func (m ProgressMode) String() string {
	switch m {
	case ProgressElapsed:
		return "elapsed"
	case ProgressReference:
		return "reference"
	}
	return fmt.Sprintf("ProgressMode(%d)", uint8(m))
}

// ParseProgressMode maps a config name to a mode
func ParseProgressMode(s string) (ProgressMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "elapsed", "":
		return ProgressElapsed, nil
	case "reference":
		return ProgressReference, nil
	}
	return ProgressElapsed, fmt.Errorf("unknown progress mode %q", s)
}

// CycleConfig shapes the drift window
type CycleConfig struct {
	Period float64
	Mode   ProgressMode

	// Drift components are CenteredInt(Span) / Scale
	Span  int
	Scale float64
}

// Cycle is the animation window state: clock-derived progress plus the per-body drift velocities
type Cycle struct {
	cfg         CycleConfig
	windowStart float64
	drift       [2]mgl32.Vec2
	rng         *vmath.FastRand
	resets      uint64
}

// NewCycle opens the first window at start and samples the first drift pair
func NewCycle(cfg CycleConfig, start float64, rng *vmath.FastRand) *Cycle {
	c := &Cycle{
		cfg:         cfg,
		windowStart: start,
		rng:         rng,
	}
	c.Reseed()
	return c
}

// Progress returns the window fraction for a clock reading
// Values >= 1 mean the window must be reopened before progress is read again
func (c *Cycle) Progress(clock float64) float64 {
	switch c.cfg.Mode {
	case ProgressReference:
		return clock / (c.cfg.Period + c.windowStart)
	default:
		return (clock - c.windowStart) / c.cfg.Period
	}
}

// Reopen closes the current window at clock, opens the next and reseeds drift
func (c *Cycle) Reopen(clock float64) {
	switch c.cfg.Mode {
	case ProgressReference:
		c.windowStart = clock + c.cfg.Period
	default:
		c.windowStart = clock
	}
	c.Reseed()
	c.resets++
}

// Reseed draws fresh drift velocities for both bodies, independently per axis
func (c *Cycle) Reseed() {
	for i := range c.drift {
		c.drift[i] = mgl32.Vec2{c.sample(), c.sample()}
	}
}

func (c *Cycle) sample() float32 {
	return float32(float64(c.rng.CenteredInt(c.cfg.Span)) / c.cfg.Scale)
}

// SetDrift overrides one body's velocity until the next reseed
func (c *Cycle) SetDrift(body int, v mgl32.Vec2) {
	c.drift[body] = v
}

// Drift returns one body's current velocity
func (c *Cycle) Drift(body int) mgl32.Vec2 {
	return c.drift[body]
}

// DriftBounds returns the inclusive range a sampled component can take
func (c *Cycle) DriftBounds() (lo, hi float32) {
	half := c.cfg.Span / 2
	return float32(float64(-half) / c.cfg.Scale), float32(float64(c.cfg.Span-half-1) / c.cfg.Scale)
}

func (c *Cycle) WindowStart() float64 { return c.windowStart }
func (c *Cycle) Period() float64      { return c.cfg.Period }
func (c *Cycle) Mode() ProgressMode   { return c.cfg.Mode }
func (c *Cycle) Resets() uint64       { return c.resets }
