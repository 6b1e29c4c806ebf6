package config

import (
	"fmt"
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift-scene/asset"
	"github.com/lixenwraith/drift-scene/audio"
	"github.com/lixenwraith/drift-scene/camera"
	"github.com/lixenwraith/drift-scene/engine"
	"github.com/lixenwraith/drift-scene/input"
	"github.com/lixenwraith/drift-scene/logging"
	"github.com/lixenwraith/drift-scene/parameter"
	"github.com/lixenwraith/drift-scene/telemetry"
	"github.com/lixenwraith/drift-scene/vmath"
)

func vec3(c []float32) mgl32.Vec3 {
	var v mgl32.Vec3
	copy(v[:], c)
	return v
}

// Presets converts the configured rig slots
func (c *Config) Presets() []camera.Preset {
	presets := make([]camera.Preset, len(c.Cameras))
	for i, p := range c.Cameras {
		presets[i] = camera.Preset{
			Position:  vec3(p.Position),
			Direction: vec3(p.Direction),
			WorldUp:   vec3(p.WorldUp),
		}
	}
	return presets
}

func (c *Config) Projection() camera.Projection {
	return camera.Projection{FOV: c.Camera.FOV, Aspect: c.Camera.Aspect, Near: c.Camera.Near, Far: c.Camera.Far}
}

func (c *Config) ProgressMode() (engine.ProgressMode, error) {
	return engine.ParseProgressMode(c.Scene.ProgressMode)
}

// ResolvedSeed returns the configured seed, or one derived from now when it is zero
func (c *Config) ResolvedSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return vmath.SeedFromTime(now)
}

// Simulation builds the scene construction parameters
func (c *Config) Simulation(now time.Time) (engine.SimulationConfig, error) {
	mode, err := c.ProgressMode()
	if err != nil {
		return engine.SimulationConfig{}, fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	return engine.SimulationConfig{
		Presets:       c.Presets(),
		Projection:    c.Projection(),
		CameraSpeed:   c.Camera.Speed,
		TiltStep:      c.Camera.TiltStep,
		InitialOffset: c.Scene.InitialOffset,
		Drift: engine.DriftConfig{
			Threshold: c.Scene.Threshold,
			Impulse:   c.Scene.Impulse,
		},
		Cycle: engine.CycleConfig{
			Period: c.Scene.Period,
			Mode:   mode,
			Span:   c.Scene.DriftSpan,
			Scale:  c.Scene.DriftScale,
		},
		Seed: c.ResolvedSeed(now),
	}, nil
}

func (c *Config) AudioConfig() audio.Config {
	return audio.Config{
		Enabled:    c.Audio.Enabled,
		Volume:     c.Audio.Volume,
		SampleRate: parameter.AudioSampleRate,
		Cooldown:   parameter.CollisionToneCooldown,
	}
}

func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Debug: c.Log.Debug, Dir: c.Log.Dir, Level: c.Log.Level}
}

// TelemetryConfig exports to w, the log file; without file logging there is nowhere to write
func (c *Config) TelemetryConfig(w io.Writer) telemetry.Config {
	return telemetry.Config{
		Enabled:  c.Telemetry.Enabled && c.Log.Debug,
		Writer:   w,
		Interval: c.Telemetry.Interval,
	}
}

// KeyTable returns the default bindings with any configured overrides merged in
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return kt, nil
	}
	bindings := make([]input.Binding, len(c.Keys))
	for i, k := range c.Keys {
		bindings[i] = input.Binding{Key: k.Key, Action: k.Action}
	}
	override, err := input.LoadKeyConfig(bindings)
	if err != nil {
		return nil, fmt.Errorf("keys: %v: %w", err, ErrInvalid)
	}
	kt.Merge(override)
	return kt, nil
}

// LoadMesh loads the configured OBJ, or the built-in cube sized to the collision width
func (c *Config) LoadMesh() (*asset.Mesh, error) {
	if c.Mesh.Path == "" {
		return asset.Cube(c.Scene.Threshold / 2), nil
	}
	return asset.LoadOBJ(c.Mesh.Path)
}
