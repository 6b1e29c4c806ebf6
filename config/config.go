package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/drift-scene/asset"
	"github.com/lixenwraith/drift-scene/parameter"
)

// ErrInvalid marks a configuration that failed validation
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix namespaces environment overrides: scene.period -> DRIFT_SCENE_PERIOD
const EnvPrefix = "DRIFT"

type SceneConfig struct {
	Threshold     float32 `mapstructure:"threshold"`
	Impulse       float32 `mapstructure:"impulse"`
	Period        float64 `mapstructure:"period"`
	ProgressMode  string  `mapstructure:"progress_mode"`
	DriftSpan     int     `mapstructure:"drift_span"`
	DriftScale    float64 `mapstructure:"drift_scale"`
	InitialOffset float32 `mapstructure:"initial_offset"`
}

type CameraConfig struct {
	Speed    float32 `mapstructure:"speed"`
	TiltStep float32 `mapstructure:"tilt_step"`
	FOV      float32 `mapstructure:"fov"`
	Aspect   float32 `mapstructure:"aspect"`
	Near     float32 `mapstructure:"near"`
	Far      float32 `mapstructure:"far"`
}

// PresetConfig is one rig slot; each vector has exactly three components
type PresetConfig struct {
	Position  []float32 `mapstructure:"position"`
	Direction []float32 `mapstructure:"direction"`
	WorldUp   []float32 `mapstructure:"world_up"`
}

type MeshConfig struct {
	// Path to a Wavefront OBJ; empty uses the built-in cube
	Path string `mapstructure:"path"`
}

type FrameConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	StatsInterval time.Duration `mapstructure:"stats_interval"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// TelemetryConfig exports OTel metrics into the log file; it needs log.debug
type TelemetryConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// KeyBinding is one [[keys]] entry; the key name stays data so case and punctuation survive
type KeyBinding struct {
	Key    string `mapstructure:"key"`
	Action string `mapstructure:"action"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// Config is the fully resolved runtime configuration
type Config struct {
	Seed      uint64          `mapstructure:"seed"`
	Scene     SceneConfig     `mapstructure:"scene"`
	Camera    CameraConfig    `mapstructure:"camera"`
	Cameras   []PresetConfig  `mapstructure:"cameras"`
	Mesh      MeshConfig      `mapstructure:"mesh"`
	Frame     FrameConfig     `mapstructure:"frame"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Keys      []KeyBinding    `mapstructure:"keys"`

	// File is the config file that was merged, if any
	File string `mapstructure:"-"`
}

// flagKeys binds command-line flags to config keys
var flagKeys = map[string]string{
	"debug":         "log.debug",
	"log-dir":       "log.dir",
	"log-level":     "log.level",
	"seed":          "seed",
	"period":        "scene.period",
	"progress-mode": "scene.progress_mode",
	"threshold":     "scene.threshold",
	"impulse":       "scene.impulse",
	"camera-speed":  "camera.speed",
	"interval":      "frame.interval",
	"audio":         "audio.enabled",
	"volume":        "audio.volume",
	"mesh":          "mesh.path",
}

// NewFlagSet declares every supported flag
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "TOML config file merged over the built-in defaults")
	fs.BoolP("debug", "d", false, "enable file logging under the log directory")
	fs.String("log-dir", "logs", "log directory")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.Uint64("seed", 0, "drift seed; 0 seeds from the wall clock")
	fs.Float64("period", parameter.AnimationPeriod, "drift window length in seconds")
	fs.String("progress-mode", parameter.ProgressModeDefault, "window progress formula: elapsed or reference")
	fs.Float32("threshold", parameter.CollisionThreshold, "collision proximity width")
	fs.Float32("impulse", parameter.CollisionImpulse, "separation applied per colliding tick")
	fs.Float32("camera-speed", parameter.CameraSpeed, "camera move and strafe distance per tick")
	fs.Duration("interval", parameter.FrameUpdateInterval, "frame interval")
	fs.Bool("audio", true, "play collision and reset tones")
	fs.Float64("volume", parameter.AudioVolumeDefault, "audio volume in [0,1]")
	fs.String("mesh", "", "Wavefront OBJ mesh for both bodies")
	return fs
}

// Load resolves configuration from args, environment, an optional file and the embedded defaults
// Precedence, highest first: flags, DRIFT_* env, --config file, defaults
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("drift-scene")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return LoadFlags(fs)
}

// LoadFlags resolves configuration from an already parsed flag set
func LoadFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(asset.DefaultScene)); err != nil {
		return nil, fmt.Errorf("reading built-in defaults: %w", err)
	}

	file, _ := fs.GetString("config")
	if file != "" {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if f := fs.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", flag, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = file

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and shapes; every failure wraps ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
		}
	}

	check(c.Scene.Threshold > 0, "scene.threshold %v must be > 0", c.Scene.Threshold)
	check(c.Scene.Impulse >= 0, "scene.impulse %v must be >= 0", c.Scene.Impulse)
	check(c.Scene.Period > 0, "scene.period %v must be > 0", c.Scene.Period)
	check(c.Scene.DriftSpan > 0, "scene.drift_span %d must be > 0", c.Scene.DriftSpan)
	check(c.Scene.DriftScale > 0, "scene.drift_scale %v must be > 0", c.Scene.DriftScale)
	if _, err := c.ProgressMode(); err != nil {
		check(false, "scene.progress_mode: %v", err)
	}

	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov %v must be in (0,180)", c.Camera.FOV)
	check(c.Camera.Aspect > 0, "camera.aspect %v must be > 0", c.Camera.Aspect)
	check(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far, "camera.near %v must be in (0, far=%v)", c.Camera.Near, c.Camera.Far)

	check(len(c.Cameras) >= 1 && len(c.Cameras) <= parameter.MaxRigSize,
		"cameras: %d slots, want 1..%d", len(c.Cameras), parameter.MaxRigSize)
	for i, p := range c.Cameras {
		check(len(p.Position) == 3, "cameras[%d].position needs 3 components", i)
		check(len(p.Direction) == 3, "cameras[%d].direction needs 3 components", i)
		check(len(p.WorldUp) == 3, "cameras[%d].world_up needs 3 components", i)
	}

	check(c.Frame.Interval > 0, "frame.interval %v must be > 0", c.Frame.Interval)
	check(c.Frame.StatsInterval > 0, "frame.stats_interval %v must be > 0", c.Frame.StatsInterval)
	check(c.Telemetry.Interval > 0, "telemetry.interval %v must be > 0", c.Telemetry.Interval)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %v must be in [0,1]", c.Audio.Volume)

	return errors.Join(errs...)
}
