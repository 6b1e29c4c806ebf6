package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/drift-scene/engine"
	"github.com/lixenwraith/drift-scene/parameter"
)

// Config controls audio feedback
type Config struct {
	Enabled    bool
	Volume     float64
	SampleRate int

	// Cooldown is the minimum simulation time between two collision chimes
	Cooldown time.Duration
}

// DefaultConfig returns enabled feedback at the stock volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioVolumeDefault,
		SampleRate: parameter.AudioSampleRate,
		Cooldown:   parameter.CollisionToneCooldown,
	}
}

// Player accepts finished streams for playback
type Player interface {
	Play(s beep.Streamer)
	Close()
}

// speakerPlayer feeds the system speaker through a shared mixer
type speakerPlayer struct {
	mixer *beep.Mixer
}

func (p *speakerPlayer) Play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *speakerPlayer) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// silentPlayer drops everything
type silentPlayer struct{}

func (silentPlayer) Play(beep.Streamer) {}
func (silentPlayer) Close()             {}

// OpenSpeaker initializes the system speaker
// Failure is not fatal for callers; Feedback falls back to silence
func OpenSpeaker(rate beep.SampleRate) (Player, error) {
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, err
	}
	p := &speakerPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// Feedback turns tick outcomes into tones
// Implements engine.Observer
type Feedback struct {
	mu     sync.Mutex
	cfg    Config
	player Player
	rate   beep.SampleRate
	logger zerolog.Logger

	lastChime float64
	chimed    bool

	chimes uint64
	resets uint64
}

// New builds feedback on top of player; a nil player or disabled config yields silent feedback
func New(cfg Config, player Player, logger zerolog.Logger) *Feedback {
	if player == nil || !cfg.Enabled {
		player = silentPlayer{}
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &Feedback{
		cfg:    cfg,
		player: player,
		rate:   beep.SampleRate(cfg.SampleRate),
		logger: logger,
	}
}

// Open initializes the speaker when enabled and degrades to silence on failure
func Open(cfg Config, logger zerolog.Logger) *Feedback {
	if !cfg.Enabled {
		return New(cfg, nil, logger)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(parameter.AudioSampleRate)
	}
	player, err := OpenSpeaker(rate)
	if err != nil {
		// Non-fatal, the scene runs without sound
		logger.Warn().Err(err).Msg("audio initialization failed")
		return New(cfg, nil, logger)
	}
	return New(cfg, player, logger)
}

// ObserveTick plays the chime on a colliding tick outside the cooldown, and the reset tone on a reset
func (f *Feedback) ObserveTick(res engine.TickResult) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch res.State {
	case engine.StateColliding:
		if f.chimed && res.Clock-f.lastChime < f.cfg.Cooldown.Seconds() {
			return
		}
		s, err := CollisionChime(f.rate, parameter.CollisionToneHz, parameter.CollisionToneDuration, f.cfg.Volume)
		if err != nil {
			f.logger.Debug().Err(err).Msg("collision chime")
			return
		}
		f.player.Play(s)
		f.lastChime, f.chimed = res.Clock, true
		f.chimes++

	case engine.StateReset:
		s, err := ResetTone(f.rate, parameter.ResetToneHz, parameter.ResetToneDuration, f.cfg.Volume)
		if err != nil {
			f.logger.Debug().Err(err).Msg("reset tone")
			return
		}
		f.player.Play(s)
		f.resets++
	}
}

// Counts returns how many chimes and reset tones were issued
func (f *Feedback) Counts() (chimes, resets uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chimes, f.resets
}

// Close releases the speaker
func (f *Feedback) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.player.Close()
}
