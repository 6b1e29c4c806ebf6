package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift-scene/engine"
)

type recordingPlayer struct {
	played []beep.Streamer
	closed bool
}

func (p *recordingPlayer) Play(s beep.Streamer) { p.played = append(p.played, s) }
func (p *recordingPlayer) Close()               { p.closed = true }

// drain pulls every sample from s and returns the count
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func tick(state engine.DriftState, clock float64) engine.TickResult {
	return engine.TickResult{Step: engine.Step{State: state}, Clock: clock}
}

func TestSineTakeLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	s, err := sineTake(rate, 440, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 50, drain(s))

	_, err = sineTake(rate, 600, 50*time.Millisecond)
	assert.Error(t, err, "above half the sample rate")
}

func TestEnvelopeRampsAndEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	sine, err := sineTake(rate, 250, time.Second)
	require.NoError(t, err)
	s := NewEnvelope(sine, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	assert.Equal(t, 100, n, "envelope cuts the longer source")
	assert.Zero(t, buf[0][0], "attack starts silent")

	n, ok = s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestCollisionChimeDuration(t *testing.T) {
	rate := beep.SampleRate(8000)
	s, err := CollisionChime(rate, 880, 50*time.Millisecond, 0.5)
	require.NoError(t, err)
	assert.Equal(t, rate.N(50*time.Millisecond), drain(s))
}

func TestResetToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s, err := ResetTone(rate, 440, 120*time.Millisecond, 0.5)
	require.NoError(t, err)

	// One tone-length buffer is filled completely by the mix
	buf := make([][2]float64, rate.N(120*time.Millisecond))
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)

	_, err = ResetTone(rate, 3000, 120*time.Millisecond, 0.5)
	assert.Error(t, err, "octave overtone above half the sample rate")
}

func TestFeedbackRateLimitsChime(t *testing.T) {
	p := &recordingPlayer{}
	f := New(DefaultConfig(), p, zerolog.Nop())

	f.ObserveTick(tick(engine.StateColliding, 1.00))
	f.ObserveTick(tick(engine.StateColliding, 1.05))
	f.ObserveTick(tick(engine.StateColliding, 1.10))
	f.ObserveTick(tick(engine.StateColliding, 1.20))
	f.ObserveTick(tick(engine.StateDrifting, 1.25))

	chimes, resets := f.Counts()
	assert.Equal(t, uint64(2), chimes)
	assert.Zero(t, resets)
	assert.Len(t, p.played, 2)
}

func TestFeedbackResetTone(t *testing.T) {
	p := &recordingPlayer{}
	f := New(DefaultConfig(), p, zerolog.Nop())

	f.ObserveTick(tick(engine.StateReset, 5))

	_, resets := f.Counts()
	assert.Equal(t, uint64(1), resets)
	require.Len(t, p.played, 1)
	n, _ := p.played[0].Stream(make([][2]float64, 64))
	assert.Equal(t, 64, n)

	f.Close()
	assert.True(t, p.closed)
}

func TestFeedbackDisabledIsSilent(t *testing.T) {
	p := &recordingPlayer{}
	cfg := DefaultConfig()
	cfg.Enabled = false
	f := New(cfg, p, zerolog.Nop())

	f.ObserveTick(tick(engine.StateColliding, 0))
	f.ObserveTick(tick(engine.StateReset, 5))

	assert.Empty(t, p.played)
	f.Close()
	assert.False(t, p.closed)
}

func TestOpenDisabledSkipsSpeaker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	f := Open(cfg, zerolog.Nop())
	require.NotNil(t, f)
	f.ObserveTick(tick(engine.StateColliding, 0))
	f.Close()
}
