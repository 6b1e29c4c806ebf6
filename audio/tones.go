package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// sineTake is a generator sine cut to duration
// Frequencies at or above half the sample rate are rejected by the generator
func sineTake(rate beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0f Hz at %d Hz: %w", freq, rate, err)
	}
	return beep.Take(rate.N(duration), sine), nil
}

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; attack and release are clamped to fit
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CollisionChime is a short high sine blip
func CollisionChime(rate beep.SampleRate, freq float64, duration time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := sineTake(rate, freq, duration)
	if err != nil {
		return nil, err
	}
	return newVolume(sine, vol), nil
}

// ResetTone is a softer, longer tone with an octave overtone
func ResetTone(rate beep.SampleRate, freq float64, duration time.Duration, vol float64) (beep.Streamer, error) {
	fund, err := sineTake(rate, freq, duration)
	if err != nil {
		return nil, err
	}
	over, err := sineTake(rate, freq*2, duration)
	if err != nil {
		return nil, err
	}

	attack := duration / 10
	fund = NewEnvelope(fund, duration, attack, duration/2, rate)
	over = NewEnvelope(over, duration, attack, duration/3, rate)
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), vol), nil
}
