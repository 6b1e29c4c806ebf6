package parameter

import "time"

// Audio feedback
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolumeDefault is the master gain in [0,1]
	AudioVolumeDefault = 0.5

	// CollisionToneHz / CollisionToneDuration shape the collision chime
	CollisionToneHz       = 880.0
	CollisionToneDuration = 50 * time.Millisecond

	// ResetToneHz / ResetToneDuration shape the cycle reset tone
	ResetToneHz       = 440.0
	ResetToneDuration = 120 * time.Millisecond
)
