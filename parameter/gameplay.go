package parameter

import "time"

// Drift cycle
const (
	// AnimationPeriod is the window length in seconds
	AnimationPeriod = 5.0

	// DriftSpan is the width of the integer range drift components are drawn from, centred on zero
	// A span of 6 yields {-3,...,2}
	DriftSpan = 6

	// DriftScale divides the sampled integer to produce a per-tick velocity
	DriftScale = 1000.0
)

// ProgressModeDefault selects the corrected elapsed-time progress formula
const ProgressModeDefault = "elapsed"

// CollisionToneCooldown rate-limits the collision chime
const CollisionToneCooldown = 150 * time.Millisecond
