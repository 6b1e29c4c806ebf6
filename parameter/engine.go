package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the tick/render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameStatsInterval is how often ms/frame is reported
	FrameStatsInterval = time.Second

	// InputQueueSize buffers terminal events between ticks
	InputQueueSize = 256
)
