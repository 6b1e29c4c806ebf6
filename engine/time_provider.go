package engine

import "time"

// TimeProvider abstracts the wall clock so the frame loop can be driven by tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system time with its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// SimClock reports seconds elapsed since it was started, the unit the drift cycle runs on
type SimClock struct {
	provider TimeProvider
	start    time.Time
}

// NewSimClock starts a clock at the provider's current time
func NewSimClock(provider TimeProvider) *SimClock {
	return &SimClock{provider: provider, start: provider.Now()}
}

// Seconds returns elapsed time since start as float seconds
func (c *SimClock) Seconds() float64 {
	return c.provider.Now().Sub(c.start).Seconds()
}

func (c *SimClock) Now() time.Time { return c.provider.Now() }
