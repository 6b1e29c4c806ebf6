package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually stepped TimeProvider for tests and headless runs
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the mock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceSeconds moves the mock forward by a fractional number of seconds
func (m *MockTimeProvider) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}
