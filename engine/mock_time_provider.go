package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock for tests
type MockTimeProvider struct {
	mu      sync.RWMutex
	epoch   time.Time
	current time.Time
}

// NewMockTimeProvider creates a mock clock reading startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		epoch:   startTime,
		current: startTime,
	}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime jumps the clock to t, backward jumps included
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// SetElapsed places the clock d after its start time
func (m *MockTimeProvider) SetElapsed(d time.Duration) {
	m.SetTime(m.epoch.Add(d))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
