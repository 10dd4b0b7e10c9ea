package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven Clock for tests and headless runs.
// It only moves forward, so a CommitQueue drained against it sees callbacks in due order.
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t; a t before the current time is ignored
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	if t.After(m.now) {
		m.now = t
	}
	m.mu.Unlock()
}

// Advance steps forward by d and returns the new time; negative d is treated as zero
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(max(d, 0))
	return m.now
}

// Elapsed returns how far the clock has moved since construction
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}
