package engine

import "time"

// Clock is the engine's source of time. Commit callbacks are due relative to it.
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the monotonic system clock
type TimeProvider struct{}

// NewTimeProvider creates a system clock
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
