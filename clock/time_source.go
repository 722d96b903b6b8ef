package clock

import (
	"sync"
	"time"
)

// TimeSource supplies the instants a Clock measures elapsed time against.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the monotonic wall clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a TimeSource that only moves when told to. Use it to drive a
// Clock deterministically in tests and replays.
type ManualTime struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManualTime creates a ManualTime frozen at start.
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set moves the current instant to t.
func (m *ManualTime) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the current instant forward by d.
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
