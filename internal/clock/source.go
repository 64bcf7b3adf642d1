package clock

import (
	"sync"
	"time"
)

// Source reports host wall-clock time.
type Source interface {
	Now() time.Time
}

// Wall reads time.Now.
type Wall struct{}

func (Wall) Now() time.Time { return time.Now() }

// Manual is a controllable Source for tests and offline simulation.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManual(start time.Time) *Manual { return &Manual{now: start} }

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t, which may be earlier than the current time.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
