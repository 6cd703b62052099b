package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time to services so that day windows,
// due dates and late fees can be computed against an injected instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in a fixed location
type System struct {
	loc *time.Location
}

// NewSystem creates a wall clock; nil loc means time.Local
func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.Local
	}
	return &System{loc: loc}
}

// Now returns the wall-clock time in the configured location
func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Manual is a settable clock for tests and replays.
//
// Thread-safety: all methods are safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a clock frozen at t
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the frozen time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
