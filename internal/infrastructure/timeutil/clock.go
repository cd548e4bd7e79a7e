// Package timeutil holds the clock and calendar used to date bookings.
package timeutil

import (
	"sync"
	"time"
)

// Clock reports the current time. Bookings read it for BookedAt and to
// decide which travel dates are already past.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is frozen at an instant that tests move explicitly.
// It is safe for concurrent use.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set jumps to t.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// AdvanceDays moves forward by whole calendar days, keeping the time of day.
func (m *MockClock) AdvanceDays(days int) {
	m.mu.Lock()
	m.now = m.now.AddDate(0, 0, days)
	m.mu.Unlock()
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
