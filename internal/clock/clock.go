// Package clock abstracts wall-clock time so schedulers can be driven by a
// fake clock in tests.
package clock

import "time"

// Clock provides the current time and timers.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// System is the real wall clock.
type System struct{}

// New returns the system clock.
func New() System {
	return System{}
}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// After returns time.After(d).
func (System) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
