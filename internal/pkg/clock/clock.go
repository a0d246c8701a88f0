package clock

import "time"

// Timer is a scheduled callback that can be cancelled before it fires.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false when it already fired or was stopped.
	Stop() bool
}

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
	// AfterFunc runs f once d has elapsed and returns a handle to cancel it.
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeClocker is the production clock implementation backed by the time package.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine using time.AfterFunc.
func (*TimeClocker) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
