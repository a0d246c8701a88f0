package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually driven clock for tests. Timers only fire from Advance.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *Fake
	seq     int
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

// NewFake returns a Fake clock set to now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc registers f to run when the clock is advanced past d.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{clock: f, seq: f.seq, at: f.now.Add(d), fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// Advance moves the clock forward and runs every due timer in deadline order.
// Callbacks run without the clock lock held, so they may schedule new timers;
// those fire too when they fall inside the advanced window.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		sort.SliceStable(f.timers, func(i, j int) bool {
			if f.timers[i].at.Equal(f.timers[j].at) {
				return f.timers[i].seq < f.timers[j].seq
			}
			return f.timers[i].at.Before(f.timers[j].at)
		})

		if len(f.timers) == 0 || f.timers[0].at.After(target) {
			f.now = target
			f.mu.Unlock()
			return
		}

		t := f.timers[0]
		f.timers = f.timers[1:]
		t.fired = true
		if t.at.After(f.now) {
			f.now = t.at
		}
		f.mu.Unlock()

		t.fn()
	}
}

func (t *fakeTimer) Stop() bool {
	f := t.clock
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	for i, other := range f.timers {
		if other == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			break
		}
	}
	return true
}
