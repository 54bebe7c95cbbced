package animation

import "time"

// Clock provides time for [Loop.Frame]. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to drive frames
// deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the frame clock and returns the previous one so callers
// can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
