package realtime

import (
	"time"
)

// Clock reads the system clock. Its methods are thread-safe and Clock
// values may be copied freely. The zero value reports local time.
type Clock struct {
	loc *time.Location
}

// NewClock returns a Clock reporting local time.
func NewClock() Clock {
	return Clock{}
}

// InLocation returns a Clock whose readings are expressed in loc. A nil loc
// is the same as [NewClock].
func InLocation(loc *time.Location) Clock {
	return Clock{loc: loc}
}

// Location returns the location readings are expressed in.
func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Now returns the current time.
func (c Clock) Now() time.Time {
	now := time.Now()
	if c.loc != nil {
		return now.In(c.loc)
	}
	return now
}

// Timer wraps [time.Timer] returned by [Clock.AfterFunc].
type Timer struct {
	*time.Timer
}

// AfterFunc waits for the duration to elapse and then calls f in its own
// goroutine. It returns a Timer that can be used to cancel the call using
// its Stop method.
func (Clock) AfterFunc(d time.Duration, f func()) *Timer {
	return &Timer{time.AfterFunc(d, f)}
}
