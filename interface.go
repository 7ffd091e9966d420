package currenttime

import (
	"time"
)

// Clock is the time source an Engine samples and schedules against. Use
// [Adapt] to obtain one from the clocks in the realtime and steppedtime
// packages.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	Stop() bool
}

// TimerClock[TM] is any clock whose AfterFunc returns the concrete timer
// type TM. Both realtime.Clock and *steppedtime.Clock qualify.
type TimerClock[TM Timer] interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) TM
}

// Adapt wraps c as a Clock, e.g.
//
//	currenttime.Adapt[*steppedtime.Timer](steppedtime.NewClock(at))
func Adapt[TM Timer](c TimerClock[TM]) Clock {
	return adapted[TM]{c}
}

type adapted[TM Timer] struct {
	c TimerClock[TM]
}

func (a adapted[TM]) Now() time.Time {
	return a.c.Now()
}

func (a adapted[TM]) AfterFunc(d time.Duration, f func()) Timer {
	return a.c.AfterFunc(d, f)
}
