package steppedtime

import (
	"sync"
	"time"
)

// Clock is a manually advanced clock. It is safe for concurrent use.
type Clock struct {
	now   time.Time
	queue timerQueue
	seq   uint64

	mu sync.Mutex
}

// NewClock returns a Clock stopped at at.
func NewClock(at time.Time) *Clock {
	return &Clock{now: at}
}

func (c *Clock) lock()   { c.mu.Lock() }
func (c *Clock) unlock() { c.mu.Unlock() }

// Now returns the current time of the clock.
func (c *Clock) Now() (now time.Time) {
	c.lock()
	now = c.now
	c.unlock()
	return
}

// Set changes the current time to now and fires every timer that has come
// due. If any timers are active, a value of now earlier than the previous
// setting may lead to undefined behavior.
func (c *Clock) Set(now time.Time) {
	c.lock()
	c.now = now
	c.unlock()
	c.fire()
}

// Step advances the current time by dt and fires every timer that has come
// due. If any timers are active, a negative value for dt may lead to
// undefined behavior.
func (c *Clock) Step(dt time.Duration) {
	c.lock()
	c.now = c.now.Add(dt)
	c.unlock()
	c.fire()
}

// Advance moves the clock to the deadline of the next pending timer and
// fires it, along with anything else due by then. It returns false, leaving
// the clock alone, if no timer is pending.
func (c *Clock) Advance() bool {
	c.lock()
	next := c.queue.peek()
	if next == nil {
		c.unlock()
		return false
	}
	if next.when.After(c.now) {
		c.now = next.when
	}
	c.unlock()
	c.fire()
	return true
}

// NextAt returns the deadline of the next pending timer, or the zero time if
// none is pending.
func (c *Clock) NextAt() (when time.Time) {
	c.lock()
	if next := c.queue.peek(); next != nil {
		when = next.when
	}
	c.unlock()
	return
}

// Pending returns the number of timers waiting to fire.
func (c *Clock) Pending() (n int) {
	c.lock()
	n = len(c.queue)
	c.unlock()
	return
}

// fire runs due timers in deadline order. The lock is released around each
// callback, so callbacks may use the clock, including scheduling new timers;
// a new timer already due at the current time fires within the same call.
func (c *Clock) fire() {
	for {
		c.lock()
		t := c.due()
		c.unlock()
		if t == nil {
			return
		}
		t.f()
	}
}

// Timer is a single pending call created by [Clock.AfterFunc].
type Timer struct {
	t *timer
	s *Clock
}

// Reset changes the timer to fire after duration d from the clock's current
// time. Like AfterFunc, it never fires the timer itself. It returns true if
// the timer had been active, false if the timer had
// fired or been stopped.
func (t *Timer) Reset(d time.Duration) (active bool) {
	if t.t == nil {
		panic("Reset called on uninitialized steppedtime.Timer")
	}

	t.s.lock()
	t.t.when = t.s.now.Add(d)
	active = t.t.index != -1
	t.s.reschedule(t.t)
	t.s.unlock()
	return
}

// Stop prevents the Timer from firing. It returns true if the call stops the
// timer, false if the timer has already fired or been stopped.
func (t *Timer) Stop() (active bool) {
	if t.t == nil {
		panic("Stop called on uninitialized steppedtime.Timer")
	}

	t.s.lock()
	active = t.t.index != -1
	t.s.unschedule(t.t)
	t.s.unlock()
	return
}

// AfterFunc arranges for f to be called once the clock has been moved d or
// more past its current time. A non-positive d does not fire immediately;
// the call happens on the next Set, Step or Advance.
func (c *Clock) AfterFunc(d time.Duration, f func()) *Timer {
	c.lock()
	tm := &timer{
		f:     f,
		when:  c.now.Add(d),
		index: -1,
	}
	c.schedule(tm)
	c.unlock()
	return &Timer{tm, c}
}
