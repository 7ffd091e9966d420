package currenttime

import (
	"sync"
	"time"
)

// Config holds the options recognized by [Engine.Init].
type Config struct {
	// OnUpdate, if non-nil, is installed as the update callback before the
	// first update.
	OnUpdate UpdateFunc
}

// NextDelay returns how long to wait after now for the next wall-clock
// second to begin. The result is always in (0, 1s].
func NextDelay(now time.Time) time.Duration {
	return time.Second - time.Duration(now.Nanosecond())
}

// Schedule keeps an Engine's snapshot fresh. Each tick samples the clock,
// updates the Engine, and arms a single timer for the start of the next
// second, so ticks stay aligned to second boundaries however late any one of
// them runs.
type Schedule struct {
	e      *Engine
	timer  Timer
	active bool

	mu sync.Mutex
}

// Init starts the Engine's schedule: it installs cfg.OnUpdate, updates from
// the clock immediately, and then once at the start of every following
// second. Only the first call does anything; later calls return the same
// Schedule, even once it has been stopped.
func (e *Engine) Init(cfg Config) *Schedule {
	e.mu.Lock()
	if e.schedule != nil {
		s := e.schedule
		e.mu.Unlock()
		return s
	}
	if cfg.OnUpdate != nil {
		e.onUpdate = cfg.OnUpdate
	}
	s := &Schedule{e: e, active: true}
	e.schedule = s
	e.mu.Unlock()

	e.log.Debug().Msg("schedule started")
	s.tick()
	return s
}

// Schedule returns the schedule started by Init, or nil if Init has not been
// called.
func (e *Engine) Schedule() *Schedule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.schedule
}

func (s *Schedule) tick() {
	if !s.Active() {
		return
	}

	now := s.e.clock.Now()
	s.e.Update(now)
	// Measure again so time spent in the update callback is not carried
	// over into the next tick.
	d := NextDelay(s.e.clock.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		// Stopped while updating.
		return
	}
	s.timer = s.e.clock.AfterFunc(d, s.tick)
	s.e.log.Debug().
		Time("at", now).
		Dur("delay", d).
		Msg("next update scheduled")
}

// Active reports whether the schedule is still running.
func (s *Schedule) Active() (active bool) {
	s.mu.Lock()
	active = s.active
	s.mu.Unlock()
	return
}

// Stop halts the schedule; no further updates are scheduled. It returns
// true if the schedule was running. A stopped Schedule cannot be restarted.
func (s *Schedule) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return false
	}
	s.active = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.e.log.Debug().Msg("schedule stopped")
	return true
}
