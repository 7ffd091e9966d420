package currenttime_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/realtime"
	"github.com/noodlebox/currenttime/snapshot"
	"github.com/noodlebox/currenttime/steppedtime"
)

// stepped returns an engine running on a stepped clock set to at, and a
// pointer to a slice recording every snapshot it is notified with.
func stepped(t *testing.T, at time.Time) (*Engine, *steppedtime.Clock, *[]snapshot.Snapshot) {
	t.Helper()
	clk := steppedtime.NewClock(at)
	e := New(WithClock(Adapt[*steppedtime.Timer](clk)))
	var seen []snapshot.Snapshot
	e.OnUpdate(func(_ *Engine, s snapshot.Snapshot, _ time.Time) {
		seen = append(seen, s)
	})
	return e, clk, &seen
}

func TestNextDelay(t *testing.T) {
	base := time.Date(2013, time.April, 1, 13, 21, 46, 0, time.UTC)

	assert.Equal(t, time.Second, NextDelay(base))
	assert.Equal(t, 750*time.Millisecond, NextDelay(base.Add(250*time.Millisecond)))
	assert.Equal(t, time.Nanosecond, NextDelay(base.Add(time.Second-time.Nanosecond)))
}

func TestInitUpdatesImmediately(t *testing.T) {
	e, clk, seen := stepped(t, instant.Add(250*time.Millisecond))

	s := e.Init(Config{})
	require.NotNil(t, s)
	assert.True(t, s.Active())
	assert.Same(t, s, e.Schedule())

	require.Len(t, *seen, 1)
	assert.Equal(t, "1:21:46 pm", e.String())
	assert.Equal(t, 1, clk.Pending())
	assert.Equal(t, instant.Add(time.Second), clk.NextAt())
}

func TestInitInstallsCallback(t *testing.T) {
	clk := steppedtime.NewClock(instant)
	e := New(WithClock(Adapt[*steppedtime.Timer](clk)))

	var got []time.Time
	e.Init(Config{OnUpdate: func(_ *Engine, _ snapshot.Snapshot, at time.Time) {
		got = append(got, at)
	}})

	assert.Equal(t, []time.Time{instant}, got)
}

func TestInitIsIdempotent(t *testing.T) {
	e, clk, seen := stepped(t, instant)

	first := e.Init(Config{})
	second := e.Init(Config{OnUpdate: func(*Engine, snapshot.Snapshot, time.Time) {
		t.Error("callback from second Init must not be installed")
	}})

	assert.Same(t, first, second)
	assert.Len(t, *seen, 1)
	assert.Equal(t, 1, clk.Pending())

	clk.Step(time.Second)
	assert.Len(t, *seen, 2)
	assert.Equal(t, 1, clk.Pending())
}

func TestTicksAdvanceOneSecond(t *testing.T) {
	e, clk, seen := stepped(t, instant.Add(250*time.Millisecond))
	e.Init(Config{})

	clk.Step(750 * time.Millisecond)
	require.Len(t, *seen, 2)
	assert.Equal(t, 47, e.Seconds().Raw)

	clk.Step(time.Second)
	require.Len(t, *seen, 3)
	assert.Equal(t, 48, e.Seconds().Raw)
	assert.Equal(t, "1:21:48 pm", e.String())
}

func TestTicksWrap(t *testing.T) {
	at := time.Date(2013, time.April, 1, 11, 59, 59, 500_000_000, time.UTC)
	e, clk, _ := stepped(t, at)
	e.Init(Config{})
	assert.Equal(t, "11:59:59 am", e.String())

	clk.Step(500 * time.Millisecond)
	assert.Equal(t, "12:00:00 pm", e.String())
	assert.Equal(t, snapshot.Split(0), e.Minutes())
	assert.Equal(t, snapshot.Split(0), e.Seconds())
}

func TestTicksWrapAtMidnight(t *testing.T) {
	at := time.Date(2013, time.April, 1, 23, 59, 59, 0, time.UTC)
	e, clk, _ := stepped(t, at)
	e.Init(Config{})

	clk.Step(time.Second)
	assert.Equal(t, "00:00:00 AM", e.MkString("%G:%m:%s %A"))
}

func TestLateTickRealigns(t *testing.T) {
	e, clk, seen := stepped(t, instant.Add(250*time.Millisecond))
	e.Init(Config{})

	// The tick due at :47.000 only gets to run at :47.300.
	clk.Set(instant.Add(1300 * time.Millisecond))
	require.Len(t, *seen, 2)
	assert.Equal(t, 47, e.Seconds().Raw)

	// The next one is still due on the second boundary, not 1s later.
	assert.Equal(t, instant.Add(2*time.Second), clk.NextAt())

	clk.Step(700 * time.Millisecond)
	require.Len(t, *seen, 3)
	assert.Equal(t, 48, e.Seconds().Raw)
}

func TestSlowCallbackDoesNotDrift(t *testing.T) {
	clk := steppedtime.NewClock(instant)
	e := New(WithClock(Adapt[*steppedtime.Timer](clk)))
	e.Init(Config{})

	// Every update after this takes 400ms of clock time to handle.
	e.OnUpdate(func(*Engine, snapshot.Snapshot, time.Time) {
		clk.Set(clk.Now().Add(400 * time.Millisecond))
	})

	for i := 1; i <= 5; i++ {
		require.True(t, clk.Advance())
		assert.Equal(t, (46+i)%60, e.Seconds().Raw)
		assert.Equal(t, instant.Add(time.Duration(i+1)*time.Second), clk.NextAt())
	}
}

func TestStop(t *testing.T) {
	e, clk, seen := stepped(t, instant)
	s := e.Init(Config{})

	assert.True(t, s.Stop())
	assert.False(t, s.Active())
	assert.False(t, s.Stop())
	assert.Zero(t, clk.Pending())

	clk.Step(time.Minute)
	assert.Len(t, *seen, 1)

	// Once stopped, the schedule stays stopped.
	assert.Same(t, s, e.Init(Config{}))
	assert.False(t, s.Active())
	assert.Zero(t, clk.Pending())

	// Direct updates keep working.
	e.Update(instant.Add(time.Hour))
	assert.Len(t, *seen, 2)
}

func TestStopFromCallback(t *testing.T) {
	e, clk, _ := stepped(t, instant)
	calls := 0
	e.Init(Config{OnUpdate: func(e *Engine, _ snapshot.Snapshot, _ time.Time) {
		calls++
		if calls == 3 {
			e.Schedule().Stop()
		}
	}})

	clk.Step(time.Second)
	clk.Step(time.Second)
	assert.Equal(t, 3, calls)
	assert.Zero(t, clk.Pending())

	clk.Step(time.Second)
	assert.Equal(t, 3, calls)
}

func TestScheduleLogs(t *testing.T) {
	var buf bytes.Buffer
	clk := steppedtime.NewClock(instant.Add(250 * time.Millisecond))
	e := New(
		WithClock(Adapt[*steppedtime.Timer](clk)),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)
	e.Init(Config{}).Stop()

	out := buf.String()
	assert.Contains(t, out, "schedule started")
	assert.Contains(t, out, `"delay":750`)
	assert.Contains(t, out, "schedule stopped")
}

func TestRealtimeSchedule(t *testing.T) {
	e := New(WithClock(Adapt[*realtime.Timer](realtime.NewClock())))

	updates := make(chan time.Time, 4)
	s := e.Init(Config{OnUpdate: func(_ *Engine, _ snapshot.Snapshot, at time.Time) {
		select {
		case updates <- at:
		default:
		}
	}})
	defer s.Stop()

	first := <-updates
	select {
	case next := <-updates:
		assert.True(t, next.After(first))
		assert.Less(t, next.Nanosecond(), int(500*time.Millisecond), "tick should land near a second boundary")
	case <-time.After(3 * time.Second):
		t.Fatal("no scheduled update")
	}
}
