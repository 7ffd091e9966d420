package steppedtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/noodlebox/currenttime/steppedtime"
)

var start = time.Date(2013, time.April, 1, 13, 21, 46, 0, time.UTC)

func TestNowSetStep(t *testing.T) {
	c := NewClock(start)
	assert.Equal(t, start, c.Now())

	c.Step(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now())

	later := start.Add(time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestAfterFuncFiresInOrder(t *testing.T) {
	c := NewClock(start)
	var got []string
	c.AfterFunc(2*time.Second, func() { got = append(got, "b") })
	c.AfterFunc(time.Second, func() { got = append(got, "a") })
	c.AfterFunc(2*time.Second, func() { got = append(got, "c") })
	require.Equal(t, 3, c.Pending())

	c.Step(999 * time.Millisecond)
	assert.Empty(t, got)

	c.Step(time.Millisecond)
	assert.Equal(t, []string{"a"}, got)

	c.Step(5 * time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, c.Pending())
}

func TestCallbackSeesDeadlineTime(t *testing.T) {
	c := NewClock(start)
	var seen time.Time
	c.AfterFunc(time.Second, func() { seen = c.Now() })

	c.Step(1300 * time.Millisecond)
	assert.Equal(t, start.Add(1300*time.Millisecond), seen)
}

func TestCallbackMayReschedule(t *testing.T) {
	c := NewClock(start)
	n := 0
	var tick func()
	tick = func() {
		n++
		c.AfterFunc(time.Second, tick)
	}
	c.AfterFunc(time.Second, tick)

	c.Step(3 * time.Second)
	// Only the first timer was due; the rescheduled ones land after it.
	assert.Equal(t, 1, n)
	assert.Equal(t, start.Add(4*time.Second), c.NextAt())

	for i := 0; i < 3; i++ {
		require.True(t, c.Advance())
	}
	assert.Equal(t, 4, n)
	assert.Equal(t, start.Add(6*time.Second), c.Now())
}

func TestAdvanceWithNothingPending(t *testing.T) {
	c := NewClock(start)
	assert.False(t, c.Advance())
	assert.Equal(t, start, c.Now())
	assert.True(t, c.NextAt().IsZero())
}

func TestTimerStop(t *testing.T) {
	c := NewClock(start)
	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	c.Step(time.Minute)
	assert.False(t, fired)
	assert.Zero(t, c.Pending())
}

func TestTimerReset(t *testing.T) {
	c := NewClock(start)
	fired := 0
	tm := c.AfterFunc(time.Second, func() { fired++ })

	assert.True(t, tm.Reset(3*time.Second))
	c.Step(2 * time.Second)
	assert.Zero(t, fired)
	c.Step(time.Second)
	assert.Equal(t, 1, fired)

	assert.False(t, tm.Reset(time.Second))
	c.Step(time.Second)
	assert.Equal(t, 2, fired)
}
