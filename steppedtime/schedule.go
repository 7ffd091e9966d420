package steppedtime

import (
	"container/heap"
	"time"
)

type timer struct {
	f     func()
	when  time.Time
	seq   uint64 // breaks ties between equal deadlines, first scheduled first
	index int
}

// timerQueue is a min-heap of pending timers ordered by deadline.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].when.Equal(q[j].when) {
		return q[i].seq < q[j].seq
	}
	return q[i].when.Before(q[j].when)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	t := old[len(old)-1]
	old[len(old)-1] = nil
	t.index = -1
	*q = old[:len(old)-1]
	return t
}

// peek returns the earliest pending timer without removing it.
func (q timerQueue) peek() *timer {
	if len(q) == 0 {
		return nil
	}
	return q[0]
}

// Callers of the methods below must hold c.mu.

func (c *Clock) schedule(t *timer) {
	c.seq++
	t.seq = c.seq
	heap.Push(&c.queue, t)
}

func (c *Clock) unschedule(t *timer) {
	if t.index == -1 {
		return
	}
	heap.Remove(&c.queue, t.index)
}

func (c *Clock) reschedule(t *timer) {
	if t.index == -1 {
		c.schedule(t)
		return
	}
	c.seq++
	t.seq = c.seq
	heap.Fix(&c.queue, t.index)
}

// due removes and returns the earliest timer whose deadline is not after the
// current time, or nil if there is none.
func (c *Clock) due() *timer {
	t := c.queue.peek()
	if t == nil || t.when.After(c.now) {
		return nil
	}
	c.unschedule(t)
	return t
}
