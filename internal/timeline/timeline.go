// Package timeline is a single-threaded timer queue on a virtual clock. The
// owner advances the clock once per frame and due callbacks run inline, so
// timed effects are deterministic under test.
package timeline

import (
	"container/heap"
	"time"
)

// ID identifies a scheduled event. The zero ID is never issued.
type ID uint64

type event struct {
	id       ID
	due      time.Duration
	seq      uint64
	interval time.Duration // >0 for repeating events
	fn       func()
	index    int
}

type queue []*event

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	e := x.(*event)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Timeline holds pending events ordered by due time, ties broken by the
// order they were scheduled in.
type Timeline struct {
	now    time.Duration
	nextID ID
	seq    uint64
	q      queue
	byID   map[ID]*event
}

// New returns a timeline whose clock starts at zero.
func New() *Timeline {
	return &Timeline{byID: make(map[ID]*event)}
}

// Now returns the current virtual time.
func (t *Timeline) Now() time.Duration { return t.now }

// Pending returns how many events are scheduled.
func (t *Timeline) Pending() int { return len(t.q) }

// After runs fn once, d after the current time.
func (t *Timeline) After(d time.Duration, fn func()) ID {
	return t.schedule(d, 0, fn)
}

// Every runs fn each interval until cancelled. The first run is one
// interval from now.
func (t *Timeline) Every(interval time.Duration, fn func()) ID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return t.schedule(interval, interval, fn)
}

func (t *Timeline) schedule(d, interval time.Duration, fn func()) ID {
	if d < 0 {
		d = 0
	}
	t.nextID++
	t.seq++
	e := &event{
		id:       t.nextID,
		due:      t.now + d,
		seq:      t.seq,
		interval: interval,
		fn:       fn,
	}
	heap.Push(&t.q, e)
	t.byID[e.id] = e
	return e.id
}

// Cancel removes a pending event. It reports whether the event was still
// scheduled; cancelling a fired or unknown ID is a no-op.
func (t *Timeline) Cancel(id ID) bool {
	e, ok := t.byID[id]
	if !ok {
		return false
	}
	delete(t.byID, id)
	if e.index >= 0 {
		heap.Remove(&t.q, e.index)
	}
	return true
}

// Advance moves the clock to now and runs every event due at or before it,
// including events scheduled by callbacks during this call. While a callback
// runs, Now reports that event's due time, so timers it sets are measured
// from when it was due. It returns the number of callbacks run. Time never
// moves backwards.
func (t *Timeline) Advance(now time.Duration) int {
	target := max(now, t.now)
	fired := 0
	for len(t.q) > 0 && t.q[0].due <= target {
		e := heap.Pop(&t.q).(*event)
		if e.due > t.now {
			t.now = e.due
		}
		if e.interval > 0 {
			t.seq++
			e.due += e.interval
			e.seq = t.seq
			heap.Push(&t.q, e)
		} else {
			delete(t.byID, e.id)
		}
		e.fn()
		fired++
	}
	t.now = target
	return fired
}
