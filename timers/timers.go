// Package timers is a frame-clock timer queue. Time only moves when the
// owner calls Advance, so callbacks always run on the game thread.
package timers

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type timer struct {
	handle Handle
	due    time.Duration
	seq    uint64
	fn     func()
	index  int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Queue holds pending callbacks ordered by due time. Callbacks due at the
// same instant run in scheduling order.
type Queue struct {
	now     time.Duration
	seq     uint64
	pending timerHeap
	byID    map[Handle]*timer
}

func NewQueue() *Queue {
	return &Queue{byID: make(map[Handle]*timer)}
}

// Now is the queue clock.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Len is the number of callbacks still waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Schedule runs fn once the clock has moved delay past now. A negative
// delay is treated as zero.
func (q *Queue) Schedule(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	t := &timer{
		handle: Handle(q.seq),
		due:    q.now + delay,
		seq:    q.seq,
		fn:     fn,
	}
	heap.Push(&q.pending, t)
	q.byID[t.handle] = t
	return t.handle
}

// Cancel drops a pending callback. It returns false when the handle already
// fired, was already cancelled, or was never issued.
func (q *Queue) Cancel(h Handle) bool {
	t, ok := q.byID[h]
	if !ok {
		return false
	}
	delete(q.byID, h)
	if t.index >= 0 {
		heap.Remove(&q.pending, t.index)
	}
	return true
}

// Clear cancels every pending callback.
func (q *Queue) Clear() {
	for _, t := range q.pending {
		t.index = -1
	}
	q.pending = q.pending[:0]
	clear(q.byID)
}

// Advance moves the clock forward by dt and runs every callback that became
// due, earliest first. While a callback runs the clock reads its due time, so
// timers it schedules are relative to when it was meant to fire.
func (q *Queue) Advance(dt time.Duration) {
	target := q.now + dt
	for len(q.pending) > 0 && q.pending[0].due <= target {
		t := heap.Pop(&q.pending).(*timer)
		delete(q.byID, t.handle)
		q.now = t.due
		t.fn()
	}
	q.now = target
}
