package engine

import (
	"container/heap"
	"time"
)

type timer struct {
	at  time.Time
	seq uint64
	fn  func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler holds fire-and-forget single-shot callbacks ordered by deadline
// Callbacks run inside RunDue on the loop goroutine, never concurrently
// Stale callbacks are not cancelled; they check the round epoch or phase themselves
type Scheduler struct {
	timers timerHeap
	seq    uint64
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules fn at an absolute time
func (s *Scheduler) At(at time.Time, fn func()) {
	s.seq++
	heap.Push(&s.timers, &timer{at: at, seq: s.seq, fn: fn})
}

// RunDue fires every timer whose deadline is at or before now, in deadline then insertion order
// Timers scheduled by callbacks with deadlines at or before now also fire in this call
func (s *Scheduler) RunDue(now time.Time) int {
	fired := 0
	for len(s.timers) > 0 && !s.timers[0].at.After(now) {
		t := heap.Pop(&s.timers).(*timer)
		t.fn()
		fired++
	}
	return fired
}

// Pending returns the number of timers not yet fired
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
