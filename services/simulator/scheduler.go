package simulator

import (
	"container/heap"
	"time"
)

// timerID identifies a scheduled callback. Zero means "no timer".
type timerID uint64

type timer struct {
	id     timerID
	due    time.Duration
	period time.Duration
	seq    uint64
	fn     func()
	index  int
}

// timerQueue orders timers by due time, then by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
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
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// scheduler is a virtual-time timer facility. Nothing fires until advance is
// called; callbacks run to completion one at a time in due order.
type scheduler struct {
	now    time.Duration
	nextID timerID
	seq    uint64
	queue  timerQueue
	live   map[timerID]*timer
}

func newScheduler() *scheduler {
	return &scheduler{live: make(map[timerID]*timer)}
}

// after schedules fn once, d from now.
func (s *scheduler) after(d time.Duration, fn func()) timerID {
	return s.schedule(d, 0, fn)
}

// every schedules fn repeatedly, first at now+period.
func (s *scheduler) every(period time.Duration, fn func()) timerID {
	return s.schedule(period, period, fn)
}

func (s *scheduler) schedule(d, period time.Duration, fn func()) timerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.seq++
	t := &timer{
		id:     s.nextID,
		due:    s.now + d,
		period: period,
		seq:    s.seq,
		fn:     fn,
	}
	s.live[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// cancel drops a pending timer. It is safe to call from inside the timer's own
// callback and with ids that already fired.
func (s *scheduler) cancel(id timerID) bool {
	t, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// advance moves the clock forward by d, firing every timer due on the way.
func (s *scheduler) advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*timer)
		s.now = t.due
		if t.period == 0 {
			delete(s.live, t.id)
			t.fn()
			continue
		}
		t.fn()
		// the callback may have cancelled its own interval
		if _, ok := s.live[t.id]; ok {
			s.seq++
			t.due += t.period
			t.seq = s.seq
			heap.Push(&s.queue, t)
		}
	}
	s.now = target
}

func (s *scheduler) pending() int {
	return len(s.live)
}

// reset cancels everything without moving the clock.
func (s *scheduler) reset() {
	s.queue = nil
	s.live = make(map[timerID]*timer)
}
