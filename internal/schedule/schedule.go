// Package schedule provides cancellable delayed tasks for the presentation
// controllers. Realtime is backed by the runtime timers; Manual is a virtual
// clock driven explicitly by tests and by offline simulations.
package schedule

import (
	"container/heap"
	"sync"
	"time"
)

// Task is a handle to a pending callback.
type Task interface {
	// Stop cancels the task. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
	Now() time.Time
}

// Realtime schedules callbacks on the runtime timer wheel.
type Realtime struct{}

func (Realtime) AfterFunc(d time.Duration, fn func()) Task {
	return time.AfterFunc(d, fn)
}

func (Realtime) Now() time.Time {
	return time.Now()
}

// Manual is a virtual clock. Callbacks only run inside Advance, on the
// calling goroutine, in due-time order (ties in scheduling order).
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	queue taskQueue
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{owner: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	heap.Push(&m.queue, t)
	return t
}

// Advance moves the clock forward by d, running every task that falls due.
// Tasks scheduled by callbacks are honoured if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		if m.queue.Len() == 0 || m.queue[0].due.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		t := heap.Pop(&m.queue).(*manualTask)
		m.now = t.due
		t.fired = true
		fn := t.fn
		m.mu.Unlock()

		fn()
	}
}

// Pending returns the number of tasks waiting to run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Len()
}

type manualTask struct {
	owner *Manual
	due   time.Time
	seq   uint64
	fn    func()
	index int
	fired bool
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.fired || t.index < 0 {
		return false
	}
	heap.Remove(&t.owner.queue, t.index)
	return true
}

type taskQueue []*manualTask

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*manualTask)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Stop cancels t if it is non-nil. It is a convenience for optional handles.
func Stop(t Task) {
	if t != nil {
		t.Stop()
	}
}
