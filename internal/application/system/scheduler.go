package system

import (
	"container/heap"

	"github.com/younwookim/arena/internal/domain/entity"
)

// Clock is the simulation clock, advanced once per tick
type Clock struct {
	now  float64
	tick uint64
}

// Now returns the simulation time in seconds
func (c *Clock) Now() float64 { return c.now }

// Tick returns the number of ticks advanced so far
func (c *Clock) Tick() uint64 { return c.tick }

// Advance moves the clock forward by dt seconds
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
	c.tick++
}

// TaskID identifies a scheduled callback
type TaskID uint64

type task struct {
	id    TaskID
	due   float64
	seq   uint64
	owner entity.EntityID
	fn    func()
	index int
}

// taskQueue orders tasks by due time, then by scheduling order
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
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

// Scheduler runs deferred callbacks against the simulation clock.
// Callbacks never block; they run from Run on the simulation goroutine.
type Scheduler struct {
	clock *Clock
	queue taskQueue
	byID  map[TaskID]*task
	seq   uint64
}

// NewScheduler creates a scheduler driven by clock
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		byID:  make(map[TaskID]*task),
	}
}

// After schedules fn to run delay seconds from now on behalf of owner.
// Owner 0 means the callback belongs to no entity.
func (s *Scheduler) After(delay float64, owner entity.EntityID, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &task{
		id:    TaskID(s.seq),
		due:   s.clock.Now() + delay,
		seq:   s.seq,
		owner: owner,
		fn:    fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending callback. Returns false if it already ran.
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byID, id)
	return true
}

// CancelOwner removes every pending callback of owner
func (s *Scheduler) CancelOwner(owner entity.EntityID) int {
	if owner == 0 {
		return 0
	}
	var ids []TaskID
	for id, t := range s.byID {
		if t.owner == owner {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		s.Cancel(id)
	}
	return len(ids)
}

// Run executes every callback due at or before now. Callbacks scheduled
// during the run that are already due execute in the same run.
func (s *Scheduler) Run() int {
	ran := 0
	now := s.clock.Now()
	for s.queue.Len() > 0 && s.queue[0].due <= now {
		t := heap.Pop(&s.queue).(*task)
		delete(s.byID, t.id)
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting to run
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}
