// Package scheduler implements the FIFO turn scheduler (C7): items
// enqueued during a turn are processed in the following turn, never
// re-entrantly.
package scheduler

// Task is one unit of work run inside a turn. It may enqueue further
// tasks via the Scheduler passed to Run.
type Task func(s *Scheduler)

// Scheduler owns the pending-task queue for the current and next turn.
// It is not safe for concurrent use; callers serialize access to it
// the same way they serialize turns (typically from a single
// app-runtime goroutine).
type Scheduler struct {
	current []Task
	next    []Task
}

// New returns an empty scheduler.
func New() *Scheduler { return &Scheduler{} }

// Enqueue schedules t. If called from outside RunTurn, t joins the
// queue that the next RunTurn call will drain. If called from inside
// a running task (i.e. from within RunTurn), t is deferred to the
// turn after the one currently executing — it is never run
// re-entrantly within the same RunTurn call.
func (s *Scheduler) Enqueue(t Task) {
	s.next = append(s.next, t)
}

// Pending reports whether a follow-up turn has work queued.
func (s *Scheduler) Pending() bool { return len(s.next) > 0 }

// RunTurn drains exactly the tasks that were queued before this call
// (including any queued by a previous RunTurn's tasks), running each
// in enqueue order. Tasks enqueued by a task running inside this call
// are deferred to the following turn.
func (s *Scheduler) RunTurn() {
	s.current, s.next = s.next, nil
	for _, t := range s.current {
		t(s)
	}
	s.current = nil
}

// RunUntilDry repeatedly runs turns until no further work is queued,
// matching "after onTurn returns, if the queue is non-empty, a
// follow-up turn is scheduled immediately".
func (s *Scheduler) RunUntilDry() {
	for s.Pending() {
		s.RunTurn()
	}
}
