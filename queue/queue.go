// Package queue buffers pending state updaters between frames (C9):
// update() accumulates updaters into the current turn's queue; the
// app runtime drains it in FIFO order at the start of each frame.
package queue

// Updater is the function form of a queued update: a pure function of
// the previous state.
type Updater[S any] func(prev S) S

// Update is one queued entry: a direct replacement value, or a
// function form, never both.
type Update[S any] struct {
	value  S
	fn     Updater[S]
	hasFn  bool
	hasVal bool
}

// Value queues a direct state replacement.
func Value[S any](v S) Update[S] { return Update[S]{value: v, hasVal: true} }

// Func queues a pure function of the previous state.
func Func[S any](fn Updater[S]) Update[S] { return Update[S]{fn: fn, hasFn: true} }

// Apply resolves one update against prev.
func (u Update[S]) Apply(prev S) S {
	if u.hasFn {
		return u.fn(prev)
	}
	if u.hasVal {
		return u.value
	}
	return prev
}

// Queue is a FIFO buffer of pending updates for one app instance.
type Queue[S any] struct {
	pending []Update[S]
}

// New returns an empty queue.
func New[S any]() *Queue[S] { return &Queue[S]{} }

// Push appends u to the tail of the queue.
func (q *Queue[S]) Push(u Update[S]) {
	q.pending = append(q.pending, u)
}

// Len reports the number of updates currently queued.
func (q *Queue[S]) Len() int { return len(q.pending) }

// Drain applies every queued update to state in FIFO order, clearing
// the queue, and returns the resulting state.
func (q *Queue[S]) Drain(state S) S {
	for _, u := range q.pending {
		state = u.Apply(state)
	}
	q.pending = nil
	return state
}
