package observable

import (
	"context"
	"sync"
)

// Scheduler decides where and when a unit of work runs.
// The validation engine uses it only to deliver state changes; it is
// agnostic to whether work runs inline, on a UI loop or on a worker.
type Scheduler interface {
	Schedule(task func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(task func())

func (f SchedulerFunc) Schedule(task func()) { f(task) }

type immediate struct{}

func (immediate) Schedule(task func()) { task() }

// Immediate runs every task inline on the calling goroutine.
var Immediate Scheduler = immediate{}

// Trampoline runs tasks on the calling goroutine, but a task scheduled while
// another one is running is queued and executed after it, in FIFO order.
// This keeps reentrant notifications ordered without recursion.
type Trampoline struct {
	mu      sync.Mutex
	queue   []func()
	running bool
}

// NewTrampoline creates an idle Trampoline.
func NewTrampoline() *Trampoline {
	return &Trampoline{}
}

func (t *Trampoline) Schedule(task func()) {
	t.mu.Lock()
	t.queue = append(t.queue, task)
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	for {
		t.mu.Lock()
		if len(t.queue) == 0 {
			t.running = false
			t.mu.Unlock()
			return
		}
		next := t.queue[0]
		t.queue[0] = nil
		t.queue = t.queue[1:]
		t.mu.Unlock()

		next()
	}
}

// SerialQueue runs tasks one at a time, in submission order, on a dedicated
// goroutine. Schedule never blocks and never drops work while the queue is
// open. Tasks still pending when the queue stops are discarded.
type SerialQueue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	wake   chan struct{}
	done   chan struct{}
	cancel context.CancelFunc
}

// NewSerialQueue starts the worker goroutine. The queue stops when ctx is
// cancelled or Close is called.
func NewSerialQueue(ctx context.Context) *SerialQueue {
	ctx, cancel := context.WithCancel(ctx)
	q := &SerialQueue{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go q.run(ctx)
	return q
}

func (q *SerialQueue) Schedule(task func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Close stops the worker and waits for the running task to return.
// It must not be called from a task running on this queue.
func (q *SerialQueue) Close() error {
	q.cancel()
	<-q.done
	return nil
}

// Done is closed once the worker goroutine has exited.
func (q *SerialQueue) Done() <-chan struct{} {
	return q.done
}

func (q *SerialQueue) run(ctx context.Context) {
	defer close(q.done)
	defer func() {
		q.mu.Lock()
		q.closed = true
		q.pending = nil
		q.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}

		for {
			if ctx.Err() != nil {
				return
			}
			q.mu.Lock()
			if len(q.pending) == 0 {
				q.mu.Unlock()
				break
			}
			next := q.pending[0]
			q.pending[0] = nil
			q.pending = q.pending[1:]
			q.mu.Unlock()

			next()
		}
	}
}
