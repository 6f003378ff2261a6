package observable

import "sync"

// Shared is a lazily connected, multicast view of a source with a replay
// buffer of one. The first Subscribe or Connect establishes exactly one
// upstream subscription; the latest value is cached and pushed to every
// observer that joins later, followed by live values. Older values are
// never replayed.
//
// Close disconnects from the source, detaches every observer without a
// terminal notification and makes the Shared permanently inert.
type Shared[T any] struct {
	source Observable[T]
	list   observers[T]

	mu        sync.Mutex
	connected bool
	closed    bool
	hasValue  bool
	latest    T
	term      terminal
	conn      Subscription
}

// ReplayLatest wraps source in a Shared. Nothing is subscribed until the
// Shared is connected.
func ReplayLatest[T any](source Observable[T]) *Shared[T] {
	return &Shared[T]{source: source}
}

// Subscribe registers o, replays the latest value if there is one and
// connects to the source if this is the first activation.
func (s *Shared[T]) Subscribe(o Observer[T]) Subscription {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return EmptySubscription()
	}
	latest, hasValue, term := s.latest, s.hasValue, s.term
	if term.done {
		s.mu.Unlock()
		if hasValue {
			o.OnNext(latest)
		}
		term.deliver(o)
		return EmptySubscription()
	}
	e := s.list.add(o)
	s.mu.Unlock()

	if hasValue && e.active.Load() {
		o.OnNext(latest)
	}
	_ = s.Connect()

	return NewSubscription(func() { s.list.remove(e) })
}

// Connect establishes the upstream subscription if it does not exist yet.
// It is idempotent; after Close it returns ErrClosed.
func (s *Shared[T]) Connect() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.connected {
		s.mu.Unlock()
		return nil
	}
	s.connected = true
	s.mu.Unlock()

	conn := s.source.Subscribe(ObserverFuncs[T]{
		Next:      s.onNext,
		Error:     s.onError,
		Completed: s.onCompleted,
	})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	s.conn = conn
	s.mu.Unlock()
	return nil
}

// ObserveOn returns the shared stream delivered through scheduler.
// Notifications still queued when the Shared closes are dropped, so nothing
// reaches an observer after Close even on an asynchronous scheduler.
func (s *Shared[T]) ObserveOn(scheduler Scheduler) Observable[T] {
	return observeOn[T](s, scheduler, func() bool { return !s.Closed() })
}

// Latest returns the most recent value and whether one has been seen.
func (s *Shared[T]) Latest() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasValue
}

// Err returns the error the source terminated with, if any.
func (s *Shared[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term.err
}

// Connected reports whether the upstream subscription has been established.
func (s *Shared[T]) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Closed reports whether Close has been called.
func (s *Shared[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// ObserverCount returns the number of live downstream observers.
func (s *Shared[T]) ObserverCount() int {
	return s.list.len()
}

// Close disconnects from the source and detaches every observer.
func (s *Shared[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	s.list.drain()
	if conn != nil {
		_ = conn.Close()
	}
	return nil
}

func (s *Shared[T]) onNext(v T) {
	s.mu.Lock()
	if s.closed || s.term.done {
		s.mu.Unlock()
		return
	}
	s.latest = v
	s.hasValue = true
	s.mu.Unlock()

	s.list.next(v)
}

func (s *Shared[T]) onError(err error) {
	s.finish(terminal{done: true, err: err})
}

func (s *Shared[T]) onCompleted() {
	s.finish(terminal{done: true})
}

func (s *Shared[T]) finish(t terminal) {
	s.mu.Lock()
	if s.closed || s.term.done {
		s.mu.Unlock()
		return
	}
	s.term = t
	s.mu.Unlock()

	for _, e := range s.list.drain() {
		t.deliver(e.observer)
	}
}
