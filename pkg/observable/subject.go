package observable

import (
	"sync"
	"sync/atomic"
)

// entry is a registered observer. The active flag lets a fan-out that took a
// snapshot before an unsubscribe skip the removed observer.
type entry[T any] struct {
	observer Observer[T]
	active   atomic.Bool
}

// observers is an ordered, mutex-guarded observer list shared by Subject,
// Value and Shared. Callbacks always run outside the lock.
type observers[T any] struct {
	mu      sync.Mutex
	entries []*entry[T]
}

func (l *observers[T]) add(o Observer[T]) *entry[T] {
	e := &entry[T]{observer: o}
	e.active.Store(true)
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
	return e
}

func (l *observers[T]) remove(e *entry[T]) {
	e.active.Store(false)
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cur := range l.entries {
		if cur == e {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *observers[T]) snapshot() []*entry[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*entry[T], len(l.entries))
	copy(out, l.entries)
	return out
}

// drain detaches every observer and returns them for terminal delivery.
func (l *observers[T]) drain() []*entry[T] {
	l.mu.Lock()
	out := l.entries
	l.entries = nil
	l.mu.Unlock()
	for _, e := range out {
		e.active.Store(false)
	}
	return out
}

func (l *observers[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *observers[T]) next(v T) {
	for _, e := range l.snapshot() {
		if e.active.Load() {
			e.observer.OnNext(v)
		}
	}
}

// terminal tracks whether a stream has finished and how.
type terminal struct {
	done bool
	err  error
}

func (t terminal) deliver(o interface {
	OnError(error)
	OnCompleted()
}) {
	if t.err != nil {
		o.OnError(t.err)
		return
	}
	o.OnCompleted()
}

// Subject is a hot Observable that fans every value out to the observers
// subscribed at the time of emission. It keeps no history; a terminal
// notification is latched and delivered to later subscribers.
type Subject[T any] struct {
	list observers[T]

	mu   sync.Mutex
	term terminal
}

// NewSubject creates an empty Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

func (s *Subject[T]) Subscribe(o Observer[T]) Subscription {
	s.mu.Lock()
	term := s.term
	s.mu.Unlock()
	if term.done {
		term.deliver(o)
		return EmptySubscription()
	}

	e := s.list.add(o)
	return NewSubscription(func() { s.list.remove(e) })
}

// OnNext emits v to the current observers.
func (s *Subject[T]) OnNext(v T) {
	s.mu.Lock()
	done := s.term.done
	s.mu.Unlock()
	if done {
		return
	}
	s.list.next(v)
}

// OnError terminates the subject with err.
func (s *Subject[T]) OnError(err error) {
	s.finish(terminal{done: true, err: err})
}

// OnCompleted terminates the subject successfully.
func (s *Subject[T]) OnCompleted() {
	s.finish(terminal{done: true})
}

// ObserverCount returns the number of live observers.
func (s *Subject[T]) ObserverCount() int {
	return s.list.len()
}

func (s *Subject[T]) finish(t terminal) {
	s.mu.Lock()
	if s.term.done {
		s.mu.Unlock()
		return
	}
	s.term = t
	s.mu.Unlock()

	for _, e := range s.list.drain() {
		t.deliver(e.observer)
	}
}
