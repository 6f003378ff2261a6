package observable

import "sync"

// Value is a tracked field: a holder of a current value that notifies on change.
// Every subscriber immediately receives the current value and then each
// subsequent Set, in order. It is the shape a host object's property
// notification mechanism is expected to provide.
//
// Set does not compare values; every call emits. Writes are expected from a
// single goroutine at a time.
type Value[T any] struct {
	list observers[T]

	mu      sync.Mutex
	current T
	term    terminal
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set stores value and emits it to every observer.
// Set after Fail or Complete only updates the stored value.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.current = value
	done := v.term.done
	v.mu.Unlock()
	if done {
		return
	}
	v.list.next(value)
}

// Fail terminates the stream with err.
func (v *Value[T]) Fail(err error) {
	v.finish(terminal{done: true, err: err})
}

// Complete terminates the stream successfully.
func (v *Value[T]) Complete() {
	v.finish(terminal{done: true})
}

// ObserverCount returns the number of live observers.
func (v *Value[T]) ObserverCount() int {
	return v.list.len()
}

func (v *Value[T]) Subscribe(o Observer[T]) Subscription {
	v.mu.Lock()
	current := v.current
	term := v.term
	v.mu.Unlock()

	if term.done {
		term.deliver(o)
		return EmptySubscription()
	}

	e := v.list.add(o)
	o.OnNext(current)
	return NewSubscription(func() { v.list.remove(e) })
}

func (v *Value[T]) finish(t terminal) {
	v.mu.Lock()
	if v.term.done {
		v.mu.Unlock()
		return
	}
	v.term = t
	v.mu.Unlock()

	for _, e := range v.list.drain() {
		t.deliver(e.observer)
	}
}
