package observable

import (
	"sync"
)

// Observer receives notifications from an Observable.
// After OnError or OnCompleted no further notifications are delivered.
type Observer[T any] interface {
	OnNext(value T)
	OnError(err error)
	OnCompleted()
}

// Observable is a push-based stream of values.
type Observable[T any] interface {
	// Subscribe registers the observer and returns a Subscription that
	// stops delivery when closed.
	Subscribe(observer Observer[T]) Subscription
}

// Subscription represents a live registration of an observer.
type Subscription interface {
	// Close stops delivery and releases upstream resources.
	// Close is idempotent and safe to call multiple times.
	Close() error
}

// ObserverFuncs adapts plain callbacks to the Observer interface.
// Nil callbacks are ignored.
type ObserverFuncs[T any] struct {
	Next      func(T)
	Error     func(error)
	Completed func()
}

func (o ObserverFuncs[T]) OnNext(value T) {
	if o.Next != nil {
		o.Next(value)
	}
}

func (o ObserverFuncs[T]) OnError(err error) {
	if o.Error != nil {
		o.Error(err)
	}
}

func (o ObserverFuncs[T]) OnCompleted() {
	if o.Completed != nil {
		o.Completed()
	}
}

// OnNext is a shorthand for an observer that only handles values.
func OnNext[T any](fn func(T)) Observer[T] {
	return ObserverFuncs[T]{Next: fn}
}

// Create builds an Observable from a subscribe function.
// The function is invoked once per subscriber.
func Create[T any](subscribe func(Observer[T]) Subscription) Observable[T] {
	return observableFunc[T](subscribe)
}

type observableFunc[T any] func(Observer[T]) Subscription

func (f observableFunc[T]) Subscribe(observer Observer[T]) Subscription {
	sub := f(observer)
	if sub == nil {
		return EmptySubscription()
	}
	return sub
}

// Of emits the given values in order and completes.
func Of[T any](values ...T) Observable[T] {
	return Create(func(o Observer[T]) Subscription {
		for _, v := range values {
			o.OnNext(v)
		}
		o.OnCompleted()
		return EmptySubscription()
	})
}

// Fail emits err immediately on subscribe.
func Fail[T any](err error) Observable[T] {
	return Create(func(o Observer[T]) Subscription {
		o.OnError(err)
		return EmptySubscription()
	})
}

type subscription struct {
	once sync.Once
	fn   func()
}

// NewSubscription returns a Subscription that runs fn on the first Close.
func NewSubscription(fn func()) Subscription {
	return &subscription{fn: fn}
}

// EmptySubscription returns a Subscription with nothing to release.
func EmptySubscription() Subscription {
	return &subscription{}
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		if s.fn != nil {
			s.fn()
		}
	})
	return nil
}

// Composite closes a group of subscriptions together, in insertion order.
// Subscriptions added after Close are closed immediately.
type Composite struct {
	mu     sync.Mutex
	subs   []Subscription
	closed bool
}

// Add registers sub with the group.
func (c *Composite) Add(sub Subscription) {
	if sub == nil {
		return
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = sub.Close()
		return
	}
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
}

// Len returns the number of subscriptions held by the group.
func (c *Composite) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

func (c *Composite) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}
	return nil
}
