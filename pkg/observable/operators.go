package observable

import (
	"sync"
	"sync/atomic"
)

// Map transforms every value of source with fn.
func Map[T, U any](source Observable[T], fn func(T) U) Observable[U] {
	return Create(func(o Observer[U]) Subscription {
		return source.Subscribe(ObserverFuncs[T]{
			Next:      func(v T) { o.OnNext(fn(v)) },
			Error:     o.OnError,
			Completed: o.OnCompleted,
		})
	})
}

// DistinctUntilChanged suppresses values equal to the previous one emitted
// to the same subscriber. The first value always passes.
func DistinctUntilChanged[T any](source Observable[T], equal func(a, b T) bool) Observable[T] {
	return Create(func(o Observer[T]) Subscription {
		var (
			mu   sync.Mutex
			last T
			seen bool
		)
		return source.Subscribe(ObserverFuncs[T]{
			Next: func(v T) {
				mu.Lock()
				if seen && equal(last, v) {
					mu.Unlock()
					return
				}
				last, seen = v, true
				mu.Unlock()
				o.OnNext(v)
			},
			Error:     o.OnError,
			Completed: o.OnCompleted,
		})
	})
}

// Distinct is DistinctUntilChanged for comparable values.
func Distinct[T comparable](source Observable[T]) Observable[T] {
	return DistinctUntilChanged(source, func(a, b T) bool { return a == b })
}

// CombineLatest2 emits fn(a, b) whenever either source emits, once both
// have produced at least one value. It completes when both sources complete
// and fails as soon as either fails.
func CombineLatest2[A, B, R any](a Observable[A], b Observable[B], fn func(A, B) R) Observable[R] {
	return Create(func(o Observer[R]) Subscription {
		var (
			mu      sync.Mutex
			lastA   A
			lastB   B
			hasA    bool
			hasB    bool
			doneA   bool
			doneB   bool
			stopped bool
			subs    Composite
		)

		emit := func() {
			mu.Lock()
			if stopped || !hasA || !hasB {
				mu.Unlock()
				return
			}
			r := fn(lastA, lastB)
			mu.Unlock()
			o.OnNext(r)
		}
		fail := func(err error) {
			mu.Lock()
			if stopped {
				mu.Unlock()
				return
			}
			stopped = true
			mu.Unlock()
			_ = subs.Close()
			o.OnError(err)
		}
		complete := func(markA bool) {
			mu.Lock()
			if markA {
				doneA = true
			} else {
				doneB = true
			}
			finished := doneA && doneB && !stopped
			if finished {
				stopped = true
			}
			mu.Unlock()
			if finished {
				o.OnCompleted()
			}
		}

		subs.Add(a.Subscribe(ObserverFuncs[A]{
			Next: func(v A) {
				mu.Lock()
				lastA, hasA = v, true
				mu.Unlock()
				emit()
			},
			Error:     fail,
			Completed: func() { complete(true) },
		}))
		subs.Add(b.Subscribe(ObserverFuncs[B]{
			Next: func(v B) {
				mu.Lock()
				lastB, hasB = v, true
				mu.Unlock()
				emit()
			},
			Error:     fail,
			Completed: func() { complete(false) },
		}))

		return NewSubscription(func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			_ = subs.Close()
		})
	})
}

// ObserveOn delivers the notifications of source through scheduler.
// Notifications still queued when the subscription closes are dropped.
func ObserveOn[T any](source Observable[T], scheduler Scheduler) Observable[T] {
	return observeOn(source, scheduler, nil)
}

// observeOn is ObserveOn with an extra gate checked when a queued
// notification runs; a nil live always passes.
func observeOn[T any](source Observable[T], scheduler Scheduler, live func() bool) Observable[T] {
	if scheduler == nil {
		return source
	}
	return Create(func(o Observer[T]) Subscription {
		var closed atomic.Bool
		deliver := func(fn func()) {
			scheduler.Schedule(func() {
				if closed.Load() || (live != nil && !live()) {
					return
				}
				fn()
			})
		}
		sub := source.Subscribe(ObserverFuncs[T]{
			Next:      func(v T) { deliver(func() { o.OnNext(v) }) },
			Error:     func(err error) { deliver(func() { o.OnError(err) }) },
			Completed: func() { deliver(o.OnCompleted) },
		})
		return NewSubscription(func() {
			closed.Store(true)
			_ = sub.Close()
		})
	})
}
