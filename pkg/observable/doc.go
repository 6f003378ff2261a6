// Package observable provides the small set of push-based stream primitives
// the validation engine is built on: observers, subscriptions, a hot
// Subject, a current-value Value, a lazily connected replay-latest cache and
// a handful of operators.
//
// It is deliberately not a general reactive library. Every type here exists
// because validity aggregation needs it.
//
// # Architecture
//
// Observable is a single-method interface; Create turns a subscribe
// function into one. Subscriptions are idempotent closers.
//
// Core building blocks:
//   - Value[T]     – a tracked field: emits its current value on subscribe, then every Set
//   - Subject[T]   – hot fan-out without history
//   - Shared[T]    – lazy multicast with a replay buffer of one (ReplayLatest)
//   - Map, DistinctUntilChanged, CombineLatest2, ObserveOn
//   - Scheduler    – Immediate, Trampoline and SerialQueue delivery strategies
//
// Observer lists are guarded by a mutex, but callbacks never run while a
// lock is held, so an observer may subscribe, unsubscribe or emit from
// inside a callback.
//
// # Usage
//
//	name := observable.NewValue("")
//	lengths := observable.ReplayLatest(
//	    observable.Distinct(observable.Map[string, int](name, func(s string) int { return len(s) })),
//	)
//
//	sub := lengths.Subscribe(observable.OnNext(func(n int) {
//	    fmt.Println("length:", n)
//	}))
//	defer sub.Close()
//
//	name.Set("Bob") // length: 3
//
// # Error Handling
//
// A failing source delivers OnError downstream exactly once; nothing
// converts errors into values. A Shared that has been closed refuses to
// reconnect and Connect returns ErrClosed.
package observable
