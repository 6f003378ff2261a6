package validation

import (
	"log/slog"

	"github.com/dmitrymomot/livevalidation/pkg/logger"
	"github.com/dmitrymomot/livevalidation/pkg/observable"
)

// leaf holds the machinery shared by property and stream validators: the
// state source is deduplicated and wrapped in a replay-latest cache so that
// every reader shares one upstream subscription.
type leaf struct {
	properties propertySet
	cache      *observable.Shared[State]
	changes    observable.Observable[State]
	log        *slog.Logger
}

func newLeaf(properties propertySet, states observable.Observable[State], o *options) *leaf {
	l := &leaf{
		properties: properties,
		log: o.logger.With(
			logger.Component(o.name),
			logger.Properties(properties...),
		),
	}

	l.cache = observable.ReplayLatest(
		observable.DistinctUntilChanged(l.logFailures(states), statesEqual),
	)

	scheduled := l.cache.ObserveOn(o.scheduler)
	l.changes = observable.Create(func(obs observable.Observer[State]) observable.Subscription {
		l.logActivation()
		return scheduled.Subscribe(obs)
	})
	return l
}

func (l *leaf) PropertyCount() int {
	return l.properties.count()
}

func (l *leaf) Properties() []string {
	return l.properties.list()
}

func (l *leaf) ContainsProperty(path string, exclusively bool) bool {
	return l.properties.contains(path, exclusively)
}

// IsValid activates the validator and returns its latest validity.
// A validator that has not computed a state yet is valid.
func (l *leaf) IsValid() bool {
	return l.State().IsValid()
}

// Text activates the validator and returns its latest messages.
func (l *leaf) Text() Text {
	return l.State().Text()
}

// State activates the validator and returns its latest state.
func (l *leaf) State() State {
	l.activate()
	if st, ok := l.cache.Latest(); ok {
		return st
	}
	return ValidState()
}

func (l *leaf) StatusChanges() observable.Observable[State] {
	return l.changes
}

// states is the unscheduled state stream a parent Context follows.
func (l *leaf) states() observable.Observable[State] {
	return observable.Create(func(obs observable.Observer[State]) observable.Subscription {
		l.logActivation()
		return l.cache.Subscribe(obs)
	})
}

// Err returns the error the underlying source failed with, if any.
func (l *leaf) Err() error {
	return l.cache.Err()
}

// Active reports whether the validator has been activated.
func (l *leaf) Active() bool {
	return l.cache.Connected()
}

// Closed reports whether the validator has been disposed.
func (l *leaf) Closed() bool {
	return l.cache.Closed()
}

func (l *leaf) Close() error {
	if l.cache.Closed() {
		return nil
	}
	l.log.Debug("validator closed")
	return l.cache.Close()
}

func (l *leaf) activate() {
	l.logActivation()
	_ = l.cache.Connect()
}

func (l *leaf) logActivation() {
	if !l.cache.Connected() && !l.cache.Closed() {
		l.log.Debug("validator activated")
	}
}

func (l *leaf) logFailures(states observable.Observable[State]) observable.Observable[State] {
	return observable.Create(func(obs observable.Observer[State]) observable.Subscription {
		return states.Subscribe(observable.ObserverFuncs[State]{
			Next: obs.OnNext,
			Error: func(err error) {
				l.log.Error("validation source failed", logger.Error(err))
				obs.OnError(err)
			},
			Completed: obs.OnCompleted,
		})
	})
}
