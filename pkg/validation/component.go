package validation

import (
	"slices"

	"github.com/dmitrymomot/livevalidation/pkg/observable"
)

// Component is anything that reports validity: single validators as well as
// the Context that aggregates them.
//
// IsValid, Text and StatusChanges activate the component on first use.
// Activation is a one-time transition that establishes the subscription to
// the underlying sources.
type Component interface {
	// PropertyCount returns the number of property keys the component concerns.
	PropertyCount() int
	// Properties returns the property keys the component concerns, possibly none.
	Properties() []string
	// ContainsProperty reports whether the component concerns path. With
	// exclusively set it also requires path to be the only key.
	ContainsProperty(path string, exclusively bool) bool
	// IsValid returns the current validity.
	IsValid() bool
	// Text returns the current messages.
	Text() Text
	// StatusChanges returns a stream of states. A new subscriber receives the
	// latest state immediately, then every distinct change.
	StatusChanges() observable.Observable[State]
	// Close releases the component's subscriptions. No state is emitted
	// afterwards and the component cannot be activated again.
	Close() error
}

// stateSource is implemented by the built-in components. A Context follows
// children through it so that a child's scheduler only affects the child's
// own StatusChanges subscribers, never the Context's bookkeeping.
type stateSource interface {
	states() observable.Observable[State]
}

func statesOf(c Component) observable.Observable[State] {
	if s, ok := c.(stateSource); ok {
		return s.states()
	}
	return c.StatusChanges()
}

// propertySet is an ordered set of property keys.
type propertySet []string

func (p propertySet) count() int {
	return len(p)
}

func (p propertySet) list() []string {
	return slices.Clone([]string(p))
}

func (p propertySet) contains(path string, exclusively bool) bool {
	if !slices.Contains(p, path) {
		return false
	}
	return !exclusively || len(p) == 1
}

func newPropertySet(paths ...string) propertySet {
	out := make(propertySet, 0, len(paths))
	for _, p := range paths {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
