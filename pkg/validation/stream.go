package validation

import (
	"github.com/dmitrymomot/livevalidation/pkg/observable"
)

// StreamValidator derives validity from an arbitrary stream rather than a
// single tracked field. Property keys given with WithProperties are used for
// lookup only, e.g. a "passwords match" rule listed under both fields.
type StreamValidator struct {
	*leaf
}

// NewStreamValidator creates an inert validator computing a state from each
// value of source.
func NewStreamValidator[T any](source observable.Observable[T], predicate func(T) bool, message MessageFunc[T], opts ...Option) (*StreamValidator, error) {
	if isNil(source) {
		return nil, invalidArgument("source")
	}
	if predicate == nil {
		return nil, invalidArgument("predicate")
	}
	if message == nil {
		return nil, invalidArgument("message")
	}

	states := observable.Map(source, func(v T) State {
		valid := predicate(v)
		return NewState(valid, message(v, valid))
	})
	return newStreamValidator(states, opts)
}

// NewStateValidator creates an inert validator from a stream of states that
// are already computed.
func NewStateValidator(source observable.Observable[State], opts ...Option) (*StreamValidator, error) {
	if isNil(source) {
		return nil, invalidArgument("source")
	}
	return newStreamValidator(source, opts)
}

// NewValidityValidator creates an inert validator from a stream of validity
// flags, reporting message whenever the flag is false.
func NewValidityValidator(source observable.Observable[bool], message string, opts ...Option) (*StreamValidator, error) {
	return NewStreamValidator(source, func(valid bool) bool { return valid }, StaticMessage[bool](message), opts...)
}

func newStreamValidator(states observable.Observable[State], opts []Option) (*StreamValidator, error) {
	o := newOptions("stream_validator", opts)
	for _, p := range o.properties {
		if _, err := Path(p); err != nil {
			return nil, err
		}
	}
	return &StreamValidator{
		leaf: newLeaf(newPropertySet(o.properties...), states, o),
	}, nil
}
