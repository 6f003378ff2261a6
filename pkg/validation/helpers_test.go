package validation_test

import (
	"sync"

	"github.com/dmitrymomot/livevalidation/pkg/observable"
	"github.com/dmitrymomot/livevalidation/pkg/validation"
)

// signUpForm is a host exposing its fields as tracked values.
type signUpForm struct {
	Name            *observable.Value[string]
	Password        *observable.Value[string]
	ConfirmPassword *observable.Value[string]

	ctx *validation.Context
}

func newSignUpForm() *signUpForm {
	return &signUpForm{
		Name:            observable.NewValue(""),
		Password:        observable.NewValue(""),
		ConfirmPassword: observable.NewValue(""),
		ctx:             validation.NewContext(),
	}
}

func (f *signUpForm) ValidationContext() *validation.Context {
	return f.ctx
}

// stateRecorder collects the states emitted to it.
type stateRecorder struct {
	mu     sync.Mutex
	states []validation.State
	err    error
}

func (r *stateRecorder) OnNext(s validation.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *stateRecorder) OnError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *stateRecorder) OnCompleted() {}

func (r *stateRecorder) States() []validation.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]validation.State, len(r.states))
	copy(out, r.states)
	return out
}

func (r *stateRecorder) Last() validation.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[len(r.states)-1]
}

// countingSource counts upstream subscriptions.
type countingSource[T any] struct {
	inner observable.Observable[T]
	mu    sync.Mutex
	subs  int
}

func (c *countingSource[T]) Subscribe(o observable.Observer[T]) observable.Subscription {
	c.mu.Lock()
	c.subs++
	c.mu.Unlock()
	return c.inner.Subscribe(o)
}

func (c *countingSource[T]) Subscriptions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subs
}

func nonEmpty(s string) bool { return s != "" }

func field[T any](path string, values observable.Observable[T]) validation.Field[T] {
	f, err := validation.NewField(path, values)
	if err != nil {
		panic(err)
	}
	return f
}

// fixed is a component with a settable state, used as a context child.
func fixed(state validation.State, paths ...string) (*validation.StreamValidator, *observable.Value[validation.State]) {
	src := observable.NewValue(state)
	v, err := validation.NewStateValidator(src, validation.WithProperties(paths...))
	if err != nil {
		panic(err)
	}
	return v, src
}
