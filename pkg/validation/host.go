package validation

import "github.com/dmitrymomot/livevalidation/pkg/observable"

// Host is a record that owns a validation Context, typically a form or view
// model whose fields are exposed as tracked values.
type Host interface {
	ValidationContext() *Context
}

// Rule creates a property validator for field and adds it to the host's
// context.
//
//	form := NewSignUpForm()
//	name, _ := validation.NewField("Name", form.Name)
//	_, err := validation.Rule(form, name,
//	    func(s string) bool { return s != "" },
//	    validation.StaticMessage[string]("Name is required."),
//	)
func Rule[T any](host Host, field Field[T], predicate func(T) bool, message MessageFunc[T], opts ...Option) (*PropertyValidator[T], error) {
	ctx, err := contextOf(host)
	if err != nil {
		return nil, err
	}
	v, err := NewPropertyValidator(field, predicate, message, opts...)
	if err != nil {
		return nil, err
	}
	ctx.Add(v)
	return v, nil
}

// Rule2 creates a validator over two fields and adds it to the host's context.
func Rule2[T1, T2 any](host Host, first Field[T1], second Field[T2], predicate func(T1, T2) bool, message MessageFunc2[T1, T2], opts ...Option) (*MultiPropertyValidator, error) {
	ctx, err := contextOf(host)
	if err != nil {
		return nil, err
	}
	v, err := NewPropertyValidator2(first, second, predicate, message, opts...)
	if err != nil {
		return nil, err
	}
	ctx.Add(v)
	return v, nil
}

// StreamRule creates a stream-driven validator and adds it to the host's
// context. Use WithProperties to make it resolvable by field.
func StreamRule[T any](host Host, source observable.Observable[T], predicate func(T) bool, message MessageFunc[T], opts ...Option) (*StreamValidator, error) {
	ctx, err := contextOf(host)
	if err != nil {
		return nil, err
	}
	v, err := NewStreamValidator(source, predicate, message, opts...)
	if err != nil {
		return nil, err
	}
	ctx.Add(v)
	return v, nil
}

// StateRule adds a validator driven by precomputed states to the host's
// context.
func StateRule(host Host, source observable.Observable[State], opts ...Option) (*StreamValidator, error) {
	ctx, err := contextOf(host)
	if err != nil {
		return nil, err
	}
	v, err := NewStateValidator(source, opts...)
	if err != nil {
		return nil, err
	}
	ctx.Add(v)
	return v, nil
}

func contextOf(host Host) (*Context, error) {
	if isNil(host) {
		return nil, invalidArgument("host")
	}
	ctx := host.ValidationContext()
	if ctx == nil {
		return nil, invalidArgument("host context")
	}
	return ctx, nil
}
