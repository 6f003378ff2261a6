package validation

import (
	"reflect"

	"github.com/dmitrymomot/livevalidation/pkg/observable"
)

// Field is a tracked property of a host: its key and a stream that yields the
// current value on subscribe and again on every change.
type Field[T any] struct {
	Path   string
	Values observable.Observable[T]
}

// NewField checks path and binds it to values.
func NewField[T any](path string, values observable.Observable[T]) (Field[T], error) {
	key, err := Path(path)
	if err != nil {
		return Field[T]{}, err
	}
	if isNil(values) {
		return Field[T]{}, invalidArgument("values")
	}
	return Field[T]{Path: key, Values: values}, nil
}

func (f Field[T]) check(name string) error {
	if isNil(f.Values) {
		return invalidArgument(name)
	}
	if _, err := Path(f.Path); err != nil {
		return err
	}
	return nil
}

// PropertyValidator validates a single tracked field with a predicate.
type PropertyValidator[T any] struct {
	*leaf
	field Field[T]
}

// NewPropertyValidator creates an inert validator for field. Nothing is
// subscribed until the validator is read or observed.
func NewPropertyValidator[T any](field Field[T], predicate func(T) bool, message MessageFunc[T], opts ...Option) (*PropertyValidator[T], error) {
	if err := field.check("field"); err != nil {
		return nil, err
	}
	if predicate == nil {
		return nil, invalidArgument("predicate")
	}
	if message == nil {
		return nil, invalidArgument("message")
	}

	states := observable.Map(field.Values, func(v T) State {
		valid := predicate(v)
		return NewState(valid, message(v, valid))
	})

	o := newOptions("property_validator", opts)
	return &PropertyValidator[T]{
		leaf:  newLeaf(newPropertySet(field.Path), states, o),
		field: field,
	}, nil
}

// Field returns the field the validator tracks.
func (v *PropertyValidator[T]) Field() Field[T] {
	return v.field
}

// MultiPropertyValidator validates a rule spanning two tracked fields. It
// concerns both keys and recomputes whenever either field changes.
type MultiPropertyValidator struct {
	*leaf
}

// NewPropertyValidator2 creates an inert validator over two fields.
func NewPropertyValidator2[T1, T2 any](first Field[T1], second Field[T2], predicate func(T1, T2) bool, message MessageFunc2[T1, T2], opts ...Option) (*MultiPropertyValidator, error) {
	if err := first.check("first"); err != nil {
		return nil, err
	}
	if err := second.check("second"); err != nil {
		return nil, err
	}
	if predicate == nil {
		return nil, invalidArgument("predicate")
	}
	if message == nil {
		return nil, invalidArgument("message")
	}

	states := observable.CombineLatest2(first.Values, second.Values, func(a T1, b T2) State {
		valid := predicate(a, b)
		return NewState(valid, message(a, b, valid))
	})

	o := newOptions("multi_property_validator", opts)
	return &MultiPropertyValidator{
		leaf: newLeaf(newPropertySet(first.Path, second.Path), states, o),
	}, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
