package rules

import (
	"github.com/dmitrymomot/livevalidation/pkg/validation"
)

// Rule pairs a predicate with the message reported when it fails.
type Rule[T any] struct {
	Check          func(T) bool
	Message        string
	TranslationKey string
}

// MessageFunc returns the message function for the rule: Message when the
// value is invalid, nothing when it is valid.
func (r Rule[T]) MessageFunc() validation.MessageFunc[T] {
	return validation.StaticMessage[T](r.Message)
}

// Validator creates an inert property validator enforcing the rule on field.
func (r Rule[T]) Validator(field validation.Field[T], opts ...validation.Option) (*validation.PropertyValidator[T], error) {
	return validation.NewPropertyValidator(field, r.Check, r.MessageFunc(), opts...)
}

// Apply registers each rule as its own validator on the host's context, in
// order, so their messages aggregate in registration order. Registration
// stops at the first error.
func Apply[T any](host validation.Host, field validation.Field[T], rules ...Rule[T]) ([]*validation.PropertyValidator[T], error) {
	out := make([]*validation.PropertyValidator[T], 0, len(rules))
	for _, r := range rules {
		v, err := validation.Rule(host, field, r.Check, r.MessageFunc())
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Equal reports whether two values are equal. Useful with Rule2 for
// confirmation fields.
func Equal[T comparable](a, b T) bool {
	return a == b
}
