package rules

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// OneOf fails for values not in allowed.
func OneOf[T comparable](allowed []T, opts ...Option) Rule[T] {
	o := newOptions(opts)
	return Rule[T]{
		Check: func(v T) bool {
			return slices.Contains(allowed, v)
		},
		Message:        o.render("validation.in_list", "must be one of the allowed values"),
		TranslationKey: "validation.in_list",
	}
}

// NoneOf fails for values in forbidden.
func NoneOf[T comparable](forbidden []T, opts ...Option) Rule[T] {
	o := newOptions(opts)
	return Rule[T]{
		Check: func(v T) bool {
			return !slices.Contains(forbidden, v)
		},
		Message:        o.render("validation.not_in_list", "must not be one of the forbidden values"),
		TranslationKey: "validation.not_in_list",
	}
}

// UUID fails for strings that are not a hyphenated UUID.
func UUID(opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			// Reject the braced, urn and bare-hex forms uuid.Parse accepts.
			if len(v) != 36 || strings.Count(v, "-") != 4 {
				return false
			}
			_, err := uuid.Parse(v)
			return err == nil
		},
		Message:        o.render("validation.uuid", "must be a valid UUID"),
		TranslationKey: "validation.uuid",
	}
}
