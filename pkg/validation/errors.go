package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a validator is constructed with a
	// missing source, predicate or message function.
	ErrInvalidArgument = errors.New("validation: invalid argument")

	// ErrInvalidKeyExpression is returned when a property path contains a
	// link that is not a plain field access.
	ErrInvalidKeyExpression = errors.New("validation: invalid key expression")

	// ErrAmbiguousResolution is returned when a unique validator was requested
	// for a property path and more than one matches.
	ErrAmbiguousResolution = errors.New("validation: ambiguous resolution")

	// ErrNoValidator is returned when a unique validator was requested for a
	// property path and none matches.
	ErrNoValidator = errors.New("validation: no validator for property")
)

// InvalidArgumentError names the constructor argument that was missing.
type InvalidArgumentError struct {
	Name string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("validation: invalid argument %q: must not be nil", e.Name)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidKeyExpressionError describes the path link that could not be used
// as a property key.
type InvalidKeyExpressionError struct {
	Expression string
	Reason     string
}

func (e *InvalidKeyExpressionError) Error() string {
	return fmt.Sprintf("validation: invalid key expression %q: %s", e.Expression, e.Reason)
}

func (e *InvalidKeyExpressionError) Is(target error) bool {
	return target == ErrInvalidKeyExpression
}

// AmbiguousResolutionError reports how many validators matched a path that
// was expected to resolve to exactly one.
type AmbiguousResolutionError struct {
	Path  string
	Count int
}

func (e *AmbiguousResolutionError) Error() string {
	return fmt.Sprintf("validation: %d validators match property %q, expected one", e.Count, e.Path)
}

func (e *AmbiguousResolutionError) Is(target error) bool {
	return target == ErrAmbiguousResolution
}

func invalidArgument(name string) error {
	return &InvalidArgumentError{Name: name}
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInvalidKeyExpression(err error) bool {
	return errors.Is(err, ErrInvalidKeyExpression)
}

func IsAmbiguousResolution(err error) bool {
	return errors.Is(err, ErrAmbiguousResolution)
}
