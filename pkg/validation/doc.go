// Package validation turns many independent validity producers into one live,
// deduplicated, lazily activated aggregate state.
//
// Producers are validators: a PropertyValidator watches one tracked field, a
// MultiPropertyValidator watches two, and a StreamValidator follows any
// stream of values or precomputed states. A Context owns an ordered,
// mutable collection of such components and exposes their logical AND as
// its validity and the messages of its invalid children as its text.
// Everything implements Component, so contexts nest.
//
// # Architecture
//
// Data flows upward: tracked field streams feed validators, validators feed
// a Context, and the Context feeds consumers. Control flows downward:
// reading IsValid or Text, or subscribing to StatusChanges, activates the
// chain beneath it.
//
// Core building blocks:
//   - State / Text     – immutable validity flag plus ordered messages
//   - Path             – property keys, dot-joined for nested fields
//   - Field[T]         – a key bound to a stream of current-then-changed values
//   - Component        – the capability every validator and Context shares
//   - Context          – the aggregator with Add, Remove and lookup by key
//
// Every component keeps exactly one subscription to its sources no matter
// how many readers it has. New subscribers immediately receive the latest
// state and nothing older. Consecutive states with the same validity and
// text are emitted once.
//
// # Usage
//
//	ctx := validation.NewContext()
//	name := observable.NewValue("")
//
//	field, _ := validation.NewField("Name", name)
//	rule, _ := validation.NewPropertyValidator(field,
//	    func(s string) bool { return s != "" },
//	    validation.StaticMessage[string]("Name is required."),
//	)
//	ctx.Add(rule)
//
//	ctx.IsValid()             // false
//	ctx.Text().ToSingleLine("") // "Name is required."
//	name.Set("Bob")
//	ctx.IsValid()             // true
//
// # Lookup
//
// ValidatorsFor and ValidatorFor find the components concerning a key.
// ValidatorFor demands a unique match and reports an
// *AmbiguousResolutionError otherwise.
//
// # Error Handling
//
// Wiring mistakes fail fast: constructors return ErrInvalidArgument for a
// missing source, predicate or message and ErrInvalidKeyExpression for keys
// that are not plain field chains. A failing source is never turned into an
// invalid state; its error is delivered to StatusChanges subscribers of the
// validator and of every Context above it.
package validation
