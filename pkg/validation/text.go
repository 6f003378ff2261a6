package validation

import "strings"

// DefaultSeparator joins messages when no separator is given. It is also the
// canonical separator used to compare states.
const DefaultSeparator = ","

// Text is an immutable, ordered collection of validation messages.
// The zero value is an empty Text.
type Text struct {
	items []string
}

// NoText returns an empty Text, the message set of a valid state.
func NoText() Text {
	return Text{}
}

// NewText creates a Text holding msgs in order.
func NewText(msgs ...string) Text {
	if len(msgs) == 0 {
		return Text{}
	}
	items := make([]string, len(msgs))
	copy(items, msgs)
	return Text{items: items}
}

// MergeText flattens texts into one, preserving order.
func MergeText(texts ...Text) Text {
	n := 0
	for _, t := range texts {
		n += len(t.items)
	}
	if n == 0 {
		return Text{}
	}
	items := make([]string, 0, n)
	for _, t := range texts {
		items = append(items, t.items...)
	}
	return Text{items: items}
}

func (t Text) Len() int {
	return len(t.items)
}

func (t Text) IsEmpty() bool {
	return len(t.items) == 0
}

// At returns the i-th message. It panics if i is out of range.
func (t Text) At(i int) string {
	return t.items[i]
}

// Messages returns a copy of the messages. The result is never nil.
func (t Text) Messages() []string {
	out := make([]string, len(t.items))
	copy(out, t.items)
	return out
}

// ToSingleLine joins the messages with separator, or DefaultSeparator when
// separator is empty.
func (t Text) ToSingleLine(separator string) string {
	if separator == "" {
		separator = DefaultSeparator
	}
	return strings.Join(t.items, separator)
}

func (t Text) String() string {
	return t.ToSingleLine(DefaultSeparator)
}
