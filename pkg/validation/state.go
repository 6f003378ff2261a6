package validation

// State is the validity of a component at a point in time.
type State struct {
	valid bool
	text  Text
}

// NewState creates a State. Valid states conventionally carry empty text,
// but this is not enforced.
func NewState(valid bool, text Text) State {
	return State{valid: valid, text: text}
}

// ValidState returns a valid State with no messages.
func ValidState() State {
	return State{valid: true}
}

// InvalidState returns an invalid State carrying msgs.
func InvalidState(msgs ...string) State {
	return State{valid: false, text: NewText(msgs...)}
}

func (s State) IsValid() bool {
	return s.valid
}

func (s State) Text() Text {
	return s.text
}

// Equal reports whether both states have the same validity and the same
// messages once joined with DefaultSeparator. Used to suppress duplicate
// notifications.
func (s State) Equal(other State) bool {
	return s.valid == other.valid &&
		s.text.ToSingleLine(DefaultSeparator) == other.text.ToSingleLine(DefaultSeparator)
}

func (s State) String() string {
	if s.valid {
		return "valid"
	}
	return "invalid: " + s.text.String()
}

func statesEqual(a, b State) bool {
	return a.Equal(b)
}
