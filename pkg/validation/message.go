package validation

// MessageFunc produces the messages for a value given its computed validity.
type MessageFunc[T any] func(value T, valid bool) Text

// MessageFunc2 is MessageFunc for rules over two fields.
type MessageFunc2[T1, T2 any] func(a T1, b T2, valid bool) Text

// StaticMessage returns msg for invalid values and no text for valid ones.
func StaticMessage[T any](msg string) MessageFunc[T] {
	return func(_ T, valid bool) Text {
		if valid {
			return NoText()
		}
		return NewText(msg)
	}
}

// DynamicMessage builds the message for invalid values from the value itself.
func DynamicMessage[T any](fn func(T) string) MessageFunc[T] {
	return func(v T, valid bool) Text {
		if valid {
			return NoText()
		}
		return NewText(fn(v))
	}
}

// StaticMessage2 is StaticMessage for rules over two fields.
func StaticMessage2[T1, T2 any](msg string) MessageFunc2[T1, T2] {
	return func(_ T1, _ T2, valid bool) Text {
		if valid {
			return NoText()
		}
		return NewText(msg)
	}
}
