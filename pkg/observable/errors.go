package observable

import "errors"

var (
	// ErrClosed is returned when activating a stream that has been disposed.
	ErrClosed = errors.New("observable: closed")
)
