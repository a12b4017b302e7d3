package listing

import "errors"

var (
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown listing format")

	// ErrInvalidRange is returned when a listing range cannot be produced.
	ErrInvalidRange = errors.New("invalid listing range")

	// ErrWrite wraps failures of the underlying writer.
	ErrWrite = errors.New("failed to write listing entry")
)
