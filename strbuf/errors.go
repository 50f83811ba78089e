package strbuf

import "errors"

var (
	// ErrNilBuffer indicates that a buffer handle is nil or its storage has
	// been released by MoveFrom.
	ErrNilBuffer = errors.New("buffer is nil or released")

	// ErrNilInput indicates that a required byte source is nil.
	ErrNilInput = errors.New("input is nil")

	// ErrInvalidCapacity indicates a negative capacity or one beyond MaxLen.
	ErrInvalidCapacity = errors.New("capacity out of range")

	// ErrSourceTooLong indicates that a byte source exceeds the maximum
	// representable buffer length.
	ErrSourceTooLong = errors.New("source exceeds maximum buffer length")

	// ErrCapacityExceeded indicates that a write would not fit within the
	// buffer's capacity. The buffer is left unchanged.
	ErrCapacityExceeded = errors.New("content exceeds buffer capacity")

	// ErrOutOfRange indicates a position argument outside the buffer's
	// current content.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNotFound indicates that a search pattern does not occur in the
	// buffer contents.
	ErrNotFound = errors.New("pattern not found")
)
