// Package strbuf provides a bounds-checked string buffer with an explicit,
// fixed capacity. Every mutating operation verifies that the result fits
// within the buffer's capacity before writing a single byte, so a buffer can
// never be overflowed or left partially written.
//
// A Buffer's capacity changes only through an explicit Resize; the type is
// deliberately not auto-growing. Value-producing operations (Left, Concat,
// Trim, ...) allocate a new Buffer and never modify their inputs. In-place
// mutators (Appendf, Writef, Reset, Resize, MoveFrom, CopyFrom) require
// exclusive access; they must not be called concurrently on the same buffer.
package strbuf

import (
	"bytes"
	"fmt"
)

// MaxLen is the maximum representable buffer length. Constructing or copying
// a source longer than this fails cleanly.
const MaxLen = 1<<32 - 2

// Buffer is a byte buffer with a fixed capacity and an explicit length.
// Storage holds capacity+1 bytes; the byte at index length is always zero,
// mirroring a C-style null terminator. The zero value is an invalid buffer;
// use New or NewFromString.
type Buffer struct {
	// data holds capacity+1 bytes. data[length] == 0 at all times.
	data   []byte
	length int
}

// New allocates a buffer with the given capacity and zero length.
func New(capacity int) (*Buffer, error) {
	if capacity < 0 || capacity > MaxLen {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Buffer{data: make([]byte, capacity+1)}, nil
}

// NewFromString allocates a buffer sized exactly to s and copies s into it.
func NewFromString(s string) (*Buffer, error) {
	if len(s) > MaxLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrSourceTooLong, len(s))
	}
	b := &Buffer{data: make([]byte, len(s)+1), length: len(s)}
	copy(b.data, s)
	return b, nil
}

// NewFromBytes allocates a buffer sized exactly to p and copies p into it.
// A nil slice is treated as an absent source and rejected.
func NewFromBytes(p []byte) (*Buffer, error) {
	if p == nil {
		return nil, ErrNilInput
	}
	if len(p) > MaxLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrSourceTooLong, len(p))
	}
	b := &Buffer{data: make([]byte, len(p)+1), length: len(p)}
	copy(b.data, p)
	return b, nil
}

// Valid reports whether the buffer owns storage. It is false for a nil
// handle, the zero value, and a buffer whose storage was released by a
// successful MoveFrom.
func (b *Buffer) Valid() bool {
	return b != nil && b.data != nil
}

// Cap returns the buffer's capacity, or 0 for an invalid buffer.
func (b *Buffer) Cap() int {
	if !b.Valid() {
		return 0
	}
	return len(b.data) - 1
}

// Len returns the current content length, or 0 for an invalid buffer.
func (b *Buffer) Len() int {
	if !b.Valid() {
		return 0
	}
	return b.length
}

// Bytes returns a read-only view of the buffer's content. The view is only
// valid until the next in-place mutation. Returns nil for an invalid buffer.
func (b *Buffer) Bytes() []byte {
	if !b.Valid() {
		return nil
	}
	return b.data[:b.length:b.length]
}

// String returns a copy of the buffer's content as a string.
func (b *Buffer) String() string {
	if !b.Valid() {
		return ""
	}
	return string(b.data[:b.length])
}

// Dup returns an independent copy of the buffer with the same capacity and
// content. Mutating the copy never affects the original. Returns nil for an
// invalid buffer.
func (b *Buffer) Dup() *Buffer {
	if !b.Valid() {
		return nil
	}
	d := &Buffer{data: make([]byte, len(b.data)), length: b.length}
	// Only content up to the sentinel is meaningful; stale bytes past the
	// length need not be preserved, but copying the backing slice keeps the
	// sentinel correct by construction.
	copy(d.data, b.data[:b.length+1])
	return d
}

// Resize changes the buffer's capacity in place. Shrinking below the current
// length truncates the content and writes a new sentinel. On error the
// buffer is left fully intact.
func (b *Buffer) Resize(newCap int) error {
	if !b.Valid() {
		return ErrNilBuffer
	}
	if newCap < 0 || newCap > MaxLen {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, newCap)
	}
	if newCap == b.Cap() {
		return nil
	}
	data := make([]byte, newCap+1)
	n := b.length
	if n > newCap {
		n = newCap
	}
	copy(data, b.data[:n])
	b.data = data
	b.length = n
	return nil
}

// MoveFrom transfers src's content into b, growing b's capacity to src's if
// needed, and releases src. After a successful move src no longer owns
// storage: src.Valid() is false and every operation on it fails with
// ErrNilBuffer. On error neither buffer is modified.
func (b *Buffer) MoveFrom(src *Buffer) error {
	if !b.Valid() || !src.Valid() {
		return ErrNilBuffer
	}
	if src.length > b.Cap() {
		if err := b.Resize(src.Cap()); err != nil {
			return err
		}
	}
	copy(b.data, src.data[:src.length])
	b.length = src.length
	b.data[b.length] = 0
	src.data = nil
	src.length = 0
	return nil
}

// CopyFrom copies a plain string into the buffer, growing its capacity if
// needed. On error the buffer is left unchanged.
func (b *Buffer) CopyFrom(s string) error {
	if !b.Valid() {
		return ErrNilBuffer
	}
	if len(s) > MaxLen {
		return fmt.Errorf("%w: %d bytes", ErrSourceTooLong, len(s))
	}
	if len(s) > b.Cap() {
		if err := b.Resize(len(s)); err != nil {
			return err
		}
	}
	copy(b.data, s)
	b.length = len(s)
	b.data[b.length] = 0
	return nil
}

// Appendf appends formatted text to the end of the buffer. The text is
// formatted first (the measuring pass) and committed only if the whole
// result fits within the remaining capacity; otherwise the buffer is left
// byte-for-byte unchanged and ErrCapacityExceeded is returned. Returns the
// number of bytes appended.
func (b *Buffer) Appendf(format string, args ...any) (int, error) {
	if !b.Valid() {
		return 0, ErrNilBuffer
	}
	return b.appendString(fmt.Sprintf(format, args...))
}

// AppendString appends s with the same all-or-nothing contract as Appendf.
func (b *Buffer) AppendString(s string) (int, error) {
	if !b.Valid() {
		return 0, ErrNilBuffer
	}
	return b.appendString(s)
}

func (b *Buffer) appendString(s string) (int, error) {
	if len(s) > b.Cap()-b.length {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrCapacityExceeded, len(s), b.Cap()-b.length)
	}
	copy(b.data[b.length:], s)
	b.length += len(s)
	b.data[b.length] = 0
	return len(s), nil
}

// Writef writes formatted text starting at offset 0, replacing any previous
// content. The result must fit within the full capacity; otherwise the
// buffer is left unchanged and ErrCapacityExceeded is returned. Returns the
// new content length.
func (b *Buffer) Writef(format string, args ...any) (int, error) {
	if !b.Valid() {
		return 0, ErrNilBuffer
	}
	s := fmt.Sprintf(format, args...)
	if len(s) > b.Cap() {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrCapacityExceeded, len(s), b.Cap())
	}
	copy(b.data, s)
	b.length = len(s)
	b.data[b.length] = 0
	return len(s), nil
}

// Reset sets the length to zero. Capacity is unchanged.
func (b *Buffer) Reset() {
	if !b.Valid() {
		return
	}
	b.length = 0
	b.data[0] = 0
}

// Equal reports whether two buffers hold exactly the same bytes. There is no
// case folding or locale awareness. Two invalid buffers compare equal; an
// invalid buffer never equals a valid one.
func (b *Buffer) Equal(other *Buffer) bool {
	if !b.Valid() || !other.Valid() {
		return !b.Valid() && !other.Valid()
	}
	if b.length != other.length {
		return false
	}
	return bytes.Equal(b.data[:b.length], other.data[:other.length])
}

// EqualString reports whether the buffer's content equals s byte-for-byte.
func (b *Buffer) EqualString(s string) bool {
	if !b.Valid() {
		return false
	}
	return b.length == len(s) && string(b.data[:b.length]) == s
}
