package strbuf

import (
	"bytes"
	"fmt"
)

// Position arguments throughout this file are 0-based, and ranges are
// inclusive on both ends. The inclusive convention means a valid position is
// always strictly less than Len().

// newWithLen allocates a result buffer of capacity and length n. Content is
// filled in by the caller; the sentinel at index n is zero by construction.
func newWithLen(n int) *Buffer {
	return &Buffer{data: make([]byte, n+1), length: n}
}

// Left returns a new buffer holding bytes [0, pos] inclusive.
func (b *Buffer) Left(pos int) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if pos < 0 || pos >= b.length {
		return nil, fmt.Errorf("%w: pos %d, length %d", ErrOutOfRange, pos, b.length)
	}
	n := newWithLen(pos + 1)
	copy(n.data, b.data[:pos+1])
	return n, nil
}

// Right returns a new buffer holding bytes from pos to the end. pos equal to
// the length yields an empty buffer.
func (b *Buffer) Right(pos int) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if pos < 0 || pos > b.length {
		return nil, fmt.Errorf("%w: pos %d, length %d", ErrOutOfRange, pos, b.length)
	}
	n := newWithLen(b.length - pos)
	copy(n.data, b.data[pos:b.length])
	return n, nil
}

// Mid returns a new buffer holding the inclusive range [left, right].
func (b *Buffer) Mid(left, right int) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if left < 0 || left > right || right >= b.length {
		return nil, fmt.Errorf("%w: range [%d, %d], length %d", ErrOutOfRange, left, right, b.length)
	}
	n := newWithLen(right - left + 1)
	copy(n.data, b.data[left:right+1])
	return n, nil
}

// Concat returns a new buffer holding a's bytes followed by b's bytes.
func Concat(a, b *Buffer) (*Buffer, error) {
	if !a.Valid() || !b.Valid() {
		return nil, ErrNilBuffer
	}
	total := a.length + b.length
	if total > MaxLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrSourceTooLong, total)
	}
	n := newWithLen(total)
	copy(n.data, a.data[:a.length])
	copy(n.data[a.length:], b.data[:b.length])
	return n, nil
}

// Insert returns a new buffer with other's content inserted at pos. pos may
// equal the length, which appends.
func (b *Buffer) Insert(other *Buffer, pos int) (*Buffer, error) {
	if !other.Valid() {
		return nil, ErrNilBuffer
	}
	return b.InsertString(other.String(), pos)
}

// InsertString returns a new buffer with s inserted at pos.
func (b *Buffer) InsertString(s string, pos int) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if pos < 0 || pos > b.length {
		return nil, fmt.Errorf("%w: pos %d, length %d", ErrOutOfRange, pos, b.length)
	}
	total := b.length + len(s)
	if total > MaxLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrSourceTooLong, total)
	}
	n := newWithLen(total)
	copy(n.data, b.data[:pos])
	copy(n.data[pos:], s)
	copy(n.data[pos+len(s):], b.data[pos:b.length])
	return n, nil
}

// Delete returns a new buffer with the inclusive range [pos1, pos2] removed.
func (b *Buffer) Delete(pos1, pos2 int) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if pos1 < 0 || pos1 > pos2 || pos2 >= b.length {
		return nil, fmt.Errorf("%w: range [%d, %d], length %d", ErrOutOfRange, pos1, pos2, b.length)
	}
	n := newWithLen(b.length - (pos2 - pos1 + 1))
	copy(n.data, b.data[:pos1])
	copy(n.data[pos1:], b.data[pos2+1:b.length])
	return n, nil
}

// DeleteString returns a new buffer with the first occurrence of pattern
// removed. Fails with ErrNotFound if pattern is empty or does not occur.
func (b *Buffer) DeleteString(pattern string) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if pattern == "" {
		return nil, ErrNotFound
	}
	pos, ok := b.Find(pattern, 0)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, pattern)
	}
	return b.Delete(pos, pos+len(pattern)-1)
}

// DeletePrefix returns a new buffer with prefix removed from the front.
// Fails with ErrNotFound if the buffer does not start with prefix.
func (b *Buffer) DeletePrefix(prefix string) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if prefix == "" || !bytes.HasPrefix(b.data[:b.length], []byte(prefix)) {
		return nil, fmt.Errorf("%w: prefix %q", ErrNotFound, prefix)
	}
	return b.Right(len(prefix))
}

// DeleteSuffix returns a new buffer with suffix removed from the end.
// Fails with ErrNotFound if the buffer does not end with suffix.
func (b *Buffer) DeleteSuffix(suffix string) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if suffix == "" || !bytes.HasSuffix(b.data[:b.length], []byte(suffix)) {
		return nil, fmt.Errorf("%w: suffix %q", ErrNotFound, suffix)
	}
	n := newWithLen(b.length - len(suffix))
	copy(n.data, b.data[:n.length])
	return n, nil
}

// Find reports the position of the first occurrence of pattern at or after
// from, using a literal byte scan. The second result is false when pattern
// does not occur, the buffer is invalid, or from is out of range. An empty
// pattern matches at from.
func (b *Buffer) Find(pattern string, from int) (int, bool) {
	if !b.Valid() || from < 0 || from > b.length {
		return 0, false
	}
	i := bytes.Index(b.data[from:b.length], []byte(pattern))
	if i < 0 {
		return 0, false
	}
	return from + i, true
}

// FindByte reports the position of the first occurrence of c at or after
// from. Same result convention as Find.
func (b *Buffer) FindByte(c byte, from int) (int, bool) {
	if !b.Valid() || from < 0 || from > b.length {
		return 0, false
	}
	i := bytes.IndexByte(b.data[from:b.length], c)
	if i < 0 {
		return 0, false
	}
	return from + i, true
}

// Replace returns a new buffer with the first occurrence of search at or
// after from replaced by repl. Fails with ErrNotFound if search is empty or
// does not occur.
func (b *Buffer) Replace(search, repl string, from int) (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if from < 0 || from > b.length {
		return nil, fmt.Errorf("%w: pos %d, length %d", ErrOutOfRange, from, b.length)
	}
	if search == "" {
		return nil, ErrNotFound
	}
	pos, ok := b.Find(search, from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, search)
	}
	total := b.length - len(search) + len(repl)
	if total > MaxLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrSourceTooLong, total)
	}
	n := newWithLen(total)
	copy(n.data, b.data[:pos])
	copy(n.data[pos:], repl)
	copy(n.data[pos+len(repl):], b.data[pos+len(search):b.length])
	return n, nil
}

// ToUpper returns a new buffer with ASCII lowercase letters (bytes 97-122)
// mapped to uppercase. All other bytes pass through unchanged.
func (b *Buffer) ToUpper() (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	n := newWithLen(b.length)
	for i := 0; i < b.length; i++ {
		c := b.data[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		n.data[i] = c
	}
	return n, nil
}

// ToLower returns a new buffer with ASCII uppercase letters (bytes 65-90)
// mapped to lowercase. All other bytes pass through unchanged.
func (b *Buffer) ToLower() (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	n := newWithLen(b.length)
	for i := 0; i < b.length; i++ {
		c := b.data[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		n.data[i] = c
	}
	return n, nil
}

// isSpace reports whether c is ASCII whitespace, matching C's isspace in the
// default locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimLeft returns a new buffer with leading ASCII whitespace removed.
// An all-whitespace input yields a zero-length buffer.
func (b *Buffer) TrimLeft() (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	start := 0
	for start < b.length && isSpace(b.data[start]) {
		start++
	}
	n := newWithLen(b.length - start)
	copy(n.data, b.data[start:b.length])
	return n, nil
}

// TrimRight returns a new buffer with trailing ASCII whitespace removed.
// An all-whitespace input yields a zero-length buffer.
func (b *Buffer) TrimRight() (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	end := b.length
	for end > 0 && isSpace(b.data[end-1]) {
		end--
	}
	n := newWithLen(end)
	copy(n.data, b.data[:end])
	return n, nil
}

// Trim returns a new buffer with leading and trailing ASCII whitespace
// removed. An all-whitespace input yields a zero-length buffer.
func (b *Buffer) Trim() (*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	start := 0
	for start < b.length && isSpace(b.data[start]) {
		start++
	}
	end := b.length
	for end > start && isSpace(b.data[end-1]) {
		end--
	}
	n := newWithLen(end - start)
	copy(n.data, b.data[start:end])
	return n, nil
}

// Split finds the first occurrence of delim and returns the content before
// it and the content after it as two new buffers. Fails with ErrNotFound if
// delim is empty or absent.
func (b *Buffer) Split(delim string) (left, right *Buffer, err error) {
	if !b.Valid() {
		return nil, nil, ErrNilBuffer
	}
	if delim == "" {
		return nil, nil, ErrNotFound
	}
	pos, ok := b.Find(delim, 0)
	if !ok {
		return nil, nil, fmt.Errorf("%w: delimiter %q", ErrNotFound, delim)
	}
	left = newWithLen(pos)
	copy(left.data, b.data[:pos])
	right = newWithLen(b.length - pos - len(delim))
	copy(right.data, b.data[pos+len(delim):b.length])
	return left, right, nil
}

// SplitAll splits on every non-overlapping occurrence of delim and returns
// the ordered fragments. A buffer without any occurrence yields a single
// fragment holding a copy of the whole content. Fails with ErrNotFound if
// delim is empty.
func (b *Buffer) SplitAll(delim string) ([]*Buffer, error) {
	if !b.Valid() {
		return nil, ErrNilBuffer
	}
	if delim == "" {
		return nil, ErrNotFound
	}
	var out []*Buffer
	start := 0
	for {
		pos, ok := b.Find(delim, start)
		if !ok {
			break
		}
		frag := newWithLen(pos - start)
		copy(frag.data, b.data[start:pos])
		out = append(out, frag)
		start = pos + len(delim)
	}
	last := newWithLen(b.length - start)
	copy(last.data, b.data[start:b.length])
	return append(out, last), nil
}
