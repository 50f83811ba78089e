package strbuf

import (
	"fmt"
	"strconv"
)

// Classification predicates over buffer contents. All of them are ASCII-only
// byte scans; an invalid buffer classifies as false.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnumByte(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsInteger reports whether the content is an optional leading '-' followed
// by one or more ASCII digits, with the whole content consumed.
func (b *Buffer) IsInteger() bool {
	if !b.Valid() {
		return false
	}
	i := 0
	if i < b.length && b.data[i] == '-' {
		i++
	}
	if i == b.length {
		return false
	}
	for ; i < b.length; i++ {
		if !isDigit(b.data[i]) {
			return false
		}
	}
	return true
}

// IsFloat reports whether the content is an optional leading '-', ASCII
// digits, and at most one '.'. A bare trailing dot is accepted ("23." is a
// float); at least one digit is required.
func (b *Buffer) IsFloat() bool {
	if !b.Valid() {
		return false
	}
	i := 0
	if i < b.length && b.data[i] == '-' {
		i++
	}
	digits := 0
	dot := false
	for ; i < b.length; i++ {
		switch {
		case isDigit(b.data[i]):
			digits++
		case b.data[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// IsSigned reports whether the content is a negative integer: a leading '-'
// followed by one or more ASCII digits.
func (b *Buffer) IsSigned() bool {
	if !b.Valid() || b.length < 2 || b.data[0] != '-' {
		return false
	}
	return b.IsInteger()
}

// IsBlank reports whether the content is empty or entirely ASCII whitespace.
func (b *Buffer) IsBlank() bool {
	if !b.Valid() {
		return false
	}
	for i := 0; i < b.length; i++ {
		if !isSpace(b.data[i]) {
			return false
		}
	}
	return true
}

// IsAlnum reports whether, after skipping skip leading bytes, all remaining
// bytes are ASCII alphanumeric. When underscore is true '_' is also
// accepted. Returns false when skip is out of range; an empty remainder
// classifies as true.
func (b *Buffer) IsAlnum(skip int, underscore bool) bool {
	if !b.Valid() || skip < 0 || skip > b.length {
		return false
	}
	for i := skip; i < b.length; i++ {
		c := b.data[i]
		if !isAlnumByte(c) && !(underscore && c == '_') {
			return false
		}
	}
	return true
}

// ToLong parses the content as an integer in the given base, following
// strconv.ParseInt rules. Malformed input returns a wrapped error, never a
// panic.
func (b *Buffer) ToLong(base int) (int64, error) {
	if !b.Valid() {
		return 0, ErrNilBuffer
	}
	v, err := strconv.ParseInt(b.String(), base, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer: %w", err)
	}
	return v, nil
}

// ToDouble parses the content as a floating point number, following
// strconv.ParseFloat rules (optional sign, digits, optional exponent).
func (b *Buffer) ToDouble() (float64, error) {
	if !b.Valid() {
		return 0, ErrNilBuffer
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("parse float: %w", err)
	}
	return v, nil
}
