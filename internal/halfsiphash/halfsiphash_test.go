package halfsiphash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Vectors computed with the reference HalfSipHash-2-4 construction for the
// key bytes 00 01 02 03 04 05 06 07 (k0 = 0x03020100, k1 = 0x07060504).
const (
	testK0 = 0x03020100
	testK1 = 0x07060504
)

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{name: "empty", input: "", want: 0x5b9f35a9},
		{name: "one byte", input: "a", want: 0x5a9ba241},
		{name: "two bytes", input: "ab", want: 0xeb073dc8},
		{name: "three bytes", input: "abc", want: 0xeadabd2d},
		{name: "one full block", input: "abcd", want: 0x2caf3e9e},
		{name: "blocks plus tail", input: "Hello, world!", want: 0x7aac7901},
		{name: "binary input", input: "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f", want: 0x84acb5d9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(testK0, testK1, []byte(tt.input)))
		})
	}
}

func TestHash64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{name: "empty", input: "", want: 0xc83cb8b9591f8d21},
		{name: "one byte", input: "a", want: 0x4ccf68bcde9df19a},
		{name: "two bytes", input: "ab", want: 0xd91d48a2005314d1},
		{name: "three bytes", input: "abc", want: 0x7f9981acd9b6a96e},
		{name: "one full block", input: "abcd", want: 0xdf3be807c6bacb18},
		{name: "blocks plus tail", input: "Hello, world!", want: 0xaca45a0b1a49f889},
		{name: "binary input", input: "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f", want: 0xb5f37b5fd2aa3673},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash64(testK0, testK1, []byte(tt.input)))
		})
	}
}

func TestHash_KeySensitivity(t *testing.T) {
	msg := []byte("the same message")
	assert.NotEqual(t, Hash(testK0, testK1, msg), Hash(testK0+1, testK1, msg))
	assert.NotEqual(t, Hash64(testK0, testK1, msg), Hash64(testK0, testK1+1, msg))
}
