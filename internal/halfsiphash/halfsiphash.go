// Package halfsiphash implements the HalfSipHash-2-4 keyed pseudorandom
// function, the 32-bit-word variant of SipHash, with 32-bit and 64-bit
// outputs. The key is two 32-bit words.
package halfsiphash

import (
	"encoding/binary"
	"math/bits"
)

func round(v0, v1, v2, v3 uint32) (uint32, uint32, uint32, uint32) {
	v0 += v1
	v1 = bits.RotateLeft32(v1, 5)
	v1 ^= v0
	v0 = bits.RotateLeft32(v0, 16)
	v2 += v3
	v3 = bits.RotateLeft32(v3, 8)
	v3 ^= v2
	v0 += v3
	v3 = bits.RotateLeft32(v3, 7)
	v3 ^= v0
	v2 += v1
	v1 = bits.RotateLeft32(v1, 13)
	v1 ^= v2
	v2 = bits.RotateLeft32(v2, 16)
	return v0, v1, v2, v3
}

// hash runs the HalfSipHash-2-4 construction. wide selects the 64-bit
// output; the second word is only meaningful when wide is true.
func hash(k0, k1 uint32, p []byte, wide bool) (uint32, uint32) {
	v0 := k0
	v1 := k1
	v2 := uint32(0x6c796765) ^ k0
	v3 := uint32(0x74656462) ^ k1
	if wide {
		v1 ^= 0xee
	}

	// Final block carries the input length in the top byte.
	b := uint32(len(p)) << 24

	for len(p) >= 4 {
		m := binary.LittleEndian.Uint32(p)
		v3 ^= m
		v0, v1, v2, v3 = round(v0, v1, v2, v3)
		v0, v1, v2, v3 = round(v0, v1, v2, v3)
		v0 ^= m
		p = p[4:]
	}
	switch len(p) {
	case 3:
		b |= uint32(p[2]) << 16
		fallthrough
	case 2:
		b |= uint32(p[1]) << 8
		fallthrough
	case 1:
		b |= uint32(p[0])
	}
	v3 ^= b
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0 ^= b

	if wide {
		v2 ^= 0xee
	} else {
		v2 ^= 0xff
	}
	for i := 0; i < 4; i++ {
		v0, v1, v2, v3 = round(v0, v1, v2, v3)
	}
	h0 := v1 ^ v3
	if !wide {
		return h0, 0
	}

	v1 ^= 0xdd
	for i := 0; i < 4; i++ {
		v0, v1, v2, v3 = round(v0, v1, v2, v3)
	}
	return h0, v1 ^ v3
}

// Hash returns the 32-bit HalfSipHash-2-4 digest of p under key (k0, k1).
func Hash(k0, k1 uint32, p []byte) uint32 {
	h0, _ := hash(k0, k1, p, false)
	return h0
}

// Hash64 returns the 64-bit HalfSipHash-2-4 digest of p under key (k0, k1).
// The low 32 bits hold the first output word, matching the reference
// implementation's little-endian byte layout.
func Hash64(k0, k1 uint32, p []byte) uint64 {
	h0, h1 := hash(k0, k1, p, true)
	return uint64(h0) | uint64(h1)<<32
}
