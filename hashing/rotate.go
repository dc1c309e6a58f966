package hashing

import "math/bits"

// Rotate returns value circularly rotated left by places mod 32 bits.
// A rotation of zero (or any multiple of 32) returns value unchanged.
//
// Rotate is the mixer used to combine element hash codes: each element's
// hash is rotated by its position before being XORed in, so the combined
// hash depends on where a value sits, not just on which values are present.
func Rotate(value uint32, places int) uint32 {
	return bits.RotateLeft32(value, places&31)
}

// RotateRight is the inverse of Rotate.
func RotateRight(value uint32, places int) uint32 {
	return bits.RotateLeft32(value, -(places & 31))
}

// Combine mixes hash codes positionally: the first is taken as is, and the
// i-th (zero based) is rotated left by i before being XORed in. This is the
// same scheme the tuple types use, exposed for HashCoder implementations.
func Combine(hashes ...uint32) uint32 {
	var out uint32

	for i, h := range hashes {
		out ^= Rotate(h, i)
	}

	return out
}
