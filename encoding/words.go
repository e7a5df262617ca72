// Package encoding translates CPU-side state descriptions into the
// bit-exact register words the GPU consumes, and assembles register
// writes into the command-stream format. Every packed layout has a
// matching unpack function; pack followed by unpack is lossless.
package encoding

import "golang.org/x/exp/constraints"

// nibble returns the i'th 4-bit field of v, counting from the least
// significant bits.
func nibble[T constraints.Unsigned](v T, i int) uint8 {
	return uint8(v>>(4*i)) & 0xF
}

// setNibble returns v with its i'th 4-bit field replaced by n.
func setNibble[T constraints.Unsigned](v T, i int, n uint8) T {
	shift := 4 * i
	return v&^(T(0xF)<<shift) | T(n&0xF)<<shift
}
