// Package utils implements various helper functions.
package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPowerOfTwo returns true if x is a strictly positive power of two.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns floor(log2(x)) for x > 0 and 0 otherwise.
func Log2[T constraints.Unsigned](x T) int {
	if x == 0 {
		return 0
	}
	return bits.Len64(uint64(x)) - 1
}

// BitReverse returns the bit-reverse value of the input value, within a context of 2^bitLen.
func BitReverse[T constraints.Unsigned](index T, bitLen int) T {
	if bitLen == 0 {
		return 0
	}
	return T(bits.Reverse64(uint64(index)) >> (64 - bitLen))
}
