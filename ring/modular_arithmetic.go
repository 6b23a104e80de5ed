package ring

import (
	"fmt"
)

// ModExp performs the modular exponentiation base^exponent mod modulus
// by binary square-and-multiply. The result is in [0, modulus).
// Returns an error wrapping ErrInvalidInput if modulus <= 1.
func ModExp(base, exponent, modulus uint64) (result uint64, err error) {

	if modulus <= 1 {
		return 0, fmt.Errorf("invalid modulus %d: must be greater than 1: %w", modulus, ErrInvalidInput)
	}

	base %= modulus
	result = 1
	for i := exponent; i > 0; i >>= 1 {
		if i&1 == 1 {
			result = MulMod(result, base, modulus)
		}
		base = MulMod(base, base, modulus)
	}

	return
}

// ModInversePrime returns the multiplicative inverse of x modulo q as x^(q-2) mod q.
// The primality of q is not verified: the result is meaningless for a composite q.
// Returns an error wrapping ErrInvalidInput if q <= 1 or x = 0 mod q.
func ModInversePrime(x, q uint64) (uint64, error) {

	if q <= 1 {
		return 0, fmt.Errorf("invalid modulus %d: must be greater than 1: %w", q, ErrInvalidInput)
	}

	if x%q == 0 {
		return 0, fmt.Errorf("invalid value %d: not invertible mod %d: %w", x, q, ErrInvalidInput)
	}

	return ModExp(x, q-2, q)
}

// modExp is ModExp for a modulus q < 2^MaxModulusBits and x < q, using
// precomputed Barrett constants.
func modExp(x, e, q uint64, brc [2]uint64) (result uint64) {
	result = 1
	for i := e; i > 0; i >>= 1 {
		if i&1 == 1 {
			result = BRed(result, x, q, brc)
		}
		x = BRed(x, x, q, brc)
	}
	return
}
