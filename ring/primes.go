package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// The functions of this file generate the parameters consumed by the transforms.
// They are meant to be called once per parameter set, never on the transform path.

// IsPrime applies the Baillie-PSW, which is 100% accurate for numbers bellow 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// NTTFriendlyPrimes returns, in ascending order, count primes q of exactly bitLen bits
// such that NthRoot divides q-1, skipping the first start-1 of them.
// The search starts at 2^(bitLen-1)+1, so NthRoot must be at most 2^(bitLen-1).
// Fewer than count primes are returned if the bitLen-bit range is exhausted.
func NTTFriendlyPrimes(NthRoot, bitLen, start, count int) (primes []uint64, err error) {

	if !IsPowerOfTwo(NthRoot) {
		return nil, fmt.Errorf("invalid NthRoot %d: must be a power of two: %w", NthRoot, ErrInvalidInput)
	}

	if bitLen < 2 || bitLen > MaxModulusBits {
		return nil, fmt.Errorf("invalid bit length %d: must be in [2, %d]: %w", bitLen, MaxModulusBits, ErrInvalidInput)
	}

	if start < 1 {
		return nil, fmt.Errorf("invalid start %d: must be positive: %w", start, ErrInvalidInput)
	}

	if count < 0 {
		return nil, fmt.Errorf("invalid count %d: must be non-negative: %w", count, ErrInvalidInput)
	}

	// No bitLen-bit integer is 1 mod NthRoot otherwise.
	if NthRoot > 1<<(bitLen-1) {
		return nil, fmt.Errorf("invalid NthRoot %d: must be at most 2^(bitLen-1) = %d: %w", NthRoot, 1<<(bitLen-1), ErrInvalidInput)
	}

	step := uint64(NthRoot)

	primes = []uint64{}

	for q := uint64(1)<<(bitLen-1) + 1; bits.Len64(q) == bitLen && len(primes) < count; q += step {
		if IsPrime(q) {
			if start > 1 {
				start--
				continue
			}
			primes = append(primes, q)
		}
	}

	return primes, nil
}

// NextNTTPrime returns the next NthRoot NTT prime after q.
// The input q must be itself equal to 1 modulo NthRoot.
func NextNTTPrime(q uint64, NthRoot int) (qNext uint64, err error) {

	if !IsPowerOfTwo(NthRoot) {
		return 0, fmt.Errorf("invalid NthRoot %d: must be a power of two: %w", NthRoot, ErrInvalidInput)
	}

	qNext = q + uint64(NthRoot)

	for !IsPrime(qNext) {

		qNext += uint64(NthRoot)

		if bits.Len64(qNext) > MaxModulusBits {
			return 0, fmt.Errorf("next NTT prime exceeds the maximum bit-size of %d bits: %w", MaxModulusBits, ErrInvalidInput)
		}
	}

	return qNext, nil
}

// IsPrimitiveNthRoot tests if x is a primitive N-th root of unity modulo the prime q,
// for N a power of two dividing q-1, by checking that x^(N/2) = -1 mod q.
func IsPrimitiveNthRoot(x uint64, N int, q uint64) bool {
	if N < 2 || !IsPowerOfTwo(N) || q < 3 || x == 0 || x >= q {
		return false
	}
	r, err := ModExp(x, uint64(N>>1), q)
	return err == nil && r == q-1
}

// PrimitiveNthRoot returns a primitive N-th root of unity modulo the prime q,
// where N is a power of two dividing q-1.
// Since x^((q-1)/N) is an N-th root of unity for any non-zero x and half of them are
// primitive, the candidates x = 2, 3, ... are tried in order.
func PrimitiveNthRoot(N int, q uint64) (root uint64, err error) {

	if N < 2 || !IsPowerOfTwo(N) {
		return 0, fmt.Errorf("invalid N %d: must be a power of two greater than 1: %w", N, ErrInvalidInput)
	}

	if q < 3 || bits.Len64(q) > MaxModulusBits {
		return 0, fmt.Errorf("invalid modulus %d: must be in [3, 2^%d): %w", q, MaxModulusBits, ErrInvalidInput)
	}

	if (q-1)%uint64(N) != 0 {
		return 0, fmt.Errorf("invalid modulus %d: %d does not divide q-1: %w", q, N, ErrPreconditionViolation)
	}

	if !IsPrime(q) {
		return 0, fmt.Errorf("invalid modulus %d: not prime: %w", q, ErrPreconditionViolation)
	}

	brc := GenBRedConstant(q)
	e := (q - 1) / uint64(N)

	for x := uint64(2); x < q; x++ {
		if root = modExp(x, e, q, brc); IsPrimitiveNthRoot(root, N, q) {
			return root, nil
		}
	}

	// Unreachable for a prime q with N | q-1.
	return 0, fmt.Errorf("no primitive %d-th root of unity mod %d: %w", N, q, ErrPreconditionViolation)
}
