package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// PolyMult returns the negacyclic convolution a * b mod (X^N + 1, q) of the coefficient
// vectors a and b, on a newly allocated vector. The inputs are not modified.
//
// The primitive 2N-th root of unity is derived with PrimitiveNthRoot, so q must be
// a prime such that 2N divides q-1. Callers performing several products with the same
// parameters should instead build an Evaluator once and use Evaluator.MulPoly.
func PolyMult(a, b []uint64, N int, q uint64) ([]uint64, error) {

	if N < 2 || !IsPowerOfTwo(N) {
		return nil, fmt.Errorf("invalid N %d: must be a power of two greater than 1: %w", N, ErrInvalidInput)
	}

	params, err := NewParameters(ParametersLiteral{LogN: bits.Len64(uint64(N)) - 1, Q: q})
	if err != nil {
		return nil, err
	}

	if !params.IsNegacyclic() {
		return nil, fmt.Errorf("invalid modulus %d: 2N=%d does not divide q-1: %w", q, N<<1, ErrPreconditionViolation)
	}

	return NewEvaluator(NewTable(params), 1).MulPolyNew(a, b)
}

// NegacyclicConvolutionNaive returns a * b mod (X^N + 1, q), with N = len(a) = len(b),
// computed with the schoolbook algorithm over arbitrary precision integers.
// It runs in O(N^2) and is meant as a reference.
func NegacyclicConvolutionNaive(a, b []uint64, q uint64) ([]uint64, error) {

	if len(a) != len(b) {
		return nil, fmt.Errorf("invalid inputs: lengths %d and %d differ: %w", len(a), len(b), ErrInvalidInput)
	}

	if q == 0 {
		return nil, fmt.Errorf("invalid modulus 0: %w", ErrInvalidInput)
	}

	N := len(a)

	acc := make([]*big.Int, N)
	for i := range acc {
		acc[i] = new(big.Int)
	}

	tmp := new(big.Int)
	bj := new(big.Int)

	for i := 0; i < N; i++ {
		ai := new(big.Int).SetUint64(a[i])
		for j := 0; j < N; j++ {
			tmp.Mul(ai, bj.SetUint64(b[j]))
			// X^N = -1
			if k := i + j; k < N {
				acc[k].Add(acc[k], tmp)
			} else {
				acc[k-N].Sub(acc[k-N], tmp)
			}
		}
	}

	bigQ := new(big.Int).SetUint64(q)

	c := make([]uint64, N)
	for i := range c {
		// Mod returns the euclidean modulus, in [0, q)
		c[i] = acc[i].Mod(acc[i], bigQ).Uint64()
	}

	return c, nil
}
