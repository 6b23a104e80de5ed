package ring

import (
	"fmt"
	"math/bits"

	"github.com/ntlfhe/ntl/utils"
)

// NumberTheoreticTransformer is an interface to provide
// flexibility on how the NTT is evaluated by the Evaluator.
// Both methods operate in place on a coefficient vector of length N with
// coefficients in [0, Q) and return an error wrapping ErrInvalidInput,
// without modifying p, if this is not the case.
type NumberTheoreticTransformer interface {
	Forward(p []uint64) error
	Backward(p []uint64) error
}

// NTT evaluates in place the cyclic NTT of buffer, of length N, with respect to the
// primitive N-th root of unity omega mod the prime q, and returns buffer.
//
// The order of omega and the primality of q are part of the caller's contract and are
// not verified. All other arguments are checked before buffer is modified: on error,
// wrapping ErrInvalidInput, buffer is left untouched.
func NTT(buffer []uint64, omega uint64, N int, q uint64) ([]uint64, error) {

	if err := checkTransformInputs(buffer, omega, N, q); err != nil {
		return buffer, err
	}

	bitReversePermute(buffer)
	cooleyTukey(buffer, omega, q, GenBRedConstant(q))

	return buffer, nil
}

// INTT evaluates in place the inverse of NTT(buffer, omega, N, q), that is the
// NTT with respect to omega^-1 followed by a multiplication by N^-1 mod q, and
// returns buffer. See NTT for the error semantic.
func INTT(buffer []uint64, omega uint64, N int, q uint64) ([]uint64, error) {

	if err := checkTransformInputs(buffer, omega, N, q); err != nil {
		return buffer, err
	}

	omegaInv, err := ModInversePrime(omega, q)
	if err != nil {
		return buffer, err
	}

	NInv, err := ModInversePrime(uint64(N), q)
	if err != nil {
		return buffer, fmt.Errorf("invalid N %d: not invertible mod %d: %w", N, q, ErrInvalidInput)
	}

	brc := GenBRedConstant(q)

	bitReversePermute(buffer)
	cooleyTukey(buffer, omegaInv, q, brc)
	mulScalar(buffer, NInv, q, brc)

	return buffer, nil
}

func checkTransformInputs(buffer []uint64, omega uint64, N int, q uint64) error {

	if !IsPowerOfTwo(N) {
		return fmt.Errorf("invalid N %d: must be a power of two: %w", N, ErrInvalidInput)
	}

	if len(buffer) != N {
		return fmt.Errorf("invalid buffer length %d: must be equal to N=%d: %w", len(buffer), N, ErrInvalidInput)
	}

	if q < 2 || bits.Len64(q) > MaxModulusBits {
		return fmt.Errorf("invalid modulus %d: must be in [2, 2^%d): %w", q, MaxModulusBits, ErrInvalidInput)
	}

	if omega == 0 || omega >= q {
		return fmt.Errorf("invalid root of unity %d: must be in [1, %d): %w", omega, q, ErrInvalidInput)
	}

	return checkCoefficients(buffer, N, q)
}

func checkCoefficients(p []uint64, N int, q uint64) error {

	if len(p) != N {
		return fmt.Errorf("invalid buffer length %d: must be equal to N=%d: %w", len(p), N, ErrInvalidInput)
	}

	if !utils.AllLessThan(p, q) {
		return fmt.Errorf("invalid coefficients: must be in [0, %d): %w", q, ErrInvalidInput)
	}

	return nil
}

// butterfly computes X, Y = U + V*W, U - V*W mod q.
// The top index always receives the sum and the bottom index the difference.
func butterfly(U, V, W, q uint64, brc [2]uint64) (X, Y uint64) {
	V = BRed(V, W, q, brc)
	return CRed(U+V, q), CRed(U+q-V, q)
}

// cooleyTukey runs the log2(N) decimation-in-time butterfly stages on p,
// which must already be in bit-reversed order. The twiddle factor of each
// stage is accumulated multiplicatively across a block.
func cooleyTukey(p []uint64, omega, q uint64, brc [2]uint64) {

	N := len(p)

	for m := 2; m <= N; m <<= 1 {

		h := m >> 1

		// omegaM is a primitive m-th root of unity
		omegaM := modExp(omega, uint64(N/m), q, brc)

		for k := 0; k < N; k += m {
			w := uint64(1)
			for j := k; j < k+h; j++ {
				p[j], p[j+h] = butterfly(p[j], p[j+h], w, q, brc)
				w = BRed(w, omegaM, q, brc)
			}
		}
	}
}

// cooleyTukeyWithTable is identical to cooleyTukey but reads the
// twiddle factors roots[i] = omega^i, i in [0, N/2), from a table.
func cooleyTukeyWithTable(p []uint64, roots []uint64, q uint64, brc [2]uint64) {

	N := len(p)
	logN := bits.Len64(uint64(N)) - 1

	for s := 0; s < logN; s++ {

		m := 2 << s
		h := m >> 1

		// Omega_m^j = Omega^(j * N/m)
		shift := logN - s - 1

		for k := 0; k < N; k += m {
			for j := 0; j < h; j++ {
				p[k+j], p[k+j+h] = butterfly(p[k+j], p[k+j+h], roots[j<<shift], q, brc)
			}
		}
	}
}

// mulScalar evaluates p = p * scalar mod q.
func mulScalar(p []uint64, scalar, q uint64, brc [2]uint64) {
	for i := range p {
		p[i] = BRed(p[i], scalar, q, brc)
	}
}

// mulCoeffs evaluates p3 = p1 * p2 mod q coefficient-wise.
func mulCoeffs(p1, p2, p3 []uint64, q uint64, brc [2]uint64) {
	for i := range p3 {
		p3[i] = BRed(p1[i], p2[i], q, brc)
	}
}

// NumberTheoreticTransformerStandard evaluates the NTT serially using a precomputed Table.
type NumberTheoreticTransformerStandard struct {
	*Table
}

// NewNumberTheoreticTransformerStandard returns a serial NumberTheoreticTransformer.
func NewNumberTheoreticTransformerStandard(t *Table) NumberTheoreticTransformer {
	return NumberTheoreticTransformerStandard{Table: t}
}

// Forward evaluates p = NTT(p) in place.
func (rntt NumberTheoreticTransformerStandard) Forward(p []uint64) (err error) {

	if err = checkCoefficients(p, rntt.Params.N(), rntt.Params.Q()); err != nil {
		return
	}

	bitReversePermute(p)
	cooleyTukeyWithTable(p, rntt.RootsForward, rntt.Params.Q(), rntt.BRedConstant)

	return
}

// Backward evaluates p = INTT(p) in place.
func (rntt NumberTheoreticTransformerStandard) Backward(p []uint64) (err error) {

	if err = checkCoefficients(p, rntt.Params.N(), rntt.Params.Q()); err != nil {
		return
	}

	bitReversePermute(p)
	cooleyTukeyWithTable(p, rntt.RootsBackward, rntt.Params.Q(), rntt.BRedConstant)
	mulScalar(p, rntt.NInv, rntt.Params.Q(), rntt.BRedConstant)

	return
}
