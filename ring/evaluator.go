package ring

import (
	"fmt"
)

// Evaluator evaluates transforms and products over a precomputed Table.
// An Evaluator can be used concurrently on distinct buffers.
type Evaluator struct {
	table *Table
	ntt   NumberTheoreticTransformer
	pool  *BufferPool
}

// NewEvaluator returns a new Evaluator over the given Table.
// If workers is larger than 1, the transforms are evaluated with a
// NumberTheoreticTransformerParallel, else with a NumberTheoreticTransformerStandard.
func NewEvaluator(table *Table, workers int) *Evaluator {

	var ntt NumberTheoreticTransformer
	if workers > 1 {
		ntt = NewNumberTheoreticTransformerParallel(table, workers)
	} else {
		ntt = NewNumberTheoreticTransformerStandard(table)
	}

	return &Evaluator{
		table: table,
		ntt:   ntt,
		pool:  NewPool(table.Params.N()),
	}
}

// Table returns the Table of the Evaluator.
func (eval Evaluator) Table() *Table {
	return eval.table
}

// Parameters returns the Parameters of the Evaluator.
func (eval Evaluator) Parameters() Parameters {
	return eval.table.Params
}

// NTT evaluates p = NTT(p) in place.
func (eval Evaluator) NTT(p []uint64) error {
	return eval.ntt.Forward(p)
}

// INTT evaluates p = INTT(p) in place.
func (eval Evaluator) INTT(p []uint64) error {
	return eval.ntt.Backward(p)
}

// MulCoeffs evaluates p3 = p1 * p2 coefficient-wise. p3 may alias p1 or p2.
func (eval Evaluator) MulCoeffs(p1, p2, p3 []uint64) (err error) {

	N, Q := eval.table.Params.N(), eval.table.Params.Q()

	for _, p := range [][]uint64{p1, p2} {
		if err = checkCoefficients(p, N, Q); err != nil {
			return
		}
	}

	if len(p3) != N {
		return fmt.Errorf("invalid output length %d: must be equal to N=%d: %w", len(p3), N, ErrInvalidInput)
	}

	mulCoeffs(p1, p2, p3, Q, eval.table.BRedConstant)

	return
}

// MulPoly evaluates p3 = p1 * p2 mod (X^N + 1, Q), the negacyclic convolution of p1 and p2.
// p1 and p2 are not modified, p3 may alias p1 or p2.
// Returns an error wrapping ErrInvalidInput if the parameters are cyclic only, or if one
// of the vectors has an invalid length or coefficients outside [0, Q).
func (eval Evaluator) MulPoly(p1, p2, p3 []uint64) (err error) {

	params := eval.table.Params

	if !params.IsNegacyclic() {
		return fmt.Errorf("invalid parameters %s: 2N does not divide Q-1 or no Psi was given: %w", params, ErrInvalidInput)
	}

	N, Q := params.N(), params.Q()

	for _, p := range [][]uint64{p1, p2} {
		if err = checkCoefficients(p, N, Q); err != nil {
			return
		}
	}

	if len(p3) != N {
		return fmt.Errorf("invalid output length %d: must be equal to N=%d: %w", len(p3), N, ErrInvalidInput)
	}

	brc := eval.table.BRedConstant

	buffA := eval.pool.GetBuffUintArray()
	defer eval.pool.RecycleBuffUintArray(buffA)
	buffB := eval.pool.GetBuffUintArray()
	defer eval.pool.RecycleBuffUintArray(buffB)

	A, B := *buffA, *buffB

	// Twist: A = p1 * psi^i, B = p2 * psi^i
	mulCoeffs(p1, eval.table.PsiPowers, A, Q, brc)
	mulCoeffs(p2, eval.table.PsiPowers, B, Q, brc)

	// NTT(A) and NTT(B) are both kept until the pointwise product.
	if err = eval.ntt.Forward(A); err != nil {
		return
	}

	if err = eval.ntt.Forward(B); err != nil {
		return
	}

	mulCoeffs(A, B, A, Q, brc)

	if err = eval.ntt.Backward(A); err != nil {
		return
	}

	// Untwist: p3 = A * psi^-i
	mulCoeffs(A, eval.table.PsiInvPowers, p3, Q, brc)

	return
}

// MulPolyNew returns p1 * p2 mod (X^N + 1, Q) on a newly allocated vector.
func (eval Evaluator) MulPolyNew(p1, p2 []uint64) (p3 []uint64, err error) {
	p3 = make([]uint64, eval.table.Params.N())
	if err = eval.MulPoly(p1, p2, p3); err != nil {
		return nil, err
	}
	return
}
