package ring

// Table stores the precomputed constants of the transforms for a given Parameters.
// A Table is immutable after NewTable returns and can be shared between goroutines:
// its slices must not be modified.
type Table struct {
	Params Parameters

	// Barrett reduction constant of Q
	BRedConstant [2]uint64

	// N^-1 mod Q
	NInv uint64

	// RootsForward[i] = Omega^i mod Q for i in [0, N/2)
	RootsForward []uint64

	// RootsBackward[i] = Omega^-i mod Q for i in [0, N/2)
	RootsBackward []uint64

	// PsiPowers[i] = Psi^i mod Q for i in [0, N), nil for cyclic parameters
	PsiPowers []uint64

	// PsiInvPowers[i] = Psi^-i mod Q for i in [0, N), nil for cyclic parameters
	PsiInvPowers []uint64
}

// NewTable derives the twiddle tables of the given parameters.
// The parameters having been validated by NewParameters, the roots are not checked again.
func NewTable(params Parameters) (t *Table) {

	t = &Table{Params: params}

	N := params.N()
	Q := params.Q()

	t.BRedConstant = GenBRedConstant(Q)

	// Q is prime and larger than the non-zero values inverted below,
	// so ModInversePrime cannot fail.
	t.NInv = mustModInversePrime(uint64(N), Q)

	t.RootsForward = powers(params.Omega(), N>>1, Q, t.BRedConstant)
	t.RootsBackward = powers(mustModInversePrime(params.Omega(), Q), N>>1, Q, t.BRedConstant)

	if params.IsNegacyclic() {
		t.PsiPowers = powers(params.Psi(), N, Q, t.BRedConstant)
		t.PsiInvPowers = powers(mustModInversePrime(params.Psi(), Q), N, Q, t.BRedConstant)
	}

	return
}

// powers returns [1, x, x^2, ..., x^(n-1)] mod q, computed by successive multiplications.
func powers(x uint64, n int, q uint64, brc [2]uint64) (pow []uint64) {
	pow = make([]uint64, n)
	if n == 0 {
		return
	}
	pow[0] = 1
	for i := 1; i < n; i++ {
		pow[i] = BRed(pow[i-1], x, q, brc)
	}
	return
}

func mustModInversePrime(x, q uint64) uint64 {
	xInv, err := ModInversePrime(x, q)
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return xInv
}
