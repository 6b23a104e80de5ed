package ring

import (
	"math/bits"

	"github.com/ntlfhe/ntl/utils/concurrency"
)

// MinButterfliesPerTask is the minimum number of butterflies processed by a
// single task of a NumberTheoreticTransformerParallel.
const MinButterfliesPerTask = 1 << 10

// NumberTheoreticTransformerParallel evaluates the NTT using a pool of workers.
// The butterflies of a stage act on disjoint pairs of indices and are split into
// contiguous chunks processed concurrently. Stages are executed in sequence,
// each one waiting for the completion of the previous one.
type NumberTheoreticTransformerParallel struct {
	*Table
	Workers int
}

// NewNumberTheoreticTransformerParallel returns a NumberTheoreticTransformer using at most workers goroutines.
// Values of workers smaller than 1 are treated as 1.
func NewNumberTheoreticTransformerParallel(t *Table, workers int) NumberTheoreticTransformer {
	return NumberTheoreticTransformerParallel{Table: t, Workers: max(workers, 1)}
}

// Forward evaluates p = NTT(p) in place.
func (rntt NumberTheoreticTransformerParallel) Forward(p []uint64) (err error) {

	if err = checkCoefficients(p, rntt.Params.N(), rntt.Params.Q()); err != nil {
		return
	}

	bitReversePermute(p)

	return rntt.butterflies(p, rntt.RootsForward)
}

// Backward evaluates p = INTT(p) in place.
func (rntt NumberTheoreticTransformerParallel) Backward(p []uint64) (err error) {

	if err = checkCoefficients(p, rntt.Params.N(), rntt.Params.Q()); err != nil {
		return
	}

	bitReversePermute(p)

	if err = rntt.butterflies(p, rntt.RootsBackward); err != nil {
		return
	}

	q, brc, NInv := rntt.Params.Q(), rntt.BRedConstant, rntt.NInv

	return rntt.run(len(p), func(start, end int) {
		mulScalar(p[start:end], NInv, q, brc)
	})
}

func (rntt NumberTheoreticTransformerParallel) butterflies(p, roots []uint64) (err error) {

	N := len(p)
	logN := bits.Len64(uint64(N)) - 1
	q, brc := rntt.Params.Q(), rntt.BRedConstant

	for s := 0; s < logN; s++ {

		// Stage s has N/2 butterflies indexed by b: the butterfly b acts on the
		// block k = (b / 2^s) * 2^(s+1), offset j = b mod 2^s.
		mask := 1<<s - 1
		shift := logN - s - 1

		if err = rntt.run(N>>1, func(start, end int) {
			for b := start; b < end; b++ {
				j := b & mask
				x := ((b >> s) << (s + 1)) + j
				y := x + (1 << s)
				p[x], p[y] = butterfly(p[x], p[y], roots[j<<shift], q, brc)
			}
		}); err != nil {
			return
		}
	}

	return
}

// run splits [0, n) into contiguous chunks, calls f on each of them concurrently
// and returns once all calls have returned.
func (rntt NumberTheoreticTransformerParallel) run(n int, f func(start, end int)) (err error) {

	chunk := max((n+rntt.Workers-1)/rntt.Workers, MinButterfliesPerTask)

	if chunk >= n {
		f(0, n)
		return
	}

	workers := make([]int, rntt.Workers)
	for i := range workers {
		workers[i] = i
	}

	rm := concurrency.NewResourceManager(workers)

	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		rm.Run(func(worker int) (err error) {
			f(start, end)
			return
		})
	}

	return rm.Wait()
}
