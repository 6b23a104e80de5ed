// Package ring implements the number theoretic transform (NTT) over a prime field
// Z_Q and the negacyclic polynomial product in Z_Q[X]/(X^N+1) built on top of it,
// together with the modular arithmetic they depend on.
//
// Coefficient vectors are plain []uint64 of length N with coefficients in [0, Q),
// transformed in place. The twiddle factors of a parameter set are precomputed once
// in an immutable Table, which an Evaluator shares between transforms.
package ring
