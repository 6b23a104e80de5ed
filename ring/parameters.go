package ring

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/bits"
)

// ParametersLiteral is a literal representation of a set of ring parameters.
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs or JSON files. It must be passed to NewParameters
// to obtain a validated Parameters.
//
// Psi is a primitive 2N-th root of unity and Omega a primitive N-th root of unity mod Q:
//   - If Psi is set, Omega defaults to Psi^2 mod Q.
//   - If only Omega is set, the parameters are cyclic only and cannot be used
//     for negacyclic products.
//   - If neither is set, Psi (or Omega if 2N does not divide Q-1) is derived
//     with PrimitiveNthRoot.
//
// Trusted skips the primality test of Q and the order checks of the roots.
// Structural checks are always performed. The flag is kept by the resulting
// Parameters and survives their JSON and binary encodings.
type ParametersLiteral struct {
	LogN    int
	Q       uint64
	Psi     uint64 `json:",omitempty"`
	Omega   uint64 `json:",omitempty"`
	Trusted bool   `json:",omitempty"`
}

// Parameters is an immutable, validated set of ring parameters (N, Q, Omega, Psi).
type Parameters struct {
	logN  int
	q     uint64
	omega uint64
	psi   uint64

	trusted bool
}

// NewParameters validates the ParametersLiteral and returns the corresponding Parameters.
// Returns an error wrapping ErrInvalidInput for structurally invalid values and
// ErrPreconditionViolation if Q is not prime or if a root does not have the required order.
func NewParameters(pl ParametersLiteral) (p Parameters, err error) {

	if pl.LogN < 1 || pl.LogN > 30 {
		return Parameters{}, fmt.Errorf("invalid LogN %d: must be in [1, 30]: %w", pl.LogN, ErrInvalidInput)
	}

	N := uint64(1) << pl.LogN

	if pl.Q < 3 || bits.Len64(pl.Q) > MaxModulusBits {
		return Parameters{}, fmt.Errorf("invalid modulus %d: must be in [3, 2^%d): %w", pl.Q, MaxModulusBits, ErrInvalidInput)
	}

	if pl.Psi >= pl.Q || pl.Omega >= pl.Q {
		return Parameters{}, fmt.Errorf("invalid roots: must be smaller than the modulus %d: %w", pl.Q, ErrInvalidInput)
	}

	if (pl.Q-1)%N != 0 {
		return Parameters{}, fmt.Errorf("invalid modulus %d: N=%d does not divide Q-1: %w", pl.Q, N, ErrPreconditionViolation)
	}

	negacyclic := (pl.Q-1)%(N<<1) == 0

	if pl.Psi != 0 && !negacyclic {
		return Parameters{}, fmt.Errorf("invalid modulus %d: 2N=%d does not divide Q-1: %w", pl.Q, N<<1, ErrPreconditionViolation)
	}

	if !pl.Trusted && !IsPrime(pl.Q) {
		return Parameters{}, fmt.Errorf("invalid modulus %d: not prime: %w", pl.Q, ErrPreconditionViolation)
	}

	p = Parameters{logN: pl.LogN, q: pl.Q, omega: pl.Omega, psi: pl.Psi, trusted: pl.Trusted}

	brc := GenBRedConstant(p.q)

	switch {
	case p.psi == 0 && p.omega == 0:

		if negacyclic {
			if p.psi, err = PrimitiveNthRoot(int(N<<1), p.q); err != nil {
				return Parameters{}, err
			}
		} else {
			if p.omega, err = PrimitiveNthRoot(int(N), p.q); err != nil {
				return Parameters{}, err
			}
		}

	case p.psi != 0 && !pl.Trusted:

		if !IsPrimitiveNthRoot(p.psi, int(N<<1), p.q) {
			return Parameters{}, fmt.Errorf("invalid Psi %d: not a primitive %d-th root of unity mod %d: %w", p.psi, N<<1, p.q, ErrPreconditionViolation)
		}

	case p.omega != 0 && !pl.Trusted:

		if !IsPrimitiveNthRoot(p.omega, int(N), p.q) {
			return Parameters{}, fmt.Errorf("invalid Omega %d: not a primitive %d-th root of unity mod %d: %w", p.omega, N, p.q, ErrPreconditionViolation)
		}
	}

	if p.psi != 0 {
		omega := BRed(p.psi, p.psi, p.q, brc)
		if p.omega != 0 && p.omega != omega {
			return Parameters{}, fmt.Errorf("invalid Omega %d: must be equal to Psi^2 = %d: %w", p.omega, omega, ErrInvalidInput)
		}
		p.omega = omega
	}

	return
}

// N returns the transform length.
func (p Parameters) N() int {
	return 1 << p.logN
}

// LogN returns log2 of the transform length.
func (p Parameters) LogN() int {
	return p.logN
}

// Q returns the prime modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// Omega returns the primitive N-th root of unity.
func (p Parameters) Omega() uint64 {
	return p.omega
}

// Psi returns the primitive 2N-th root of unity, or zero if the parameters are cyclic only.
func (p Parameters) Psi() uint64 {
	return p.psi
}

// IsNegacyclic returns true if the parameters support products modulo X^N+1.
func (p Parameters) IsNegacyclic() bool {
	return p.psi != 0
}

// Equal returns true if the two parameter sets are identical, including their Trusted flag.
func (p Parameters) Equal(other Parameters) bool {
	return p == other
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	pl := ParametersLiteral{LogN: p.logN, Q: p.q, Psi: p.psi, Trusted: p.trusted}
	if p.psi == 0 {
		pl.Omega = p.omega
	}
	return pl
}

// String returns a short description of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("N=%d/Q=%d", p.N(), p.q)
}

const trustedFlag = 0x80

// BinarySize returns the serialized size of the object in bytes.
func (p Parameters) BinarySize() int {
	return 1 + 3*8
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
// The first byte stores LogN and, in its most significant bit, the Trusted flag.
func (p Parameters) MarshalBinary() (data []byte, err error) {
	data = make([]byte, p.BinarySize())
	data[0] = uint8(p.logN)
	if p.trusted {
		data[0] |= trustedFlag
	}
	binary.LittleEndian.PutUint64(data[1:], p.q)
	binary.LittleEndian.PutUint64(data[9:], p.omega)
	binary.LittleEndian.PutUint64(data[17:], p.psi)
	return
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on the object.
// The decoded parameters are validated again.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {

	if len(data) != p.BinarySize() {
		return fmt.Errorf("invalid parameters encoding: expected %d bytes but got %d: %w", p.BinarySize(), len(data), ErrInvalidInput)
	}

	pl := ParametersLiteral{
		LogN:    int(data[0] &^ trustedFlag),
		Q:       binary.LittleEndian.Uint64(data[1:]),
		Psi:     binary.LittleEndian.Uint64(data[17:]),
		Trusted: data[0]&trustedFlag != 0,
	}

	if pl.Psi == 0 {
		pl.Omega = binary.LittleEndian.Uint64(data[9:])
	}

	*p, err = NewParameters(pl)
	return
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var pl ParametersLiteral
	if err = json.Unmarshal(data, &pl); err != nil {
		return
	}
	*p, err = NewParameters(pl)
	return
}
