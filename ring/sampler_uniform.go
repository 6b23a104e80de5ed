package ring

import (
	"encoding/binary"
	"math/bits"

	"github.com/ntlfhe/ntl/utils/sampling"
)

const randomBufferSize = 1024

// UniformSampler wraps a sampling.PRNG and samples coefficient vectors
// uniformly in [0, Q).
// A UniformSampler must not be used concurrently.
type UniformSampler struct {
	prng   sampling.PRNG
	params Parameters
	mask   uint64
	buffer []byte
	ptr    int
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and parameters.
func NewUniformSampler(prng sampling.PRNG, params Parameters) (u *UniformSampler) {
	return &UniformSampler{
		prng:   prng,
		params: params,
		mask:   (1 << uint64(bits.Len64(params.Q()-1))) - 1,
		buffer: make([]byte, randomBufferSize),
		ptr:    randomBufferSize,
	}
}

// Read samples the coefficients of p uniformly in [0, Q).
func (u *UniformSampler) Read(p []uint64) {

	Q := u.params.Q()

	for i := range p {

		// Samples an integer between [0, Q-1]
		for {

			// Refills the buff if it runs empty
			if u.ptr == len(u.buffer) {
				if _, err := u.prng.Read(u.buffer); err != nil {
					// Sanity check, this error should not happen.
					panic(err)
				}
				u.ptr = 0
			}

			randomUint := binary.BigEndian.Uint64(u.buffer[u.ptr:u.ptr+8]) & u.mask
			u.ptr += 8

			// If the integer is between [0, Q-1], breaks the loop
			if randomUint < Q {
				p[i] = randomUint
				break
			}
		}
	}
}

// ReadNew generates a new coefficient vector of length N with coefficients
// following a uniform distribution over [0, Q).
func (u *UniformSampler) ReadNew() (p []uint64) {
	p = make([]uint64, u.params.N())
	u.Read(p)
	return
}
