package ring

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// DigestSize is the size in bytes of the output of Digest.
const DigestSize = 32

// Digest returns a blake3 hash of the little-endian encoding of the coefficients.
// Two vectors have the same digest if and only if they are equal, up to collisions.
func Digest(coeffs []uint64) []byte {
	hasher := blake3.New()
	buf := make([]byte, 8)
	for _, c := range coeffs {
		binary.LittleEndian.PutUint64(buf, c)
		hasher.Write(buf)
	}
	return hasher.Sum(nil)[:DigestSize]
}
