package sampling

import (
	"github.com/zeebo/blake3"
)

// KeySize is the size in bytes of the keys returned by DeriveKey.
const KeySize = 32

// DeriveKey hashes an arbitrary seed string into a KeySize-byte PRNG key.
func DeriveKey(seed string) []byte {
	hasher := blake3.New()
	hasher.Write([]byte(seed))
	sum := hasher.Sum(nil)
	return sum[:KeySize]
}
