package ring

import (
	"fmt"

	"github.com/ntlfhe/ntl/utils"
)

// IsPowerOfTwo returns true if n is a strictly positive power of two.
func IsPowerOfTwo(n int) bool {
	return utils.IsPowerOfTwo(n)
}

// BitReverse reverses the order of the low bitWidth bits of x.
// For example BitReverse(1, 3) = 4 and BitReverse(3, 3) = 6.
// bitWidth is clamped to [0, 64].
func BitReverse(x uint64, bitWidth int) uint64 {
	bitWidth = min(max(bitWidth, 0), 64)
	return utils.BitReverse(x&(1<<bitWidth-1), bitWidth)
}

// BitReversePermute applies in place the bit-reversal permutation to buffer:
// for k = log2(len(buffer)), buffer[i] and buffer[BitReverse(i, k)] are exchanged.
// The input buffer is returned.
// Returns an error wrapping ErrInvalidInput if len(buffer) is not a power of two,
// in which case buffer is left untouched.
func BitReversePermute(buffer []uint64) ([]uint64, error) {

	if !IsPowerOfTwo(len(buffer)) {
		return buffer, fmt.Errorf("invalid buffer length %d: must be a power of two: %w", len(buffer), ErrInvalidInput)
	}

	bitReversePermute(buffer)

	return buffer, nil
}

func bitReversePermute(buffer []uint64) {
	k := utils.Log2(uint64(len(buffer)))
	for i := range buffer {
		// Swapping only when i < br(i) avoids undoing a previous swap.
		if j := int(utils.BitReverse(uint64(i), k)); i < j {
			buffer[i], buffer[j] = buffer[j], buffer[i]
		}
	}
}
