package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	require.False(t, IsPowerOfTwo(0))
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(uint64(1)<<63))
	require.False(t, IsPowerOfTwo(-8))
	require.False(t, IsPowerOfTwo(12))
	require.True(t, IsPowerOfTwo(uint8(128)))
}

func TestLog2(t *testing.T) {
	require.Equal(t, 0, Log2(uint64(0)))
	require.Equal(t, 0, Log2(uint64(1)))
	require.Equal(t, 3, Log2(uint(8)))
	require.Equal(t, 3, Log2(uint32(15)))
	require.Equal(t, 63, Log2(uint64(1)<<63))
}

func TestBitReverse(t *testing.T) {
	require.Equal(t, uint64(4), BitReverse(uint64(1), 3))
	require.Equal(t, uint64(6), BitReverse(uint64(3), 3))
	require.Equal(t, uint64(10), BitReverse(uint64(5), 4))
	require.Equal(t, uint32(0), BitReverse(uint32(0), 0))
	require.Equal(t, uint(1), BitReverse(uint(1)<<9, 10))
}
