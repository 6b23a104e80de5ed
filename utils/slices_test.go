package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualSlice(t *testing.T) {
	require.True(t, EqualSlice([]uint64{}, []uint64{}))
	require.True(t, EqualSlice([]int{1, 2, 3}, []int{1, 2, 3}))
	require.False(t, EqualSlice([]int{1, 2, 3}, []int{1, 2}))
	require.False(t, EqualSlice([]int{1, 2, 3}, []int{1, 2, 4}))
}

func TestMaxSlice(t *testing.T) {
	require.Equal(t, uint64(0), MaxSlice([]uint64{}))
	require.Equal(t, 7, MaxSlice([]int{3, 7, -1}))
	require.Equal(t, -1, MaxSlice([]int{-3, -1, -2}))
}

func TestAllLessThan(t *testing.T) {
	require.True(t, AllLessThan([]uint64{}, 0))
	require.True(t, AllLessThan([]uint64{0, 16}, 17))
	require.False(t, AllLessThan([]uint64{0, 17}, 17))
}

func TestCopyNew(t *testing.T) {
	s := []uint64{1, 2, 3}
	c := CopyNew(s)
	require.Equal(t, s, c)
	c[0] = 9
	require.Equal(t, uint64(1), s[0])
}
