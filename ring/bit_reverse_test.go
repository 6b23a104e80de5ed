package ring

import (
	"errors"
	"testing"

	"github.com/ntlfhe/ntl/utils"
	"github.com/stretchr/testify/require"
)

func TestBitReverse(t *testing.T) {

	t.Run("BitReverse", func(t *testing.T) {
		require.Equal(t, uint64(4), BitReverse(1, 3))
		require.Equal(t, uint64(6), BitReverse(3, 3))
		require.Equal(t, uint64(1), BitReverse(4, 3))
		require.Equal(t, uint64(10), BitReverse(5, 4))
		// Bits above the width are ignored
		require.Equal(t, uint64(4), BitReverse(9, 3))
		require.Equal(t, uint64(0), BitReverse(1, 0))
		require.Equal(t, uint64(1)<<63, BitReverse(1, 64))
		// Widths are clamped to [0, 64]
		require.Equal(t, uint64(0), BitReverse(1, -1))
		require.Equal(t, uint64(1)<<63, BitReverse(1, 65))
	})

	t.Run("Permute", func(t *testing.T) {

		for _, tt := range []struct {
			in, want []uint64
		}{
			{[]uint64{7}, []uint64{7}},
			{[]uint64{0, 1}, []uint64{0, 1}},
			{[]uint64{0, 1, 2, 3}, []uint64{0, 2, 1, 3}},
			{[]uint64{0, 1, 2, 3, 4, 5, 6, 7}, []uint64{0, 4, 2, 6, 1, 5, 3, 7}},
		} {
			out, err := BitReversePermute(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		}
	})

	t.Run("Involution", func(t *testing.T) {

		want := make([]uint64, 1<<10)
		for i := range want {
			want[i] = uint64(i)
		}

		p := utils.CopyNew(want)

		_, err := BitReversePermute(p)
		require.NoError(t, err)
		require.False(t, utils.EqualSlice(want, p))

		for i := range p {
			require.Equal(t, BitReverse(uint64(i), 10), p[i])
		}

		_, err = BitReversePermute(p)
		require.NoError(t, err)
		require.Equal(t, want, p)
	})

	t.Run("InvalidLength", func(t *testing.T) {
		for _, p := range [][]uint64{{}, {1, 2, 3}, {1, 2, 3, 4, 5, 6}} {
			want := utils.CopyNew(p)
			_, err := BitReversePermute(p)
			require.True(t, errors.Is(err, ErrInvalidInput))
			require.Equal(t, want, p)
		}
	})
}
