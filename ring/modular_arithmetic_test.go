package ring

import (
	"encoding/binary"
	"errors"
	"math/big"
	"testing"

	"github.com/ntlfhe/ntl/utils/sampling"
	"github.com/stretchr/testify/require"
)

func TestModularArithmetic(t *testing.T) {

	t.Run("ModExp", func(t *testing.T) {

		for _, tt := range []struct {
			base, exponent, modulus, want uint64
		}{
			{3, 200, 1000000007, 136318165},
			{2, 64, 1<<61 - 1, 8},
			{123456789, 987654321, Qi60[0], 1324667374808348282},
			{5, 0, 17, 1},
			{0, 0, 17, 1},
			{0, 5, 17, 0},
			{20, 1, 17, 3},
			{1 << 63, 2, 1<<63 + 1, 1},
		} {
			r, err := ModExp(tt.base, tt.exponent, tt.modulus)
			require.NoError(t, err)
			require.Equal(t, tt.want, r, "%d^%d mod %d", tt.base, tt.exponent, tt.modulus)
		}

		for _, modulus := range []uint64{0, 1} {
			_, err := ModExp(2, 3, modulus)
			require.True(t, errors.Is(err, ErrInvalidInput))
		}
	})

	t.Run("ModInversePrime", func(t *testing.T) {

		for _, tt := range []struct {
			x, q, want uint64
		}{
			{1, 7, 1},
			{2, 7, 4},
			{3, 17, 6},
			{2, 17, 9},
		} {
			r, err := ModInversePrime(tt.x, tt.q)
			require.NoError(t, err)
			require.Equal(t, tt.want, r)
		}

		for _, q := range []uint64{17, 97, 12289} {
			for x := uint64(1); x < q; x++ {
				xInv, err := ModInversePrime(x, q)
				require.NoError(t, err)
				require.Equal(t, uint64(1), MulMod(x, xInv, q))
			}
		}

		for _, tt := range []struct {
			x, q uint64
		}{
			{0, 17},
			{34, 17},
			{3, 1},
			{3, 0},
		} {
			_, err := ModInversePrime(tt.x, tt.q)
			require.True(t, errors.Is(err, ErrInvalidInput))
		}
	})

	t.Run("BRed", func(t *testing.T) {

		prng, err := sampling.NewSeededPRNG("BRed")
		require.NoError(t, err)

		buf := make([]byte, 16)

		for _, q := range append([]uint64{2, 3, 17, 12289}, Qi60...) {

			brc := GenBRedConstant(q)
			bigQ := new(big.Int).SetUint64(q)

			for i := 0; i < 256; i++ {

				_, err = prng.Read(buf)
				require.NoError(t, err)

				x := binary.LittleEndian.Uint64(buf[:8]) % q
				y := binary.LittleEndian.Uint64(buf[8:]) % q

				want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
				want.Mod(want, bigQ)

				require.Equal(t, want.Uint64(), BRed(x, y, q, brc), "%d * %d mod %d", x, y, q)
				require.Equal(t, want.Uint64(), MulMod(x, y, q), "%d * %d mod %d", x, y, q)
			}
		}
	})

	t.Run("CRed", func(t *testing.T) {
		require.Equal(t, uint64(0), CRed(17, 17))
		require.Equal(t, uint64(16), CRed(16, 17))
		require.Equal(t, uint64(15), CRed(32, 17))
	})
}
