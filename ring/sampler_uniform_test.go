package ring

import (
	"testing"

	"github.com/ntlfhe/ntl/utils"
	"github.com/ntlfhe/ntl/utils/sampling"
	"github.com/stretchr/testify/require"
)

func TestUniformSampler(t *testing.T) {

	for _, pl := range testParameters[:3] {

		params, err := NewParameters(pl)
		require.NoError(t, err)

		t.Run(testString("UniformSampler", params), func(t *testing.T) {

			prng1, err := sampling.NewSeededPRNG("uniform")
			require.NoError(t, err)
			prng2, err := sampling.NewSeededPRNG("uniform")
			require.NoError(t, err)

			p1 := NewUniformSampler(prng1, params).ReadNew()
			p2 := NewUniformSampler(prng2, params).ReadNew()

			require.Len(t, p1, params.N())
			require.True(t, utils.AllLessThan(p1, params.Q()))
			require.Equal(t, p1, p2)
			require.Equal(t, Digest(p1), Digest(p2))

			// Fresh samples differ with overwhelming probability
			sampler := NewUniformSampler(prng1, params)
			p3 := sampler.ReadNew()
			require.NotEqual(t, Digest(p1), Digest(p3))

			// All residues are reached for small moduli
			if params.Q() < 128 {
				seen := make([]bool, params.Q())
				buf := make([]uint64, 1<<12)
				sampler.Read(buf)
				for _, c := range buf {
					seen[c] = true
				}
				for c := range seen {
					require.True(t, seen[c], c)
				}
			}
		})
	}
}

func TestDigest(t *testing.T) {
	require.Len(t, Digest(nil), DigestSize)
	require.Equal(t, Digest([]uint64{1, 2, 3}), Digest([]uint64{1, 2, 3}))
	require.NotEqual(t, Digest([]uint64{1, 2, 3}), Digest([]uint64{1, 3, 2}))
	require.NotEqual(t, Digest([]uint64{0}), Digest([]uint64{0, 0}))
}
