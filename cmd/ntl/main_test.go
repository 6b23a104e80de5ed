package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ntlfhe/ntl/ring"
	"github.com/stretchr/testify/require"
)

func runString(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(args, &buf)
	return buf.String(), err
}

func TestRun(t *testing.T) {

	t.Run("Transform", func(t *testing.T) {

		out, err := runString(t, "ntt", "-q", "17", "-omega", "9", "-p", "1,2,3,7,5,4,1,2")
		require.NoError(t, err)
		require.Equal(t, "8,11,14,2,12,16,7,6\n", out)

		out, err = runString(t, "intt", "-q", "17", "-omega", "9", "-p", "8, 11, 14, 2, 12, 16, 7, 6")
		require.NoError(t, err)
		require.Equal(t, "1,2,3,7,5,4,1,2\n", out)

		_, err = runString(t, "ntt", "-q", "17", "-omega", "9", "-p", "1,2,3")
		require.True(t, errors.Is(err, ring.ErrInvalidInput))

		_, err = runString(t, "ntt", "-q", "17", "-omega", "9", "-p", "1,x")
		require.Error(t, err)
	})

	t.Run("Mul", func(t *testing.T) {

		out, err := runString(t, "mul", "-q", "17", "-a", "1,2,3,4", "-b", "5,6,7,8", "-check")
		require.NoError(t, err)
		require.Equal(t, "12,15,2,9\ncheck: ok\n", out)

		_, err = runString(t, "mul", "-q", "17", "-a", "1,2,3,4", "-b", "5,6,7")
		require.True(t, errors.Is(err, ring.ErrInvalidInput))

		_, err = runString(t, "mul", "-q", "17", "-a", "1,2,3,4")
		require.Error(t, err)
	})

	t.Run("Primes", func(t *testing.T) {
		out, err := runString(t, "primes", "-nthroot", "65536", "-bits", "30", "-count", "2")
		require.NoError(t, err)
		require.Equal(t, "537133057\n537591809\n", out)

		_, err = runString(t, "primes", "-nthroot", "64", "-bits", "5")
		require.True(t, errors.Is(err, ring.ErrInvalidInput))
	})

	t.Run("Root", func(t *testing.T) {

		out, err := runString(t, "root", "-n", "2048", "-q", "12289")
		require.NoError(t, err)
		require.Equal(t, "1945\n", out)

		_, err = runString(t, "root", "-n", "32", "-q", "17")
		require.True(t, errors.Is(err, ring.ErrPreconditionViolation))
	})

	t.Run("Bench", func(t *testing.T) {

		out, err := runString(t, "bench", "-logn", "4", "-q", "97", "-runs", "4", "-workers", "2")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "params: N=16/Q=97, workers: 2\n"), out)
		for _, op := range []string{"NTT", "INTT", "MulPoly", "digest"} {
			require.Contains(t, out, op)
		}

		// Cyclic parameters skip the product
		out, err = runString(t, "bench", "-logn", "4", "-q", "17", "-runs", "2")
		require.NoError(t, err)
		require.NotContains(t, out, "MulPoly")

		file := filepath.Join(t.TempDir(), "params.json")
		require.NoError(t, os.WriteFile(file, []byte(`{"LogN":3,"Q":17}`), 0600))

		out, err = runString(t, "bench", "-params", file, "-runs", "2")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "params: N=8/Q=17"), out)

		chart := filepath.Join(t.TempDir(), "bench.html")
		_, err = runString(t, "bench", "-logn", "4", "-q", "97", "-runs", "3", "-chart", chart)
		require.NoError(t, err)
		html, err := os.ReadFile(chart)
		require.NoError(t, err)
		require.Contains(t, string(html), "MulPoly")

		_, err = runString(t, "bench", "-runs", "0")
		require.Error(t, err)

		_, err = runString(t, "bench", "-logn", "5", "-q", "17")
		require.True(t, errors.Is(err, ring.ErrPreconditionViolation))
	})

	t.Run("BenchDeterministic", func(t *testing.T) {

		params, err := ring.NewParameters(ring.ParametersLiteral{LogN: 10, Q: 12289})
		require.NoError(t, err)

		res1, err := bench(params, 1, 2, "seed")
		require.NoError(t, err)

		res2, err := bench(params, 4, 2, "seed")
		require.NoError(t, err)

		require.Equal(t, res1.Digest, res2.Digest)

		res3, err := bench(params, 1, 2, "")
		require.NoError(t, err)
		require.Len(t, res3.Digest, ring.DigestSize)
	})

	t.Run("Microseconds", func(t *testing.T) {
		require.Equal(t, 0.25, microseconds(250*time.Nanosecond))
		require.Equal(t, 1500.0, microseconds(1500*time.Microsecond))
	})

	t.Run("Usage", func(t *testing.T) {

		_, err := runString(t)
		require.True(t, errors.Is(err, errUsage))

		_, err = runString(t, "fft")
		require.True(t, errors.Is(err, errUsage))
	})
}
