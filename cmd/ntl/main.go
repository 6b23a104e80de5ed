// Command ntl evaluates number theoretic transforms and negacyclic products
// from the command line and benchmarks them.
//
// Usage:
//
//	ntl ntt    -q 17 -omega 9 -p 1,2,3,7,5,4,1,2
//	ntl intt   -q 17 -omega 9 -p 8,11,14,2,12,16,7,6
//	ntl mul    -q 17 -a 1,2,3,4 -b 5,6,7,8 [-check]
//	ntl primes -nthroot 65536 -bits 30 [-start 1] [-count 1]
//	ntl root   -n 16 -q 17
//	ntl bench  [-params params.json | -logn 12 -q 2305843009211596801] [-workers 4] [-runs 64] [-seed ntl] [-chart bench.html]
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/ntlfhe/ntl/ring"
	"github.com/ntlfhe/ntl/utils"
	"github.com/ntlfhe/ntl/utils/sampling"
)

const usage = "usage: ntl <ntt|intt|mul|primes|root|bench> [flags]"

var errUsage = errors.New(usage)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("ntl: %s", err)
	}
}

func run(args []string, w io.Writer) error {

	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]

	switch cmd {
	case "ntt", "intt":
		return runTransform(cmd, args, w)
	case "mul":
		return runMul(args, w)
	case "primes":
		return runPrimes(args, w)
	case "root":
		return runRoot(args, w)
	case "bench":
		return runBench(args, w)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runTransform(cmd string, args []string, w io.Writer) (err error) {

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	q := fs.Uint64("q", 0, "prime modulus")
	omega := fs.Uint64("omega", 0, "primitive N-th root of unity mod q")
	coeffs := fs.String("p", "", "comma separated coefficients, N = number of coefficients")

	if err = fs.Parse(args); err != nil {
		return
	}

	var p []uint64
	if p, err = parseCoefficients(*coeffs); err != nil {
		return
	}

	transform := ring.NTT
	if cmd == "intt" {
		transform = ring.INTT
	}

	if _, err = transform(p, *omega, len(p), *q); err != nil {
		return
	}

	fmt.Fprintln(w, formatCoefficients(p))

	return
}

func runMul(args []string, w io.Writer) (err error) {

	fs := flag.NewFlagSet("mul", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	q := fs.Uint64("q", 0, "prime modulus such that 2N divides q-1")
	aStr := fs.String("a", "", "comma separated coefficients of the first operand")
	bStr := fs.String("b", "", "comma separated coefficients of the second operand")
	check := fs.Bool("check", false, "compare the result against the schoolbook product")

	if err = fs.Parse(args); err != nil {
		return
	}

	var a, b, c []uint64

	if a, err = parseCoefficients(*aStr); err != nil {
		return
	}

	if b, err = parseCoefficients(*bStr); err != nil {
		return
	}

	if c, err = ring.PolyMult(a, b, len(a), *q); err != nil {
		return
	}

	fmt.Fprintln(w, formatCoefficients(c))

	if *check {

		var want []uint64
		if want, err = ring.NegacyclicConvolutionNaive(a, b, *q); err != nil {
			return
		}

		if !utils.EqualSlice(want, c) {
			return fmt.Errorf("check failed: schoolbook product is %s", formatCoefficients(want))
		}

		fmt.Fprintln(w, "check: ok")
	}

	return
}

func runPrimes(args []string, w io.Writer) (err error) {

	fs := flag.NewFlagSet("primes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	nthRoot := fs.Int("nthroot", 0, "power of two dividing q-1")
	bitLen := fs.Int("bits", 0, "bit length of the primes")
	start := fs.Int("start", 1, "index of the first prime returned")
	count := fs.Int("count", 1, "number of primes")

	if err = fs.Parse(args); err != nil {
		return
	}

	var primes []uint64
	if primes, err = ring.NTTFriendlyPrimes(*nthRoot, *bitLen, *start, *count); err != nil {
		return
	}

	for _, q := range primes {
		fmt.Fprintln(w, q)
	}

	return
}

func runRoot(args []string, w io.Writer) (err error) {

	fs := flag.NewFlagSet("root", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	N := fs.Int("n", 0, "order of the root, a power of two dividing q-1")
	q := fs.Uint64("q", 0, "prime modulus")

	if err = fs.Parse(args); err != nil {
		return
	}

	var root uint64
	if root, err = ring.PrimitiveNthRoot(*N, *q); err != nil {
		return
	}

	fmt.Fprintln(w, root)

	return
}

// benchResult stores the timings, in microseconds, of a benchmark run.
type benchResult struct {
	Params  ring.Parameters
	Workers int
	NTT     []float64
	INTT    []float64
	MulPoly []float64
	Digest  []byte
}

func runBench(args []string, w io.Writer) (err error) {

	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	paramsFile := fs.String("params", "", "JSON file storing a ring.ParametersLiteral")
	logN := fs.Int("logn", 12, "log2 of the transform length")
	q := fs.Uint64("q", 0x1fffffffffe00001, "prime modulus")
	workers := fs.Int("workers", 1, "number of goroutines per transform")
	runs := fs.Int("runs", 64, "number of timed runs")
	seed := fs.String("seed", "ntl", "seed of the input sampler, random if empty")
	chart := fs.String("chart", "", "optional HTML file plotting the timings of each run")

	if err = fs.Parse(args); err != nil {
		return
	}

	if *runs < 1 {
		return fmt.Errorf("invalid runs %d: must be positive", *runs)
	}

	pl := ring.ParametersLiteral{LogN: *logN, Q: *q}

	if *paramsFile != "" {
		var data []byte
		if data, err = os.ReadFile(*paramsFile); err != nil {
			return
		}
		if err = json.Unmarshal(data, &pl); err != nil {
			return fmt.Errorf("cannot parse %s: %w", *paramsFile, err)
		}
	}

	var params ring.Parameters
	if params, err = ring.NewParameters(pl); err != nil {
		return
	}

	var res *benchResult
	if res, err = bench(params, *workers, *runs, *seed); err != nil {
		return
	}

	res.print(w)

	if *chart != "" {

		var f *os.File
		if f, err = os.Create(*chart); err != nil {
			return
		}

		if err = res.renderChart(f); err != nil {
			f.Close()
			return fmt.Errorf("cannot render %s: %w", *chart, err)
		}

		if err = f.Close(); err != nil {
			return fmt.Errorf("cannot write %s: %w", *chart, err)
		}
	}

	return
}

func bench(params ring.Parameters, workers, runs int, seed string) (res *benchResult, err error) {

	// An empty seed samples the inputs from crypto/rand.
	var prng sampling.PRNG
	if seed == "" {
		prng, err = sampling.NewPRNG()
	} else {
		prng, err = sampling.NewSeededPRNG(seed)
	}

	if err != nil {
		return
	}

	sampler := ring.NewUniformSampler(prng, params)
	eval := ring.NewEvaluator(ring.NewTable(params), workers)

	a := sampler.ReadNew()
	b := sampler.ReadNew()
	c := make([]uint64, params.N())

	res = &benchResult{
		Params:  eval.Parameters(),
		Workers: workers,
		NTT:     make([]float64, runs),
		INTT:    make([]float64, runs),
	}

	p := utils.CopyNew(a)

	for i := 0; i < runs; i++ {

		now := time.Now()
		if err = eval.NTT(p); err != nil {
			return
		}
		res.NTT[i] = microseconds(time.Since(now))

		now = time.Now()
		if err = eval.INTT(p); err != nil {
			return
		}
		res.INTT[i] = microseconds(time.Since(now))
	}

	if !utils.EqualSlice(a, p) {
		return nil, fmt.Errorf("INTT(NTT(p)) != p for %s", params)
	}

	if params.IsNegacyclic() {

		res.MulPoly = make([]float64, runs)

		for i := 0; i < runs; i++ {
			now := time.Now()
			if err = eval.MulPoly(a, b, c); err != nil {
				return
			}
			res.MulPoly[i] = microseconds(time.Since(now))
		}

		res.Digest = ring.Digest(c)
	}

	return
}

func (res *benchResult) print(w io.Writer) {

	fmt.Fprintf(w, "params: %s, workers: %d\n", res.Params, res.Workers)

	for _, op := range []struct {
		name    string
		timings []float64
	}{
		{"NTT", res.NTT},
		{"INTT", res.INTT},
		{"MulPoly", res.MulPoly},
	} {

		if len(op.timings) == 0 {
			continue
		}

		mean, _ := stats.Mean(op.timings)
		median, _ := stats.Median(op.timings)
		stddev, _ := stats.StandardDeviation(op.timings)

		fmt.Fprintf(w, "%-8s mean: %10.2fus median: %10.2fus stddev: %8.2fus max: %10.2fus\n",
			op.name, mean, median, stddev, utils.MaxSlice(op.timings))
	}

	if res.Digest != nil {
		fmt.Fprintf(w, "digest: %s\n", hex.EncodeToString(res.Digest))
	}
}

// microseconds returns d in microseconds without truncating to whole units.
func microseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e3
}

func parseCoefficients(s string) (p []uint64, err error) {

	if s == "" {
		return nil, fmt.Errorf("no coefficients given")
	}

	fields := strings.Split(s, ",")
	p = make([]uint64, len(fields))

	for i, f := range fields {
		if p[i], err = strconv.ParseUint(strings.TrimSpace(f), 10, 64); err != nil {
			return nil, fmt.Errorf("invalid coefficient %d: %w", i, err)
		}
	}

	return
}

func formatCoefficients(p []uint64) string {
	fields := make([]string, len(p))
	for i, c := range p {
		fields[i] = strconv.FormatUint(c, 10)
	}
	return strings.Join(fields, ",")
}
