package ring

// Qi60 are 61-bit NTT-friendly primes close to 2^61 for N up to 2^17.
var Qi60 = []uint64{0x1fffffffffe00001, 0x1fffffffffc80001, 0x1fffffffffb40001, 0x1fffffffff500001}

// testParameters are the parameters on which the tests of the package are run.
var testParameters = []ParametersLiteral{
	{LogN: 3, Q: 17},
	{LogN: 4, Q: 97},
	{LogN: 10, Q: 12289},
	{LogN: 12, Q: Qi60[0]},
	{LogN: 13, Q: Qi60[1]},
}
