package testutil

import (
	"math"
	"math/rand/v2"
)

// Sequence returns [0, 1, ..., n-1].
func Sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Tone returns n samples of a unit cosine that completes exactly bin cycles
// over the block, so its spectrum peaks at bins bin and n-bin.
func Tone(bin, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Cos(2 * math.Pi * float64(bin*i) / float64(n))
	}
	return out
}

// Noise returns n values uniform in [-1, 1). The same seed always yields the
// same values.
func Noise(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// Delta returns n zeros with a single 1 at pos. A pos outside [0, n) yields
// all zeros.
func Delta(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}
