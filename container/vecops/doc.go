// Package vecops provides element-wise float64 block operations and spectra
// over dynamic arrays.
//
// Block products and magnitudes run on the SIMD kernels of algo-vecmath
// (AVX2, SSE2, NEON) when the CPU supports them; spectra use algo-fft plans.
// Results are returned as new arrays or written into a destination array,
// which is resized to fit.
package vecops
