package vecops

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-container/container/buffer"
	"github.com/cwbudde/algo-container/container/dynarray"
)

var (
	ErrLengthMismatch = errors.New("vecops: length mismatch")
	ErrEmptyInput     = errors.New("vecops: empty input")
)

// scratch holds real/imaginary split buffers between calls.
var scratch = buffer.NewPool[float64]()

// Mul stores a[i]*b[i] into dst, resizing dst to a.Len().
// dst may alias a or b.
func Mul(dst, a, b *dynarray.Array[float64]) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	if err := dst.Resize(a.Len()); err != nil {
		return err
	}
	vecmath.MulBlock(dst.Slice(), a.Slice(), b.Slice())
	return nil
}

// MulInPlace multiplies dst element-wise by b.
func MulInPlace(dst, b *dynarray.Array[float64]) error {
	if dst.Len() != b.Len() {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, dst.Len(), b.Len())
	}
	vecmath.MulBlockInPlace(dst.Slice(), b.Slice())
	return nil
}

// Spectrum returns the forward FFT of a, zero-padded to the next power of
// two.
func Spectrum(a *dynarray.Array[float64]) (*dynarray.Array[complex128], error) {
	if a.IsEmpty() {
		return nil, ErrEmptyInput
	}
	size := NextPowerOfTwo(a.Len())

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("vecops: failed to create FFT plan: %w", err)
	}

	in, err := dynarray.Make[complex128](size)
	if err != nil {
		return nil, err
	}
	defer in.Release()
	for i, v := range a.All() {
		in.Set(i, complex(v, 0))
	}

	out, err := dynarray.Make[complex128](size)
	if err != nil {
		return nil, err
	}
	if err := plan.Forward(out.Slice(), in.Slice()); err != nil {
		return nil, fmt.Errorf("vecops: forward FFT: %w", err)
	}
	return out, nil
}

// Magnitude returns |X[k]| for each bin.
func Magnitude(bins *dynarray.Array[complex128]) (*dynarray.Array[float64], error) {
	return split(bins, func(dst, re, im []float64) { vecmath.Magnitude(dst, re, im) })
}

// Power returns |X[k]|^2 for each bin.
func Power(bins *dynarray.Array[complex128]) (*dynarray.Array[float64], error) {
	return split(bins, func(dst, re, im []float64) { vecmath.Power(dst, re, im) })
}

// split unpacks bins into real and imaginary scratch parts and runs kernel
// over them into a new array.
func split(bins *dynarray.Array[complex128], kernel func(dst, re, im []float64)) (*dynarray.Array[float64], error) {
	n := bins.Len()
	out, err := dynarray.Make[float64](n)
	if err != nil || n == 0 {
		return out, err
	}

	buf, err := scratch.Get(2 * n)
	if err != nil {
		return nil, err
	}
	defer scratch.Put(&buf)

	s := buf.Get()
	re, im := s[:n], s[n:]
	for i, c := range bins.All() {
		re[i] = real(c)
		im[i] = imag(c)
	}

	kernel(out.Slice(), re, im)
	return out, nil
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
