package bignum

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// magMulFFT multiplies two big-endian magnitudes via a complex-DFT
// polynomial multiplication (spec.md §4.5): each operand's limbs
// become the coefficients of a polynomial in x = 2^B, both polynomials
// are transformed, multiplied pointwise, inverse-transformed, rounded,
// and carry-propagated back into base-2^B limbs.
func magMulFFT(lhsBE, rhsBE []digit) []digit {
	la, lb := len(lhsBE), len(rhsBE)
	if la == 0 || lb == 0 {
		return nil
	}
	n := nextPow2(la + lb)

	fa := acquireComplexBuf(n)
	fb := acquireComplexBuf(n)
	defer releaseComplexBuf(fa)
	defer releaseComplexBuf(fb)

	// Coefficients are laid out little-endian (index k = coefficient of
	// x^k); the source magnitudes are big-endian, so index i of the
	// buffer takes limb la-1-i / lb-1-i.
	for i := 0; i < la; i++ {
		fa[i] = complex(float64(lhsBE[la-1-i]), 0)
	}
	for i := 0; i < lb; i++ {
		fb[i] = complex(float64(rhsBE[lb-1-i]), 0)
	}

	// The two forward transforms are independent; run them
	// concurrently (grounded on the teacher's golang.org/x/sync
	// dependency) and join before the pointwise multiply.
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error { fft(fa, false); return nil })
	g.Go(func() error { fft(fb, false); return nil })
	_ = g.Wait() // fft never errors; the group only buys concurrency here

	for i := range fa {
		fa[i] *= fb[i]
	}
	fft(fa, true)

	return carryPropagateFFT(fa)
}

// carryPropagateFFT rounds each (near-integer, non-negative up to
// floating point error) coefficient to the nearest integer and
// propagates carries base 2^B from least to most significant, then
// reverses the result to the package's big-endian convention.
func carryPropagateFFT(coeffs []complex128) []digit {
	out := make([]digit, 0, len(coeffs)+1)
	var carry uint64
	for _, c := range coeffs {
		v := math.Floor(real(c) + 0.5)
		if v < 0 {
			v = 0
		}
		carry += uint64(v)
		out = append(out, digit(carry&digitMask))
		carry >>= digitBits
	}
	for carry != 0 {
		out = append(out, digit(carry&digitMask))
		carry >>= digitBits
	}
	be := make([]digit, len(out))
	for i, d := range out {
		be[len(out)-1-i] = d
	}
	return trim(be)
}

// fft performs an iterative, in-place radix-2 Cooley-Tukey transform
// on a, whose length must be a power of two. When invert is false this
// is the forward transform with twiddle factors ω = exp(-2πik/N); when
// true it is the inverse transform (conjugated twiddles, result scaled
// by 1/N), per spec.md §4.5.
func fft(a []complex128, invert bool) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		ang := 2 * math.Pi / float64(length)
		if !invert {
			ang = -ang
		}
		wlen := complex(math.Cos(ang), math.Sin(ang))
		for i := 0; i < n; i += length {
			w := complex(1.0, 0.0)
			half := length / 2
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
				w *= wlen
			}
		}
	}

	if invert {
		inv := complex(1/float64(n), 0)
		for i := range a {
			a[i] *= inv
		}
	}
}
