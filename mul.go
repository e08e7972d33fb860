package bignum

import "github.com/agbru/bignum/internal/config"

// magMulSchool multiplies two magnitudes with the classic O(n*m)
// schoolbook algorithm (spec.md §4.5): for each pair of limbs, the
// widened partial product is accumulated into the output at the
// position corresponding to the sum of the two limbs' weights, with
// carries propagated as they are produced.
func magMulSchool(lhs, rhs []digit) []digit {
	if len(lhs) == 0 || len(rhs) == 0 {
		return nil
	}
	out := make([]digit, len(lhs)+len(rhs))
	// out is big-endian. lhs[i] carries weight n-1-i and rhs[m-1-j]
	// carries weight j, so their product lands at output index
	// (n+m-1)-((n-1-i)+j) = m+i-j.
	n, m := len(lhs), len(rhs)
	for i := 0; i < n; i++ {
		if lhs[i] == 0 {
			continue
		}
		var carry doubleDigit
		li := doubleDigit(lhs[i])
		for j := 0; j < m; j++ {
			pos := m + i - j
			acc := li*doubleDigit(rhs[m-1-j]) + doubleDigit(out[pos]) + carry
			out[pos] = digit(acc & digitMask)
			carry = acc >> digitBits
		}
		pos := i
		for carry != 0 {
			acc := doubleDigit(out[pos]) + carry
			out[pos] = digit(acc & digitMask)
			carry = acc >> digitBits
			pos--
		}
	}
	return trim(out)
}

// Mul returns x*y, dispatching to schoolbook or FFT-based
// multiplication according to the configured crossover threshold
// (spec.md §4.5: "implementations MAY pick a threshold; the observable
// result is identical").
func (x Integer) Mul(y Integer) Integer {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	sign := x.sign != y.sign
	var mag []digit
	if len(x.limbs) >= config.Thresholds().FFTCrossoverLimbs &&
		len(y.limbs) >= config.Thresholds().FFTCrossoverLimbs {
		recordMul("fft", len(x.limbs), len(y.limbs))
		mag = magMulFFT(x.limbs, y.limbs)
	} else {
		recordMul("schoolbook", len(x.limbs), len(y.limbs))
		mag = magMulSchool(x.limbs, y.limbs)
	}
	return normalize(sign, mag)
}

// mulSchoolbook exposes the schoolbook path directly, bypassing the
// threshold dispatch. Used by tests to check FFT/schoolbook
// equivalence (spec.md §8 property 10).
func mulSchoolbook(x, y Integer) Integer {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	return normalize(x.sign != y.sign, magMulSchool(x.limbs, y.limbs))
}

// mulFFTForced exposes the FFT path directly, bypassing the threshold
// dispatch, for the same testing purpose as mulSchoolbook.
func mulFFTForced(x, y Integer) Integer {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	return normalize(x.sign != y.sign, magMulFFT(x.limbs, y.limbs))
}
