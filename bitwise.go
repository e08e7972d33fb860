package bignum

// alignedLSB applies op to a and b limb-wise, aligned at the
// least-significant end: the shorter operand is treated as having
// implicit zero limbs at its most-significant end (spec.md §4.7).
func alignedLSB(a, b []digit, op func(x, y digit) digit) []digit {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]digit, n)
	for i := 0; i < n; i++ {
		var av, bv digit
		if idx := len(a) - n + i; idx >= 0 {
			av = a[idx]
		}
		if idx := len(b) - n + i; idx >= 0 {
			bv = b[idx]
		}
		out[i] = op(av, bv)
	}
	return out
}

// And returns x&y. The sign of the result is x's sign (spec.md §4.7).
func (x Integer) And(y Integer) Integer {
	mag := alignedLSB(x.limbs, y.limbs, func(a, b digit) digit { return a & b })
	return normalize(x.sign, mag)
}

// Or returns x|y. The sign of the result is x's sign.
func (x Integer) Or(y Integer) Integer {
	mag := alignedLSB(x.limbs, y.limbs, func(a, b digit) digit { return a | b })
	return normalize(x.sign, mag)
}

// Xor returns x^y. The sign of the result is x's sign.
func (x Integer) Xor(y Integer) Integer {
	mag := alignedLSB(x.limbs, y.limbs, func(a, b digit) digit { return a ^ b })
	return normalize(x.sign, mag)
}

// Not flips every bit of every existing limb of x's magnitude and
// trims any leading zero limbs the flip produces. This is NOT
// two's-complement negation (spec.md §4.7 is explicit that it is not);
// it operates only on the bits x's representation already has, so a
// magnitude whose top limb is entirely 1 bits (e.g. 0xFF) collapses
// toward zero on complement, same as the source representation this
// is grounded on. Sign is passed through unchanged.
func (x Integer) Not() Integer {
	mag := make([]digit, len(x.limbs))
	for i, d := range x.limbs {
		mag[i] = ^d
	}
	return normalize(x.sign, mag)
}

// Fill returns 2^n-1: a non-negative magnitude with exactly n set
// bits (spec.md §4.7). Fill(0) is zero.
func Fill(n int) Integer {
	if n <= 0 {
		return Zero()
	}
	nBytes := (n + digitBits - 1) / digitBits
	limbs := make([]digit, nBytes)
	for i := range limbs {
		limbs[i] = digitMask
	}
	if extra := nBytes*digitBits - n; extra > 0 {
		limbs[0] &= digitMask >> uint(extra)
	}
	return normalize(false, limbs)
}

// TwosComplement returns the fixed-width two's-complement bit pattern
// of x's magnitude: (2^width-1) XOR |x|, plus one, truncated to width
// bits (spec.md §4.7). The result is always a non-negative Integer
// representing a raw bit pattern, not a signed value.
func (x Integer) TwosComplement(width int) Integer {
	mask := Fill(width)
	return mask.Xor(x.abs()).Add(One()).And(mask)
}
