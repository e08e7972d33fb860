package bignum

// magAdd computes the magnitude a+b, walking both limb sequences from
// least to most significant with a carry (spec.md §4.4).
func magAdd(a, b []digit) []digit {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]digit, len(a)+1)
	var carry doubleDigit
	ai, bi, oi := len(a)-1, len(b)-1, len(out)-1
	for ai >= 0 {
		sum := doubleDigit(a[ai]) + carry
		if bi >= 0 {
			sum += doubleDigit(b[bi])
			bi--
		}
		out[oi] = digit(sum & digitMask)
		carry = sum >> digitBits
		ai--
		oi--
	}
	out[oi] = digit(carry)
	return trim(out)
}

// magSub computes the magnitude minuend-subtrahend, walking least to
// most significant with a borrow. Precondition: minuend >= subtrahend
// in magnitude; callers are responsible for the swap-and-flip-sign
// dance described in spec.md §4.4 when that does not hold.
func magSub(minuend, subtrahend []digit) []digit {
	out := make([]digit, len(minuend))
	var borrow int64
	mi, si, oi := len(minuend)-1, len(subtrahend)-1, len(out)-1
	for mi >= 0 {
		diff := int64(minuend[mi]) - borrow
		if si >= 0 {
			diff -= int64(subtrahend[si])
			si--
		}
		if diff < 0 {
			diff += digitBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[oi] = digit(diff)
		mi--
		oi--
	}
	return trim(out)
}

// Add returns x+y.
func (x Integer) Add(y Integer) Integer {
	switch {
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	case x.sign == y.sign:
		return normalize(x.sign, magAdd(x.limbs, y.limbs))
	default:
		// Opposite signs: the magnitude difference takes the sign of
		// the operand with the larger magnitude (spec.md §4.4 table).
		switch magCmp(x.limbs, y.limbs) {
		case 0:
			return Zero()
		case 1:
			return normalize(x.sign, magSub(x.limbs, y.limbs))
		default:
			return normalize(y.sign, magSub(y.limbs, x.limbs))
		}
	}
}

// Sub returns x-y, defined as x+(-y).
func (x Integer) Sub(y Integer) Integer { return x.Add(y.negated()) }
