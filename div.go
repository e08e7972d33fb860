package bignum

// magBitLen returns the position of the highest set bit of a
// big-endian magnitude, plus one (0 for a zero magnitude).
func magBitLen(a []digit) int {
	if len(a) == 0 {
		return 0
	}
	top := a[0]
	n := 0
	for top != 0 {
		n++
		top >>= 1
	}
	return (len(a)-1)*digitBits + n
}

// magBit returns bit i (0 = least significant) of the big-endian
// magnitude a.
func magBit(a []digit, i int) int {
	byteIdx := len(a) - 1 - i/digitBits
	if byteIdx < 0 || byteIdx >= len(a) {
		return 0
	}
	return int((a[byteIdx] >> uint(i%digitBits)) & 1)
}

// magSetBit sets bit i of the big-endian magnitude a in place. a must
// be long enough to hold bit i.
func magSetBit(a []digit, i int) {
	byteIdx := len(a) - 1 - i/digitBits
	a[byteIdx] |= 1 << uint(i%digitBits)
}

// magDivMod implements the bit-serial long division of spec.md §4.6:
// for each bit of the dividend from most to least significant, double
// the running remainder, bring in the next dividend bit, and subtract
// the divisor whenever the remainder is large enough, recording a 1
// quotient bit each time it is. The remainder is kept in its own
// canonical (trimmed) form throughout via magAdd/magSub, so it never
// needs ad hoc growth or shrink bookkeeping.
func magDivMod(a, b []digit) (q, r []digit) {
	switch magCmp(a, b) {
	case -1:
		return nil, a
	case 0:
		return []digit{1}, nil
	}
	if len(b) == 1 && b[0] == 1 {
		return a, nil
	}

	n := magBitLen(a)
	quotient := make([]digit, (n+digitBits-1)/digitBits)
	var remainder []digit

	for i := n - 1; i >= 0; i-- {
		remainder = magAdd(remainder, remainder) // remainder <<= 1
		if magBit(a, i) != 0 {
			if len(remainder) == 0 {
				remainder = []digit{1}
			} else {
				remainder[len(remainder)-1] |= 1
			}
		}
		if magCmp(remainder, b) >= 0 {
			remainder = magSub(remainder, b)
			magSetBit(quotient, i)
		}
	}
	return trim(quotient), remainder
}

// DivMod returns the quotient and remainder of a/b using truncated
// division (rounding toward zero, matching C's / and %): sign(q) is
// the XOR of the operand signs, sign(r) matches a's sign whenever r is
// non-zero, and a == q*b+r with |r| < |b| always holds (spec.md §4.6).
// Returns ErrDivByZero if b is zero.
func (a Integer) DivMod(b Integer) (q, r Integer, err error) {
	if b.IsZero() {
		return Zero(), Zero(), ErrDivByZero
	}
	if a.IsZero() {
		return Zero(), Zero(), nil
	}
	recordDiv(len(a.limbs), len(b.limbs))
	qMag, rMag := magDivMod(a.limbs, b.limbs)
	q = normalize(a.sign != b.sign, qMag)
	r = normalize(a.sign, rMag)
	return q, r, nil
}

// Div returns the truncated quotient a/b.
func (a Integer) Div(b Integer) (Integer, error) {
	q, _, err := a.DivMod(b)
	return q, err
}

// Mod returns the truncated remainder a%b (sign follows a, per
// spec.md §4.6).
func (a Integer) Mod(b Integer) (Integer, error) {
	_, r, err := a.DivMod(b)
	return r, err
}
