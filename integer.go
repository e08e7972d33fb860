package bignum

// digit is one limb of the magnitude representation (DIGIT in spec
// terms). doubleDigit is the carry-accumulator type (DOUBLE_DIGIT),
// sized generously above 2*bits(digit) so no carry computation can
// overflow regardless of which two digits and carry are combined.
type digit = uint8
type doubleDigit = uint64

const (
	digitBits = 8
	digitBase = 1 << digitBits // 256, exclusive upper bound of a digit
	digitMask = digitBase - 1
)

// Integer is a canonical sign-magnitude arbitrary-precision integer.
//
// limbs holds the absolute value in big-endian order: limbs[0] is the
// most significant digit, the last element the least significant.
// sign is true iff the value is strictly negative. The zero value of
// Integer represents the mathematical integer 0.
type Integer struct {
	sign  bool
	limbs []digit
}

// Zero returns the additive identity. Equivalent to the zero value of
// Integer; provided for readability at call sites.
func Zero() Integer { return Integer{} }

// One returns the multiplicative identity.
func One() Integer { return Integer{limbs: []digit{1}} }

// trim drops leading zero limbs (the most-significant end of the
// big-endian slice) and returns the canonical slice. A magnitude of
// zero always trims to a nil/empty slice.
func trim(limbs []digit) []digit {
	i := 0
	for i < len(limbs) && limbs[i] == 0 {
		i++
	}
	if i == 0 {
		return limbs
	}
	return limbs[i:]
}

// normalize builds a canonical Integer from a sign and a possibly
// un-trimmed magnitude, enforcing invariant 1 of spec.md §3: zero
// magnitude implies a false sign field.
func normalize(sign bool, limbs []digit) Integer {
	limbs = trim(limbs)
	if len(limbs) == 0 {
		return Integer{}
	}
	return Integer{sign: sign, limbs: limbs}
}

// FromDigits builds an Integer from an explicit big-endian magnitude
// and sign, normalizing the result. digits is not retained; the
// returned Integer owns a private copy.
func FromDigits(digits []byte, sign bool) Integer {
	cp := make([]digit, len(digits))
	copy(cp, digits)
	return normalize(sign, cp)
}

// IsZero reports whether x is the additive identity.
func (x Integer) IsZero() bool { return len(x.limbs) == 0 }

// Sign returns -1, 0, or +1 according to whether x is negative, zero,
// or positive.
func (x Integer) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.sign:
		return -1
	default:
		return 1
	}
}

// Data returns the magnitude's limbs in most-significant-first order.
// The returned slice is a copy; mutating it does not affect x.
func (x Integer) Data() []byte {
	out := make([]byte, len(x.limbs))
	copy(out, x.limbs)
	return out
}

// Digits returns the number of limbs in the magnitude (0 for zero).
func (x Integer) Digits() int { return len(x.limbs) }

// clone returns an Integer with its own private copy of limbs, safe to
// mutate through the returned value only.
func (x Integer) clone() Integer {
	if len(x.limbs) == 0 {
		return Integer{}
	}
	limbs := make([]digit, len(x.limbs))
	copy(limbs, x.limbs)
	return Integer{sign: x.sign, limbs: limbs}
}

// abs returns the magnitude of x as a non-negative Integer.
func (x Integer) abs() Integer {
	if !x.sign {
		return x
	}
	return Integer{limbs: x.limbs}
}

// negated returns -x without mutating x.
func (x Integer) negated() Integer {
	if x.IsZero() {
		return x
	}
	return Integer{sign: !x.sign, limbs: x.limbs}
}
