package bignum

// magCmp compares the magnitudes of a and b, ignoring sign. Returns
// -1, 0, or +1.
func magCmp(a, b []digit) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpAbs compares |x| and |y|, returning -1, 0, or +1.
func (x Integer) CmpAbs(y Integer) int { return magCmp(x.limbs, y.limbs) }

// Cmp performs a signed comparison of x and y, returning -1, 0, or +1
// according to whether x is less than, equal to, or greater than y.
// Zero compares equal to itself and is neither positive nor negative.
func (x Integer) Cmp(y Integer) int {
	switch {
	case x.IsZero() && y.IsZero():
		return 0
	case x.sign != y.sign:
		if x.sign {
			return -1
		}
		return 1
	case x.sign: // both negative: larger magnitude sorts first
		return -magCmp(x.limbs, y.limbs)
	default: // both non-negative
		return magCmp(x.limbs, y.limbs)
	}
}

// Equal reports whether x and y represent the same value.
func (x Integer) Equal(y Integer) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Integer) Less(y Integer) bool { return x.Cmp(y) < 0 }
