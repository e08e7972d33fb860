package bignum

// Signed is the set of native signed integer types up to 64 bits.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of native unsigned integer types up to 64 bits.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integral is the set of native integer types this package converts
// to and from. A single generic constructor/extractor pair over this
// constraint replaces the per-width overload fanout that a
// non-generic language is forced to hand-write (spec.md §9).
type Integral interface {
	Signed | Unsigned
}

// From builds an Integer from any native integer value up to 64 bits
// wide. The sign is recorded and the magnitude is peeled into
// big-endian limbs eight bits at a time.
func From[T Integral](v T) Integer {
	if v == 0 {
		return Zero()
	}
	neg := v < 0
	var mag uint64
	if neg {
		// Cast to the unsigned counterpart before negating so the
		// two's-complement minimum (e.g. math.MinInt64) does not
		// overflow a naive -v.
		mag = uint64(int64(v))
		mag = ^mag + 1
	} else {
		mag = uint64(v)
	}
	return normalize(neg, uint64ToLimbs(mag))
}

// To converts x to a native integer type T, truncating modulo T's
// width when the magnitude does not fit. Overflow is not an error
// (spec.md §7); callers that need a range check should inspect
// x.BitLen() first.
func To[T Integral](x Integer) T {
	var acc uint64
	for _, d := range x.limbs {
		acc = acc*digitBase + uint64(d)
	}
	if x.sign {
		acc = ^acc + 1
	}
	return T(acc)
}

// FromBool returns One() for true and Zero() for false.
func FromBool(b bool) Integer {
	if b {
		return One()
	}
	return Zero()
}

// ToBool reports whether x has a non-empty magnitude.
func ToBool(x Integer) bool { return !x.IsZero() }

// FromRune builds an Integer from a Unicode code point, treated as a
// signed 32-bit value.
func FromRune(r rune) Integer { return From(int32(r)) }

// ToByte truncates x to a single byte following the signed conversion
// path (spec.md §4.2: "char conversion follows the signed path with
// one-byte truncation").
func ToByte(x Integer) byte { return To[byte](x) }

// uint64ToLimbs peels the low 8 bits off u repeatedly, prepending each
// to the front of the growing big-endian slice, until the remainder is
// zero.
func uint64ToLimbs(u uint64) []digit {
	if u == 0 {
		return nil
	}
	var buf [8]digit
	i := len(buf)
	for u != 0 {
		i--
		buf[i] = digit(u & digitMask)
		u >>= digitBits
	}
	out := make([]digit, len(buf)-i)
	copy(out, buf[i:])
	return out
}
