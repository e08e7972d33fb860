package bignum

import (
	"fmt"
	"strings"
)

// Text formats x in the given base (2-16), left-padding the digit run
// with '0' to at least minLength characters and prefixing '-' for a
// negative value (spec.md §4.2). Returns a *ParseError with
// Kind==BadBase if base is out of range.
func (x Integer) Text(base int, minLength int) (string, error) {
	if base < 2 || base > 16 {
		return "", &ParseError{Base: base, Kind: BadBase}
	}
	digits := make([]byte, 0, minLength)
	if !x.IsZero() {
		bi := From(int64(base))
		cur := Integer{limbs: x.limbs}
		for !cur.IsZero() {
			var rem Integer
			cur, rem, _ = cur.DivMod(bi) // bi != 0
			digits = append(digits, digitChar(To[int](rem)))
		}
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
	}
	for len(digits) < minLength {
		digits = append([]byte{'0'}, digits...)
	}
	if len(digits) == 0 {
		digits = []byte{'0'}
	}
	if x.sign {
		return "-" + string(digits), nil
	}
	return string(digits), nil
}

func digitChar(v int) byte {
	if v < 10 {
		return byte('0' + v)
	}
	return byte('a' + v - 10)
}

// Bytes256 returns x's magnitude as raw octets, most-significant
// first, zero-padded to at least minLength bytes (spec.md §4.2's base
// 256 format). There is no sign prefix; callers encode sign out of
// band if needed.
func (x Integer) Bytes256(minLength int) []byte {
	if len(x.limbs) >= minLength {
		out := make([]byte, len(x.limbs))
		copy(out, x.limbs)
		return out
	}
	out := make([]byte, minLength)
	copy(out[minLength-len(x.limbs):], x.limbs)
	return out
}

// String implements fmt.Stringer as Text(10, 1).
func (x Integer) String() string {
	s, _ := x.Text(10, 1)
	return s
}

// MarshalText implements encoding.TextMarshaler, the generalized
// replacement for a stream-insertion operator (spec.md §1, §6).
func (x Integer) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using the
// stream-extraction contract of spec.md §6 (ParseSigned, base 10).
func (x *Integer) UnmarshalText(text []byte) error {
	v, err := ParseSigned(string(text), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// Format implements fmt.Formatter, supporting %d, %x, %X, %b, %s, and
// %v — the idiomatic Go collapse of the ASCII/binary/hex convenience
// formatters spec.md §1 marks as out of scope for the hand-written
// kernel.
func (x Integer) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'x':
		s, _ = x.Text(16, 1)
	case 'X':
		t, _ := x.Text(16, 1)
		s = strings.ToUpper(t)
	case 'b':
		s, _ = x.Text(2, 1)
	default: // 'd', 's', 'v'
		s = x.String()
	}
	_, _ = fmt.Fprint(f, s)
}

// MakeBin renders v in base 2, padded to size characters
// (spec.md §6).
func MakeBin(v Integer, size int) string {
	s, _ := v.Text(2, size)
	return s
}

// MakeHex renders v in base 16, padded to size characters
// (spec.md §6).
func MakeHex(v Integer, size int) string {
	s, _ := v.Text(16, size)
	return s
}

// MakeASCII renders v's magnitude as size raw bytes (spec.md §6).
func MakeASCII(v Integer, size int) string {
	return string(v.Bytes256(size))
}
