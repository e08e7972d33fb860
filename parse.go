package bignum

import "strings"

// ParseBytes parses data as a non-negative magnitude in the given
// base (spec.md §4.2). Supported bases are 2-10, 16, and 256. Bases
// 2-10 use decimal-digit characters; base 16 accepts [0-9a-fA-F]; base
// 256 treats every byte of data as one limb, copied in order, and
// always yields a non-negative result (callers negate explicitly).
// Empty input yields zero.
func ParseBytes(data []byte, base int) (Integer, error) {
	switch {
	case base == 256:
		return normalize(false, append([]digit(nil), data...)), nil
	case base >= 2 && base <= 10:
		return parseSmallBase(data, base)
	case base == 16:
		return parseHex(data)
	default:
		return Zero(), &ParseError{Base: base, Kind: BadBase}
	}
}

// Parse is the string counterpart of ParseBytes.
func Parse(s string, base int) (Integer, error) {
	return ParseBytes([]byte(s), base)
}

// parseSmallBase implements the acc = acc*base+digit accumulation for
// bases 2-10.
func parseSmallBase(data []byte, base int) (Integer, error) {
	acc := Zero()
	bi := From(int64(base))
	for i, c := range data {
		if c < '0' || c > '9' {
			return Zero(), &ParseError{Base: base, Kind: NonDigit, Offset: i, Rune: rune(c)}
		}
		v := int(c - '0')
		if v >= base {
			return Zero(), &ParseError{Base: base, Kind: NonDigit, Offset: i, Rune: rune(c)}
		}
		acc = acc.Mul(bi).Add(From(int64(v)))
	}
	return acc, nil
}

// parseHex implements the left-shift-by-4 + add accumulation for base
// 16 (spec.md §4.2).
func parseHex(data []byte) (Integer, error) {
	acc := Zero()
	for i, c := range data {
		v, ok := hexDigitValue(c)
		if !ok {
			return Zero(), &ParseError{Base: 16, Kind: BadHex, Offset: i, Rune: rune(c)}
		}
		acc = acc.Lsh(4).Add(From(int64(v)))
	}
	return acc, nil
}

func hexDigitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// ParseSigned parses a whitespace-trimmed, optionally '-'-prefixed
// digit run in the given base, generalizing spec.md §6's
// stream-extraction contract ("a whitespace-delimited optional '-'
// followed by a non-empty decimal-digit run") to any of Parse's
// supported text bases.
func ParseSigned(s string, base int) (Integer, error) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return Zero(), &ParseError{Base: base, Kind: NonDigit}
	}
	v, err := Parse(s, base)
	if err != nil {
		return Zero(), err
	}
	if neg {
		v = v.negated()
	}
	return v, nil
}
