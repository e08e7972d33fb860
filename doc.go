// Package bignum implements an arbitrary-precision signed integer type.
//
// Integer values represent mathematical integers of unbounded magnitude,
// bounded only by available memory. The type supports the standard
// arithmetic, bitwise, comparison, shift, and radix-conversion operations
// over a sign-magnitude representation: a boolean sign field plus a
// big-endian sequence of fixed-width digits (limbs) storing the absolute
// value.
//
// A zero Integer is ready to use. Integer values are immutable in effect:
// every operation returns a new value rather than mutating an operand,
// except PreInc, PostInc, PreDec, PostDec and UnmarshalText, which
// assign to their receiver. Results may share limb storage with their
// operands; limb storage is never modified once a value holds it.
// Multiple Integer values may be used concurrently
// from separate goroutines without coordination; a single value shared
// across goroutines must be externally synchronized if it is ever
// reassigned.
package bignum
