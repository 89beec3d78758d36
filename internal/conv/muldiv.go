package conv

import "math/bits"

// MulDiv returns the low 64 bits of floor(a*b/den).
//
// The product is kept in 64 bits when it fits and in a 128-bit hi/lo pair
// otherwise, so operands of any supported width scale without overflow.
// When a <= den the quotient never exceeds b and the result is exact.
// For a > den the quotient may not fit; its high bits are discarded
// rather than trapping. den must be non-zero.
func MulDiv(a, b, den uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo / den
	}
	// bits.Div64 panics unless hi < den. Reducing hi first drops the part of
	// the quotient above 2^64.
	quo, _ := bits.Div64(hi%den, lo, den)
	return quo
}

