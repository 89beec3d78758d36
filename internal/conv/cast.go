package conv

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types conv can widen.
type Number interface {
	constraints.Integer | constraints.Float
}

// maxUint64Float is 2^64, the first float64 that does not fit into a uint64.
const maxUint64Float = float64(1 << 64)

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var zero T
	return zero-1 < 0
}

// Bits returns the width of T in bits.
func Bits[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxOf returns the largest value representable by the integer type T.
func MaxOf[T Number]() T {
	if IsSigned[T]() {
		return T(^uint64(0) >> (65 - Bits[T]()))
	}
	return T(^uint64(0) >> (64 - Bits[T]()))
}

// MinOf returns the smallest value representable by the integer type T.
func MinOf[T Number]() T {
	if IsSigned[T]() {
		return T(uint64(1) << (Bits[T]() - 1))
	}
	return 0
}

// AbsDiff returns |a - b| as a uint64 for integer T.
//
// uint64(x) sign-extends signed values, so the wrapping subtraction yields
// the exact distance modulo 2^64, which is the exact distance because it
// never exceeds 2^Bits - 1.
func AbsDiff[T Number](a, b T) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// Distance returns |a - b| as a float64 for any T.
func Distance[T Number](a, b T) float64 {
	if IsFloat[T]() {
		return math.Abs(float64(a) - float64(b))
	}
	return float64(AbsDiff(a, b))
}

// Offset moves the integer base by the magnitude m, downwards when down is
// set.
//
// The addition wraps at the width of T. The result is exact whenever the
// true value base±m is representable in T.
func Offset[T Number](base T, m uint64, down bool) T {
	if down {
		return T(uint64(base) - m)
	}
	return T(uint64(base) + m)
}

// SaturateUint64 truncates f toward zero into a uint64, saturating at both
// ends. NaN maps to zero.
func SaturateUint64(f float64) uint64 {
	switch {
	case !(f > 0):
		return 0
	case f >= maxUint64Float:
		return math.MaxUint64
	default:
		return uint64(f)
	}
}
