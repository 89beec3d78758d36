package rangemap

import (
	"github.com/hupe1980/rangemap/internal/conv"
)

// AddClamp adds delta to v and clamps the result into bounds.
//
// The sum saturates at the maximum of T before clamping, so AddClamp never
// wraps or panics for any delta. delta may exceed the range of T; the sum
// then saturates. bounds is applied as bounds.Clamp.
//
//	rangemap.AddClamp(uint8(0), 2, rangemap.Span[uint8](50, 100)) // 50
func AddClamp[T Integer](v T, delta uint64, bounds Interval[T]) T {
	hi := conv.MaxOf[T]()
	if delta >= conv.AbsDiff(hi, v) {
		return bounds.Clamp(hi)
	}
	return bounds.Clamp(conv.Offset(v, delta, false))
}

// SubClamp subtracts delta from v and clamps the result into bounds.
//
// The difference saturates at the minimum of T before clamping.
func SubClamp[T Integer](v T, delta uint64, bounds Interval[T]) T {
	lo := conv.MinOf[T]()
	if delta >= conv.AbsDiff(v, lo) {
		return bounds.Clamp(lo)
	}
	return bounds.Clamp(conv.Offset(v, delta, true))
}

// AddClampFloat adds the magnitude of delta to v and clamps the result into
// bounds. Overflow to infinity saturates at the largest finite value first.
func AddClampFloat[F Float](v, delta F, bounds Interval[F]) F {
	return bounds.Clamp(saturate(v + abs(delta)))
}

// SubClampFloat subtracts the magnitude of delta from v and clamps the
// result into bounds.
func SubClampFloat[F Float](v, delta F, bounds Interval[F]) F {
	return bounds.Clamp(saturate(v - abs(delta)))
}

func abs[F Float](f F) F {
	if f < 0 {
		return -f
	}
	return f
}

func saturate[F Float](f F) F {
	full := Full[F]()
	return min(max(f, full.Lo), full.Hi)
}
