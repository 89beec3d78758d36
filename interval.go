package rangemap

import (
	"math"

	"github.com/hupe1980/rangemap/internal/conv"
)

// Interval is a closed interval given by its two endpoints.
//
// Lo and Hi are kept exactly as supplied. A descending interval (Lo > Hi) is
// valid and maps in reverse; a degenerate interval has Lo == Hi.
type Interval[T Number] struct {
	Lo T
	Hi T
}

// Span returns the interval [lo, hi].
func Span[T Number](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi}
}

// Full returns the whole representable range of T.
// For float types this is [-MaxFloat, +MaxFloat] of the respective width.
func Full[T Number]() Interval[T] {
	if conv.IsFloat[T]() {
		limit := math.MaxFloat64
		if conv.Bits[T]() == 32 {
			limit = math.MaxFloat32
		}
		return Interval[T]{Lo: T(-limit), Hi: T(limit)}
	}
	return Interval[T]{Lo: conv.MinOf[T](), Hi: conv.MaxOf[T]()}
}

// Contains reports whether v lies between the two endpoints, in either order.
// NaN is never contained.
func (i Interval[T]) Contains(v T) bool {
	return (i.Lo <= v && v <= i.Hi) || (i.Hi <= v && v <= i.Lo)
}

// IsDegenerate reports whether both endpoints are equal.
func (i Interval[T]) IsDegenerate() bool {
	return i.Lo == i.Hi
}

// IsDescending reports whether Lo is greater than Hi.
func (i Interval[T]) IsDescending() bool {
	return i.Hi < i.Lo
}

// Reverse returns the interval with its endpoints swapped.
func (i Interval[T]) Reverse() Interval[T] {
	return Interval[T]{Lo: i.Hi, Hi: i.Lo}
}

// Min returns the smaller endpoint.
func (i Interval[T]) Min() T {
	return min(i.Lo, i.Hi)
}

// Max returns the larger endpoint.
func (i Interval[T]) Max() T {
	return max(i.Lo, i.Hi)
}

// Clamp limits v to the interval as min(max(v, Lo), Hi).
//
// The endpoints are used as given: for a descending interval every value
// clamps to Hi.
func (i Interval[T]) Clamp(v T) T {
	return min(max(v, i.Lo), i.Hi)
}

// Finite reports whether neither endpoint is NaN or infinite.
// Integer intervals are always finite.
func (i Interval[T]) Finite() bool {
	if !conv.IsFloat[T]() {
		return true
	}
	return finite(float64(i.Lo)) && finite(float64(i.Hi))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
