package rangemap

import (
	"math"

	"github.com/hupe1980/rangemap/internal/conv"
)

// Map maps v from the source interval src onto the target interval dst.
//
// ok is false when v does not lie between the endpoints of src (in either
// order); the zero value of T is returned with it. Both intervals may be
// descending. A degenerate source maps every contained value to dst.Lo.
//
// The endpoints map exactly: src.Lo to dst.Lo and src.Hi to dst.Hi. Values in
// between are truncated toward dst.Lo, an error of less than one unit of T.
//
//	v, ok := rangemap.Map(uint8(17), rangemap.Span[uint8](10, 20), rangemap.Span[uint8](100, 200))
//	// v == 170, ok == true
func Map[S, T Number](v S, src Interval[S], dst Interval[T]) (T, bool) {
	if !src.Contains(v) {
		var zero T
		return zero, false
	}
	return newScale(src, dst).apply(v), true
}

// MapUnchecked is Map without the domain check.
//
// The caller guarantees that v lies within src. Out-of-domain values never
// panic; integer targets wrap around and float targets may overshoot or
// become infinite.
func MapUnchecked[S, T Number](v S, src Interval[S], dst Interval[T]) T {
	return newScale(src, dst).apply(v)
}

// scale holds the widened deltas of an interval pair.
//
// Integer pairs use the uint64 magnitudes ds and dt and scale through
// conv.MulDiv. Pairs involving a float use the float64 fields. A float span
// wider than MaxFloat64 is stored halved, with halfSrc or halfDst set.
type scale[S, T Number] struct {
	src   Interval[S]
	dst   Interval[T]
	down  bool
	float bool

	ds, dt   uint64
	fds, fdt float64

	halfSrc, halfDst bool
	divFirst         bool
}

func newScale[S, T Number](src Interval[S], dst Interval[T]) scale[S, T] {
	s := scale[S, T]{
		src:   src,
		dst:   dst,
		down:  dst.IsDescending(),
		float: conv.IsFloat[S]() || conv.IsFloat[T](),
	}
	if s.float {
		s.fds = conv.Distance(src.Hi, src.Lo)
		if math.IsInf(s.fds, 0) {
			s.halfSrc = true
			s.fds = conv.Distance(src.Hi/2, src.Lo/2)
		}
		s.fdt = conv.Distance(dst.Hi, dst.Lo)
		if math.IsInf(s.fdt, 0) {
			s.halfDst = true
			s.fdt = conv.Distance(dst.Hi/2, dst.Lo/2)
		}
		// d never exceeds fds in domain, so d*fdt is finite unless this is.
		s.divFirst = math.IsInf(s.fds*s.fdt, 0)
		if !conv.IsFloat[T]() {
			s.dt = conv.AbsDiff(dst.Hi, dst.Lo)
		}
		return s
	}
	s.ds = conv.AbsDiff(src.Hi, src.Lo)
	s.dt = conv.AbsDiff(dst.Hi, dst.Lo)
	return s
}

func (s scale[S, T]) apply(v S) T {
	if s.src.Lo == s.src.Hi {
		return s.dst.Lo
	}
	if s.float {
		return s.applyFloat(v)
	}
	d := conv.AbsDiff(v, s.src.Lo)
	return conv.Offset(s.dst.Lo, conv.MulDiv(d, s.dt, s.ds), s.down)
}

// applyFloat scales in float64. The source endpoint snaps to the exact
// target endpoint and in-domain magnitudes never exceed the target delta,
// so rounding cannot break endpoint exactness or monotonicity.
func (s scale[S, T]) applyFloat(v S) T {
	d := conv.Distance(v, s.src.Lo)
	if s.halfSrc {
		d = conv.Distance(v/2, s.src.Lo/2)
	}

	switch d {
	case 0:
		return s.dst.Lo
	case s.fds:
		return s.dst.Hi
	}

	inDomain := d <= s.fds
	scaled := d * s.fdt / s.fds
	if s.divFirst {
		scaled = d / s.fds * s.fdt
	}
	if inDomain && !(scaled <= s.fdt) {
		scaled = s.fdt
	}

	if !conv.IsFloat[T]() {
		m := conv.SaturateUint64(scaled)
		if inDomain {
			m = min(m, s.dt)
		}
		return conv.Offset(s.dst.Lo, m, s.down)
	}

	lo, hi := float64(s.dst.Lo), float64(s.dst.Hi)
	if s.down {
		r := lo - scaled
		if s.halfDst {
			r -= scaled
		}
		if inDomain {
			r = max(r, hi)
		}
		return T(r)
	}
	r := lo + scaled
	if s.halfDst {
		r += scaled
	}
	if inDomain {
		r = min(r, hi)
	}
	return T(r)
}
