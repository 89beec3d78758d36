// Package rangemap provides exact, allocation-free linear remapping of numeric
// values between intervals, for every pairing of Go integer and float types.
//
// The mapping never goes through an intermediate float when both sides are
// integers. Differences are widened into unsigned magnitudes, scaled with a
// 64- or 128-bit intermediate and placed back into the target type, so no
// width combination can overflow and both endpoints map exactly.
//
// # Quick Start
//
//	// 12-bit ADC reading to millivolts
//	mv, ok := rangemap.Map(raw, rangemap.Span[uint16](0, 4095), rangemap.Span[int32](0, 3300))
//	if !ok {
//	    // raw is outside [0, 4095]
//	}
//
//	// float sample to 8-bit
//	b, _ := rangemap.Map(0.31, rangemap.Span(0.0, 1.0), rangemap.Span[uint8](0, 255)) // 79
//
// # Checked and Unchecked Mapping
//
// Map validates that the value lies between the endpoints of the source
// interval and reports false otherwise. MapUnchecked skips the check for
// callers that have already established bounds:
//
//	v, ok := rangemap.Map(x, src, dst)      // ok == false when x is out of src
//	v := rangemap.MapUnchecked(x, src, dst) // x must be in src
//
// Out-of-domain input to MapUnchecked never panics. Integer results wrap
// around and float results may overshoot or become infinite.
//
// # Interval Ordering
//
// Intervals are used exactly as given. Either interval may be descending; a
// descending target maps src.Lo to the larger value:
//
//	rangemap.Map(uint8(20), rangemap.Span[uint8](10, 20), rangemap.Span[uint8](200, 100)) // 100, true
//
// A degenerate source interval (Lo == Hi) maps to dst.Lo.
//
// # Precision
//
// Results are truncated toward dst.Lo, an error below one unit of the target
// type. Integer pairs are exact apart from this truncation. Pairs involving
// a float calculate in float64; their endpoints are still exact and results
// stay monotonic and inside the target interval.
//
// # Prepared Mappers
//
// NewMapper validates an interval pair once and precomputes its deltas:
//
//	m, err := rangemap.NewMapper(src, dst, rangemap.WithRequireAscending())
//	for _, x := range samples {
//	    y := m.MapUnchecked(x)
//	}
//
// # Clamped Stepping
//
// AddClamp and SubClamp step an integer by an unsigned magnitude, saturating
// at the limits of the type before clamping into bounds. AddClampFloat and
// SubClampFloat do the same for floats:
//
//	rangemap.AddClamp(uint8(0), 2, rangemap.Span[uint8](50, 100)) // 50
//
// All functions are pure and safe for concurrent use.
package rangemap
