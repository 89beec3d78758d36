// Package testutil provides testing utilities for rangemap.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG, generic helpers for drawing values inside and
// outside an interval, and an arbitrary-precision reference mapping used as
// ground truth.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	lo, hi := testutil.Value[int16](rng, 0), testutil.Value[int16](rng, 0)
//	v := testutil.Between(rng, lo, hi)
//	w, ok := testutil.Outside(rng, lo, hi)
//
// # Ground Truth
//
//	want := testutil.ReferenceMap(v, lo, hi, uint8(0), uint8(255))
//	got, _ := rangemap.Map(v, rangemap.Span(lo, hi), rangemap.Span[uint8](0, 255))
//	// want.Cmp(testutil.Big(got)) == 0
package testutil
