// Package conv provides the widening and placement primitives used by rangemap.
//
// Every integer operand is widened into a uint64 magnitude before any
// arithmetic happens. Magnitudes are exact for all supported widths because
// the distance between two values of an N-bit type always fits in N unsigned
// bits. Products that do not fit into 64 bits are carried as a 128-bit hi/lo
// pair (see MulDiv).
//
// Placement back into the narrow type (Offset) is modular: the wide result is
// truncated to the target width, which is exact whenever the true result is
// representable. For validated inputs that is always the case.
//
// Use cases:
//   - Magnitude of a difference across signed/unsigned types of any width
//   - Scaling a magnitude by a ratio of two magnitudes without overflow
//   - Saturating float -> uint64 conversion
package conv
