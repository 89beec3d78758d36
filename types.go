package rangemap

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/rangemap/internal/conv"
)

// Number is the set of scalar types that can be mapped.
//
// It covers every fixed-width and platform-size integer type and both IEEE754
// float types, including named types built on them.
type Number = conv.Number

// Integer is the set of integer types accepted by AddClamp and SubClamp.
type Integer = constraints.Integer

// Float is the set of float types accepted by AddClampFloat and SubClampFloat.
type Float = constraints.Float
