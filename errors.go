package rangemap

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite is returned when a float interval endpoint is NaN or infinite.
	ErrNonFinite = errors.New("interval endpoint is not finite")

	// ErrDescending is returned when a descending interval is rejected by
	// WithRequireAscending.
	ErrDescending = errors.New("interval is descending")
)

// IntervalError reports which interval of a mapper failed validation.
//
// The underlying sentinel can be matched with errors.Is.
type IntervalError struct {
	// Side is "source" or "target".
	Side  string
	cause error
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("invalid %s interval: %v", e.Side, e.cause)
}

func (e *IntervalError) Unwrap() error { return e.cause }
