package rangemap

// Mapper maps values between a fixed pair of intervals.
//
// NewMapper validates the pair once and precomputes the widened deltas, so
// each call only scales and places the value. Results are identical to Map
// and MapUnchecked for the same inputs. A Mapper is immutable and safe for
// concurrent use.
type Mapper[S, T Number] struct {
	scale scale[S, T]
	opts  []Option
}

// NewMapper returns a Mapper from src to dst.
//
// By default any ordering is accepted and float endpoints must be finite.
func NewMapper[S, T Number](src Interval[S], dst Interval[T], optFns ...Option) (*Mapper[S, T], error) {
	o := applyOptions(optFns)

	if err := validate(src, o); err != nil {
		return nil, &IntervalError{Side: "source", cause: err}
	}
	if err := validate(dst, o); err != nil {
		return nil, &IntervalError{Side: "target", cause: err}
	}

	return &Mapper[S, T]{
		scale: newScale(src, dst),
		opts:  optFns,
	}, nil
}

func validate[T Number](i Interval[T], o options) error {
	if !o.allowNonFinite && !i.Finite() {
		return ErrNonFinite
	}
	if o.requireAscending && i.IsDescending() {
		return ErrDescending
	}
	return nil
}

// Map maps v, reporting false when v lies outside the source interval.
func (m *Mapper[S, T]) Map(v S) (T, bool) {
	if !m.scale.src.Contains(v) {
		var zero T
		return zero, false
	}
	return m.scale.apply(v), true
}

// MapUnchecked maps v without the domain check. See MapUnchecked.
func (m *Mapper[S, T]) MapUnchecked(v S) T {
	return m.scale.apply(v)
}

// Source returns the source interval.
func (m *Mapper[S, T]) Source() Interval[S] { return m.scale.src }

// Target returns the target interval.
func (m *Mapper[S, T]) Target() Interval[T] { return m.scale.dst }

// Inverse returns a Mapper from the target interval back to the source
// interval, built with the same options.
//
// Endpoints round-trip exactly. Interior values generally do not, since both
// directions truncate.
func (m *Mapper[S, T]) Inverse() (*Mapper[T, S], error) {
	return NewMapper(m.scale.dst, m.scale.src, m.opts...)
}
