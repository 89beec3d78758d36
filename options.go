package rangemap

type options struct {
	requireAscending bool
	allowNonFinite   bool
}

// Option configures NewMapper.
type Option func(*options)

// WithRequireAscending rejects source or target intervals whose Lo is greater
// than Hi. Degenerate intervals are still accepted.
//
// Without this option descending intervals map in reverse.
func WithRequireAscending() Option {
	return func(o *options) {
		o.requireAscending = true
	}
}

// WithAllowNonFinite accepts NaN and infinite endpoints on float intervals.
//
// Mapping through such an interval yields NaN or infinite results; a source
// interval with a NaN endpoint contains no value at all.
func WithAllowNonFinite() Option {
	return func(o *options) {
		o.allowNonFinite = true
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
