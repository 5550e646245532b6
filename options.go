package conform

import (
	"regexp"
	"slices"
)

// Option constrains or transforms a primitive validator. Options are checked
// against the receiving constructor: applying an option to a validator kind
// that does not support it is a usage error.
type Option func(*options)

type options struct {
	names []string // which options were applied, for applicability checks

	min, max       *float64
	minLen, maxLen *int
	trim           bool
	pattern        *regexp.Regexp
	allowNaN       bool
	allowInf       bool
	pure           bool
}

// Min requires a number or integer to be at least v.
func Min(v float64) Option {
	return func(o *options) {
		o.names = append(o.names, "Min")
		o.min = &v
	}
}

// Max requires a number or integer to be at most v.
func Max(v float64) Option {
	return func(o *options) {
		o.names = append(o.names, "Max")
		o.max = &v
	}
}

// MinLen requires a string to have at least n runes, or an array to have at
// least n elements.
func MinLen(n int) Option {
	return func(o *options) {
		o.names = append(o.names, "MinLen")
		o.minLen = &n
	}
}

// MaxLen requires a string to have at most n runes, or an array to have at
// most n elements.
func MaxLen(n int) Option {
	return func(o *options) {
		o.names = append(o.names, "MaxLen")
		o.maxLen = &n
	}
}

// Trim strips leading and trailing whitespace from a string before any
// other check runs. Trim makes the validator impure.
func Trim() Option {
	return func(o *options) {
		o.names = append(o.names, "Trim")
		o.trim = true
	}
}

// Match requires a string to match re. The match runs after Trim.
func Match(re *regexp.Regexp) Option {
	return func(o *options) {
		o.names = append(o.names, "Match")
		o.pattern = re
	}
}

// AllowNaN lets a number validator accept NaN.
func AllowNaN() Option {
	return func(o *options) {
		o.names = append(o.names, "AllowNaN")
		o.allowNaN = true
	}
}

// AllowInfinity lets a number validator accept +Inf and -Inf.
func AllowInfinity() Option {
	return func(o *options) {
		o.names = append(o.names, "AllowInfinity")
		o.allowInf = true
	}
}

// Pure declares that a custom validator returns every accepted input
// unchanged, letting enclosing composites skip defensive copying. Declaring
// purity for a transforming check breaks that guarantee.
func Pure() Option {
	return func(o *options) {
		o.names = append(o.names, "Pure")
		o.pure = true
	}
}

// applyOptions folds opts and rejects any option the kind does not support.
func applyOptions(kind string, opts []Option, allowed ...string) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	for _, name := range o.names {
		if !slices.Contains(allowed, name) {
			panic(newUsageError(ErrBadOption, "option %s does not apply to %s", name, kind))
		}
	}
	return o
}
