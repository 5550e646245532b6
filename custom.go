package conform

// CheckFunc is a user-supplied validation step. It returns either the
// conforming (possibly transformed) value or a marker from Fail. Nested
// validator results can be inspected with IsFailure. A CheckFunc must not
// panic on bad data; returning a failure marker is the only failure channel.
type CheckFunc func(value any) any

// Custom wraps a user-supplied check as a validator. Declare Pure only when
// the check returns every accepted value unchanged. Supported options:
// Pure.
func Custom(fn CheckFunc, opts ...Option) *Validator {
	if fn == nil {
		panic(newUsageError(ErrBadOption, "custom validator requires a check function"))
	}
	o := applyOptions("custom", opts, "Pure")
	return &Validator{kind: KindCustom, pure: o.pure, fn: fn}
}
