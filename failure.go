package conform

import "fmt"

// Failure is the internal marker a validator returns when a value does not
// conform. It travels up through nested combinators as ordinary return data,
// collecting path keys leaf-to-root, until the Validate boundary seals it
// into an *Error.
//
// The marker is unforgeable: it is distinguished from application values by
// Go type identity, so no value from the untyped data model can be mistaken
// for it. A Failure is mutable only while it propagates within a single call
// and is never shared across calls.
type Failure struct {
	reason string
	path   []any // leaf-to-root; reversed when sealed
}

// Fail creates a failure marker for a custom validator to return.
func Fail(reason string) *Failure {
	return &Failure{reason: reason}
}

// IsFailure reports whether x is a failure marker returned by a nested
// validator call.
func IsFailure(x any) bool {
	_, ok := x.(*Failure)
	return ok
}

func newFailure(reason string) *Failure {
	return &Failure{reason: reason}
}

func newFailuref(format string, args ...any) *Failure {
	return &Failure{reason: fmt.Sprintf(format, args...)}
}

// at appends the key at which a child validator failed. Paths build
// leaf-to-root as the failure unwinds through nested combinators.
func (f *Failure) at(key any) *Failure {
	f.path = append(f.path, key)
	return f
}

// seal converts the marker into the final error, reversing the accumulated
// path into root-to-leaf order. The error carries the original top-level
// input, not the sub-value that failed.
func (f *Failure) seal(top any) *Error {
	var path Path
	if n := len(f.path); n > 0 {
		path = make(Path, n)
		for i, k := range f.path {
			path[n-1-i] = k
		}
	}
	return &Error{Reason: f.reason, Path: path, Value: top}
}
