package conform

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalid indicates a value did not conform to its declared shape.
	ErrInvalid = errors.New("validation failed")

	// ErrDecode indicates a source failed to decode input bytes.
	ErrDecode = errors.New("decode failed")

	// ErrNotRecord indicates a record operation was applied to a
	// non-record validator.
	ErrNotRecord = errors.New("not a record validator")

	// ErrUnknownField indicates Pick or Omit named an undeclared field.
	ErrUnknownField = errors.New("unknown record field")

	// ErrBadDiscriminant indicates a TaggedUnion alternative lacks a
	// usable literal at the tag key.
	ErrBadDiscriminant = errors.New("invalid discriminant")

	// ErrBadLiteral indicates a literal or enum value is not a supported
	// scalar.
	ErrBadLiteral = errors.New("invalid literal")

	// ErrBadUnion indicates a union was constructed without alternatives.
	ErrBadUnion = errors.New("invalid union")

	// ErrBadIntersection indicates two validators have no structural
	// intersection.
	ErrBadIntersection = errors.New("invalid intersection")

	// ErrBadOption indicates an option was applied to a validator kind
	// that does not support it.
	ErrBadOption = errors.New("invalid option")

	// ErrForbiddenKey indicates a record declared the forbidden
	// "__proto__" key.
	ErrForbiddenKey = errors.New("forbidden key")

	// ErrNotStruct indicates Struct was instantiated with a non-struct
	// type.
	ErrNotStruct = errors.New("not a struct type")

	// ErrBadTag indicates a conform struct tag has an invalid format or
	// value.
	ErrBadTag = errors.New("invalid tag")

	// ErrBadField indicates a struct field has a type that cannot be
	// expressed in the value model.
	ErrBadField = errors.New("unsupported field type")
)

// Error reports a validation failure. It is returned (never panicked) by
// Validate and Decode, exactly once per call, after the internal failure
// marker has finished propagating.
type Error struct {
	Reason string // human-readable description of the leaf failure
	Path   Path   // root-to-leaf location; empty if the root value failed
	Value  any    // the original top-level input, never a narrowed sub-value
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("validation failed: %s (value: %s)", e.Reason, truncate(e.Value, 80))
	}
	return fmt.Sprintf("validation failed at %s: %s (value: %s)", e.Path, e.Reason, truncate(e.Value, 80))
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// UsageError reports combinator misuse detected at construction time.
// Constructors panic with it; it is a programmer error, not a data error,
// and is expected to surface at startup rather than per input.
type UsageError struct {
	Err    error  // underlying sentinel error (ErrNotRecord, etc.)
	Detail string // what was misassembled
}

func (e *UsageError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// SourceError reports a decode failure from a Source.
type SourceError struct {
	Err   error // underlying sentinel error (ErrDecode)
	Cause error // original error from the source
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// newUsageError creates a UsageError for construction-time misuse.
func newUsageError(sentinel error, format string, args ...any) *UsageError {
	return &UsageError{
		Err:    sentinel,
		Detail: fmt.Sprintf(format, args...),
	}
}

// newSourceError creates a SourceError for decode failures.
func newSourceError(sentinel error, cause error) *SourceError {
	return &SourceError{
		Err:   sentinel,
		Cause: cause,
	}
}
