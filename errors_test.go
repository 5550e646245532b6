package conform

import (
	"errors"
	"testing"
)

func TestError_Is(t *testing.T) {
	_, err := Number().Validate("x")
	if err == nil {
		t.Fatal("Validate() should fail for a non-number")
	}

	if !errors.Is(err, ErrInvalid) {
		t.Error("validation error should unwrap to ErrInvalid")
	}

	if errors.Is(err, ErrDecode) {
		t.Error("validation error should not match ErrDecode")
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "root failure",
			err:  &Error{Reason: "expected a number, got string", Value: "x"},
			want: "validation failed: expected a number, got string (value: x)",
		},
		{
			name: "nested failure",
			err:  &Error{Reason: "expected an integer, got string", Path: Path{"items", 1, "a"}, Value: "v"},
			want: "validation failed at .items[1].a: expected an integer, got string (value: v)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_TruncatesValue(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	err := &Error{Reason: "expected a number, got string", Value: string(long)}

	msg := err.Error()
	if len(msg) > 160 {
		t.Errorf("Error() should truncate the embedded value, got %d characters", len(msg))
	}
}

func TestErrorsAs_Error(t *testing.T) {
	_, err := Record(map[string]*Validator{"a": Integer()}).Validate(map[string]any{"a": "x"})

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatal("errors.As should extract *Error")
	}

	if verr.Reason != "expected an integer, got string" {
		t.Errorf("Reason = %q, want %q", verr.Reason, "expected an integer, got string")
	}
	if len(verr.Path) != 1 || verr.Path[0] != "a" {
		t.Errorf("Path = %v, want [a]", verr.Path)
	}
}

func TestUsageError_Is(t *testing.T) {
	err := newUsageError(ErrNotRecord, "Pick requires a record validator, got %s", KindString)

	if !errors.Is(err, ErrNotRecord) {
		t.Error("UsageError should unwrap to ErrNotRecord")
	}

	if errors.Is(err, ErrBadDiscriminant) {
		t.Error("UsageError should not match ErrBadDiscriminant")
	}
}

func TestUsageError_Message(t *testing.T) {
	err := newUsageError(ErrBadLiteral, "literal must be a string, bool, number, or nil, got %T", []int{})

	want := `invalid literal: literal must be a string, bool, number, or nil, got []int`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUsageError_NoDetail(t *testing.T) {
	err := &UsageError{Err: ErrNotRecord}

	if got := err.Error(); got != "not a record validator" {
		t.Errorf("Error() = %q, want %q", got, "not a record validator")
	}
}

func TestSourceError_Is(t *testing.T) {
	err := newSourceError(ErrDecode, errors.New("unexpected end of input"))

	if !errors.Is(err, ErrDecode) {
		t.Error("SourceError should unwrap to ErrDecode")
	}

	want := "decode failed: unexpected end of input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSourceError_NoCause(t *testing.T) {
	err := &SourceError{Err: ErrDecode}

	if got := err.Error(); got != "decode failed" {
		t.Errorf("Error() = %q, want %q", got, "decode failed")
	}
}

// mustPanicUsage asserts that fn panics with a *UsageError wrapping sentinel.
func mustPanicUsage(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a usage error panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, sentinel) {
			t.Fatalf("panic error %v should wrap %v", err, sentinel)
		}
		var uerr *UsageError
		if !errors.As(err, &uerr) {
			t.Fatalf("panic error %T should be *UsageError", err)
		}
	}()
	fn()
}
