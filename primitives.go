package conform

import (
	"math"
	"strings"
	"unicode/utf8"
)

// maxSafeInteger is the largest float64 at which every integer is exactly
// representable. Integers beyond it cannot round-trip through the value
// model.
const maxSafeInteger = 1<<53 - 1

// Any accepts every value unchanged.
func Any() *Validator {
	return &Validator{kind: KindAny, pure: true}
}

// Null accepts only nil.
func Null() *Validator {
	return &Validator{kind: KindNull, pure: true}
}

// Boolean accepts a bool.
func Boolean() *Validator {
	return &Validator{kind: KindBoolean, pure: true}
}

// Number accepts a float64. NaN and infinities are rejected unless opted in
// with AllowNaN and AllowInfinity. Supported options: Min, Max, AllowNaN,
// AllowInfinity.
func Number(opts ...Option) *Validator {
	o := applyOptions("number", opts, "Min", "Max", "AllowNaN", "AllowInfinity")
	return &Validator{kind: KindNumber, pure: true, opts: o}
}

func (v *Validator) runNumber(value any) any {
	n, ok := value.(float64)
	if !ok {
		return newFailure("expected a number, got " + typeName(value))
	}
	o := v.opts
	if math.IsNaN(n) {
		if !o.allowNaN {
			return newFailure("expected a number, got NaN")
		}
		return value
	}
	if math.IsInf(n, 0) && !o.allowInf {
		return newFailure("expected a finite number")
	}
	if o.min != nil && n < *o.min {
		return newFailuref("expected a number >= %v, got %v", *o.min, n)
	}
	if o.max != nil && n > *o.max {
		return newFailuref("expected a number <= %v, got %v", *o.max, n)
	}
	return value
}

// Integer accepts a whole number within the safe-integer range and
// normalizes it to int64. It also accepts int and int64 so that an already
// validated value re-validates cleanly. The normalization makes Integer
// impure. Supported options: Min, Max.
func Integer(opts ...Option) *Validator {
	o := applyOptions("integer", opts, "Min", "Max")
	return &Validator{kind: KindInteger, opts: o}
}

func (v *Validator) runInteger(value any) any {
	var n int64
	switch x := value.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return newFailuref("expected an integer, got %v", x)
		}
		if x < -maxSafeInteger || x > maxSafeInteger {
			return newFailuref("expected an integer within the safe range, got %v", x)
		}
		n = int64(x)
	default:
		return newFailure("expected an integer, got " + typeName(value))
	}
	o := v.opts
	if o.min != nil && n < int64(*o.min) {
		return newFailuref("expected an integer >= %v, got %d", *o.min, n)
	}
	if o.max != nil && n > int64(*o.max) {
		return newFailuref("expected an integer <= %v, got %d", *o.max, n)
	}
	return n
}

// String accepts a string. Length bounds count runes, not bytes, and apply
// after Trim. Supported options: MinLen, MaxLen, Trim, Match. Trim makes the
// validator impure.
func String(opts ...Option) *Validator {
	o := applyOptions("string", opts, "MinLen", "MaxLen", "Trim", "Match")
	return &Validator{kind: KindString, pure: !o.trim, opts: o}
}

func (v *Validator) runString(value any) any {
	s, ok := value.(string)
	if !ok {
		return newFailure("expected a string, got " + typeName(value))
	}
	o := v.opts
	if o.trim {
		s = strings.TrimSpace(s)
	}
	if o.minLen != nil || o.maxLen != nil {
		n := utf8.RuneCountInString(s)
		if o.minLen != nil && n < *o.minLen {
			return newFailuref("expected a string with at least %d characters, got %d", *o.minLen, n)
		}
		if o.maxLen != nil && n > *o.maxLen {
			return newFailuref("expected a string with at most %d characters, got %d", *o.maxLen, n)
		}
	}
	if o.pattern != nil && !o.pattern.MatchString(s) {
		return newFailuref("expected a string matching %s", o.pattern)
	}
	return s
}

// Literal accepts exactly one scalar value: a string, bool, number, or nil.
// Numeric literals compare by value regardless of Go numeric type, so
// Literal(1) accepts float64(1) from parsed JSON. Any other literal type is
// a usage error.
func Literal(value any) *Validator {
	lit, ok := normalizeScalar(value)
	if !ok {
		panic(newUsageError(ErrBadLiteral, "literal must be a string, bool, number, or nil, got %T", value))
	}
	return &Validator{kind: KindLiteral, pure: true, literal: lit}
}

func (v *Validator) runLiteral(value any) any {
	if got, ok := normalizeScalar(value); ok && got == v.literal {
		return value
	}
	return newFailuref("expected the literal %s, got %s", formatLiteral(v.literal), truncate(value, 40))
}

// Enum accepts any member of a fixed scalar value set. Membership is a
// single O(1) lookup. At least one value is required and every value must be
// a valid literal.
func Enum(values ...any) *Validator {
	if len(values) == 0 {
		panic(newUsageError(ErrBadLiteral, "enum requires at least one value"))
	}
	members := make(map[any]struct{}, len(values))
	list := make([]any, 0, len(values))
	for _, value := range values {
		lit, ok := normalizeScalar(value)
		if !ok {
			panic(newUsageError(ErrBadLiteral, "enum value must be a string, bool, number, or nil, got %T", value))
		}
		if _, dup := members[lit]; dup {
			continue
		}
		members[lit] = struct{}{}
		list = append(list, lit)
	}
	return &Validator{kind: KindEnum, pure: true, members: members, memberList: list}
}

func (v *Validator) runEnum(value any) any {
	if got, ok := normalizeScalar(value); ok {
		if _, member := v.members[got]; member {
			return value
		}
	}
	return newFailuref("expected one of %s, got %s", enumList(v.memberList), truncate(value, 40))
}

func enumList(members []any) string {
	var b strings.Builder
	for i, m := range members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatLiteral(m))
	}
	return b.String()
}

// normalizeScalar maps a scalar onto its canonical comparison form: numbers
// become float64 so that values from any decoder compare equal.
func normalizeScalar(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case bool:
		return x, true
	case string:
		return x, true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return nil, false
}
