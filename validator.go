package conform

import (
	"context"
	"time"
)

// Validator is a reusable check for one data shape. A validator is immutable
// once constructed and safe for concurrent use from any number of
// goroutines; the only mutable state in a validation call is the failure
// marker, which is private to that call.
//
// Each validator is a tagged variant: the kind field selects the check and
// the remaining fields carry kind-specific metadata (declared record fields,
// the literal value, child validators, the tagged-union dispatch table).
type Validator struct {
	kind Kind
	pure bool

	opts       *options              // number/integer/string/array constraints
	literal    any                   // KindLiteral: normalized scalar
	members    map[any]struct{}      // KindEnum: normalized value set
	memberList []any                 // KindEnum: declaration order
	item       *Validator            // KindArray item, KindOptional/KindNullable wrapped validator
	elems      []*Validator          // KindTuple positions, KindUnion/KindTaggedUnion alternatives, KindIntersection pair
	fields     map[string]*Validator // KindRecord
	fieldOrder []string              // KindRecord: sorted for deterministic traversal
	keyV       *Validator            // KindMap key validator
	elemV      *Validator            // KindMap value validator
	tagKey     string                // KindTaggedUnion discriminant key
	table      map[any]*Validator    // KindTaggedUnion: tag literal -> alternative
	fn         CheckFunc             // KindCustom
}

// Validate checks value against the declared shape. On success it returns
// the conforming value: the input itself when the validator is pure, a
// reconstructed value otherwise. On failure it returns a *Error carrying the
// reason, the root-to-leaf path, and the original input.
func (v *Validator) Validate(value any) (any, error) {
	ctx := context.Background()
	start := time.Now()
	emitValidateStart(ctx, v.kind)

	res := v.run(value)
	if f, ok := res.(*Failure); ok {
		err := f.seal(value)
		emitValidateComplete(ctx, v.kind, time.Since(start), err)
		return nil, err
	}

	emitValidateComplete(ctx, v.kind, time.Since(start), nil)
	return res, nil
}

// Check invokes the validator in internal mode: it returns either the
// conforming value or a failure marker recognizable with IsFailure, and it
// never returns an error. Custom validators use it to delegate to nested
// validators; application code should call Validate instead.
func (v *Validator) Check(value any) any {
	return v.run(value)
}

// run performs one internal validation step. It returns either the
// conforming value or a *Failure marker, never an error and never a panic:
// a combinator that panicked mid-recursion would abort sibling union
// branches. Dispatch is an exhaustive switch over the kind tag.
func (v *Validator) run(value any) any {
	switch v.kind {
	case KindAny:
		return value
	case KindNull:
		if value == nil {
			return nil
		}
		return newFailure("expected null, got " + typeName(value))
	case KindBoolean:
		if _, ok := value.(bool); ok {
			return value
		}
		return newFailure("expected a boolean, got " + typeName(value))
	case KindNumber:
		return v.runNumber(value)
	case KindInteger:
		return v.runInteger(value)
	case KindString:
		return v.runString(value)
	case KindLiteral:
		return v.runLiteral(value)
	case KindEnum:
		return v.runEnum(value)
	case KindOptional, KindNullable:
		if value == nil {
			return nil
		}
		return v.item.run(value)
	case KindArray:
		return v.runArray(value)
	case KindTuple:
		return v.runTuple(value)
	case KindRecord:
		return v.runRecord(value)
	case KindMap:
		return v.runMap(value)
	case KindUnion:
		return v.runUnion(value)
	case KindTaggedUnion:
		return v.runTaggedUnion(value)
	case KindIntersection:
		return v.runIntersection(value)
	case KindCustom:
		return v.fn(value)
	}
	return newFailuref("unhandled validator kind %d", int(v.kind))
}
