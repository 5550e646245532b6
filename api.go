// Package conform validates untyped data against a declared shape.
//
// The package targets programs that receive external data (API payloads,
// configuration files) as already-parsed, untyped values and need a runtime
// guarantee that a value actually has the shape the program expects. A
// validator either returns a conforming (possibly reconstructed) value or a
// structured error naming the reason, the path to the failing element, and
// the original input.
//
// # Value Model
//
// Validators operate on the parsed-JSON value model:
//
//	nil, bool, float64, string, []any, map[string]any
//
// Source submodules (json, yaml, msgpack, bson) decode raw bytes into this
// model, normalizing codec-specific types so every validator sees the same
// representation. Use Normalize to bring values from other decoders into the
// model.
//
// # Basic Usage
//
//	user := conform.Record(map[string]*conform.Validator{
//	    "id":   conform.String(conform.MinLen(1)),
//	    "name": conform.String(conform.Trim()),
//	    "age":  conform.Optional(conform.Integer(conform.Min(0))),
//	})
//
//	value, err := user.Validate(payload)
//	if err != nil {
//	    var verr *conform.Error
//	    errors.As(err, &verr) // verr.Path locates the failing element
//	}
//
// # Combinators
//
// Shapes compose from primitives (Boolean, Number, Integer, String, Literal,
// Enum), structural combinators (Array, Tuple, Record, Map, Optional,
// Nullable) and algebraic combinators (Union, TaggedUnion, Intersection,
// Pick, Omit, Partial). Validators are immutable once constructed and safe
// for concurrent use; build them once at package init and reuse them for
// every call.
//
// # Failure Propagation
//
// Inside nested combinators a failed check travels as an internal marker
// value, never as a panic or error, so Union and Intersection can try
// alternatives cheaply. The marker accumulates path keys leaf-to-root as it
// unwinds and is converted into a single *Error at the Validate boundary.
// Custom validators participate through Fail and IsFailure.
//
// # Excess Keys
//
// Record validation rejects keys that were not declared, and both Record and
// Map reject a key literally named "__proto__" before any field processing.
// Data validated here is frequently forwarded to JavaScript consumers, where
// that key is an attacker-controlled prototype-pollution vector.
//
// # Purity
//
// A validator is pure when it returns every accepted input unchanged. Pure
// composites return the original container by reference instead of
// allocating a copy; excess-key and forbidden-key checks still run
// unconditionally. Transforming options (Trim) and Integer's int64
// normalization make a validator impure, and impurity propagates to every
// composite that contains it.
//
// # Usage Errors
//
// Misassembling combinators (Pick on a non-record, a TaggedUnion alternative
// without a literal tag, an option applied to the wrong validator) panics
// with *UsageError at construction time, the same way regexp.MustCompile
// reports a bad pattern. These are programmer errors, distinct from
// validation failures, and are not meant to be handled per input.
//
// # Struct Derivation
//
// Struct[T] derives a record validator from a struct definition, taking
// field names from `json` tags and constraints from `conform` tags:
//
//	type User struct {
//	    ID   string `json:"id" conform:"minlen=1"`
//	    Name string `json:"name" conform:"trim"`
//	    Age  *int   `json:"age,omitempty" conform:"min=0"`
//	}
//
//	v := conform.For[User]() // cached Struct[User]()
package conform

import "fmt"

// As validates value against v and asserts the result to T.
//
// T should be a type from the value model (map[string]any, []any, string,
// float64, int64, bool); a mismatch between the validated result and T is
// reported as a validation error.
func As[T any](v *Validator, value any) (T, error) {
	var zero T
	out, err := v.Validate(value)
	if err != nil {
		return zero, err
	}
	t, ok := out.(T)
	if !ok {
		return zero, &Error{
			Reason: fmt.Sprintf("validated value is %T, not %T", out, zero),
			Value:  value,
		}
	}
	return t, nil
}
