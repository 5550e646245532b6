package conform

import (
	"context"
	"fmt"
	"time"
)

// Source decodes raw bytes into the untyped value model. Implementations
// live in the json, yaml, msgpack, and bson submodules; each normalizes its
// decoder's native types (yaml int, msgpack int64, bson primitives) so that
// validators see a single representation.
type Source interface {
	// ContentType returns the MIME type for this source (e.g., "application/json").
	ContentType() string

	// Decode parses data into the value model.
	Decode(data []byte) (any, error)
}

// Decode parses data with src and validates the result. A decode failure is
// reported as a *SourceError wrapping ErrDecode; a validation failure as a
// *Error. The error's Value is the decoded input, since the raw bytes are
// not part of the value model.
func (v *Validator) Decode(ctx context.Context, src Source, data []byte) (any, error) {
	start := time.Now()

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, src.ContentType(), v.kind, time.Since(start), retErr)
	}()

	raw, err := src.Decode(data)
	if err != nil {
		retErr = newSourceError(ErrDecode, err)
		return nil, retErr
	}

	res := v.run(raw)
	if f, ok := res.(*Failure); ok {
		retErr = f.seal(raw)
		return nil, retErr
	}
	return res, nil
}

// Normalize converts a decoded value into the value model in place where
// possible: integer and float32 scalars become float64, map[any]any becomes
// map[string]any, and containers are normalized recursively. Values already
// in the model pass through untouched. Integers beyond the safe range lose
// precision, exactly as they would surviving a JSON round trip.
func Normalize(value any) any {
	switch x := value.(type) {
	case nil, bool, string, float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case []any:
		for i, el := range x {
			x[i] = Normalize(el)
		}
		return x
	case map[string]any:
		for k, el := range x {
			x[k] = Normalize(el)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, el := range x {
			if ks, ok := k.(string); ok {
				out[ks] = Normalize(el)
			} else {
				out[fmt.Sprint(k)] = Normalize(el)
			}
		}
		return out
	}
	return value
}
