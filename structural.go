package conform

import (
	"sort"
	"strings"
)

// protoKey is rejected before any field processing in Record and Map.
// Validated data is frequently forwarded to JavaScript consumers, where an
// attacker-controlled "__proto__" key pollutes the object prototype.
const protoKey = "__proto__"

// Optional wraps a validator so that nil passes through unchanged and a
// record field declared with it may be absent. Non-nil values delegate to
// the wrapped validator.
func Optional(v *Validator) *Validator {
	return &Validator{kind: KindOptional, pure: v.pure, item: v}
}

// Nullable wraps a validator so that nil passes through unchanged. Non-nil
// values delegate to the wrapped validator.
func Nullable(v *Validator) *Validator {
	return &Validator{kind: KindNullable, pure: v.pure, item: v}
}

// Array accepts a []any whose every element passes item. A failing element
// propagates its index as the path key. The validator is pure when item is
// pure; otherwise it builds a new slice. Supported options: MinLen, MaxLen.
func Array(item *Validator, opts ...Option) *Validator {
	o := applyOptions("array", opts, "MinLen", "MaxLen")
	return &Validator{kind: KindArray, pure: item.pure, item: item, opts: o}
}

func (v *Validator) runArray(value any) any {
	arr, ok := value.([]any)
	if !ok {
		return newFailure("expected an array, got " + typeName(value))
	}
	o := v.opts
	if o.minLen != nil && len(arr) < *o.minLen {
		return newFailuref("expected an array with at least %d elements, got %d", *o.minLen, len(arr))
	}
	if o.maxLen != nil && len(arr) > *o.maxLen {
		return newFailuref("expected an array with at most %d elements, got %d", *o.maxLen, len(arr))
	}
	if v.pure {
		for i, el := range arr {
			if f, ok := v.item.run(el).(*Failure); ok {
				return f.at(i)
			}
		}
		return arr
	}
	out := make([]any, len(arr))
	for i, el := range arr {
		res := v.item.run(el)
		if f, ok := res.(*Failure); ok {
			return f.at(i)
		}
		out[i] = res
	}
	return out
}

// Tuple accepts a []any of exactly len(elems) elements, validating each
// position with its own validator.
func Tuple(elems ...*Validator) *Validator {
	pure := true
	for _, el := range elems {
		pure = pure && el.pure
	}
	return &Validator{kind: KindTuple, pure: pure, elems: append([]*Validator(nil), elems...)}
}

func (v *Validator) runTuple(value any) any {
	arr, ok := value.([]any)
	if !ok {
		return newFailure("expected a tuple, got " + typeName(value))
	}
	if len(arr) != len(v.elems) {
		return newFailuref("expected a tuple of length %d, got %d", len(v.elems), len(arr))
	}
	if v.pure {
		for i, el := range arr {
			if f, ok := v.elems[i].run(el).(*Failure); ok {
				return f.at(i)
			}
		}
		return arr
	}
	out := make([]any, len(arr))
	for i, el := range arr {
		res := v.elems[i].run(el)
		if f, ok := res.(*Failure); ok {
			return f.at(i)
		}
		out[i] = res
	}
	return out
}

// Record accepts a map[string]any with exactly the declared fields. A field
// wrapped in Optional may be absent; any undeclared key fails the whole
// record. Field validation propagates the field name as the path key.
//
// An impure record builds a fresh output map rather than assigning into the
// input, so extra properties can never leak through and later intersection
// merging stays safe. A pure record returns the input map itself; the
// excess-key and forbidden-key checks run either way.
func Record(fields map[string]*Validator) *Validator {
	if _, ok := fields[protoKey]; ok {
		panic(newUsageError(ErrForbiddenKey, "record cannot declare %q", protoKey))
	}
	cp := make(map[string]*Validator, len(fields))
	order := make([]string, 0, len(fields))
	pure := true
	for name, f := range fields {
		cp[name] = f
		order = append(order, name)
		pure = pure && f.pure
	}
	sort.Strings(order)
	return &Validator{kind: KindRecord, pure: pure, fields: cp, fieldOrder: order}
}

func (v *Validator) runRecord(value any) any {
	in, ok := value.(map[string]any)
	if !ok {
		return newFailure("expected an object, got " + typeName(value))
	}
	if _, ok := in[protoKey]; ok {
		return newFailuref("forbidden key %q", protoKey)
	}
	var out map[string]any
	if !v.pure {
		out = make(map[string]any, len(v.fieldOrder))
	}
	for _, name := range v.fieldOrder {
		child := v.fields[name]
		raw, present := in[name]
		if !present {
			if child.kind == KindOptional {
				continue
			}
			return newFailure("missing required key").at(name)
		}
		res := child.run(raw)
		if f, ok := res.(*Failure); ok {
			return f.at(name)
		}
		if out != nil {
			out[name] = res
		}
	}
	var excess []string
	for key := range in {
		if _, declared := v.fields[key]; !declared {
			excess = append(excess, key)
		}
	}
	if len(excess) > 0 {
		sort.Strings(excess)
		return newFailuref("invalid keys in record: %s", strings.Join(excess, ", "))
	}
	if v.pure {
		return in
	}
	return out
}

// Map accepts a map[string]any with variable keys: every key is validated
// by the key validator (not merely type-checked) and every value by the
// value validator. Both failures propagate the key as the path key. Copying
// is skipped when both validators are pure, since no key can be rewritten.
func Map(key, value *Validator) *Validator {
	return &Validator{kind: KindMap, pure: key.pure && value.pure, keyV: key, elemV: value}
}

func (v *Validator) runMap(value any) any {
	in, ok := value.(map[string]any)
	if !ok {
		return newFailure("expected an object, got " + typeName(value))
	}
	if _, ok := in[protoKey]; ok {
		return newFailuref("forbidden key %q", protoKey)
	}
	if v.pure {
		// Pure key validators return keys unchanged, so no copy is needed.
		for key, el := range in {
			if f, ok := v.keyV.run(key).(*Failure); ok {
				return f.at(key)
			}
			if f, ok := v.elemV.run(el).(*Failure); ok {
				return f.at(key)
			}
		}
		return in
	}
	out := make(map[string]any, len(in))
	for key, el := range in {
		kres := v.keyV.run(key)
		if f, ok := kres.(*Failure); ok {
			return f.at(key)
		}
		outKey, ok := kres.(string)
		if !ok {
			return newFailure("expected the key to validate to a string, got " + typeName(kres)).at(key)
		}
		if outKey == protoKey {
			return newFailuref("forbidden key %q", protoKey).at(key)
		}
		res := v.elemV.run(el)
		if f, ok := res.(*Failure); ok {
			return f.at(key)
		}
		out[outKey] = res
	}
	return out
}
