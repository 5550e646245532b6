package conform

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register tags with sentinel so Scan extracts them.
	sentinel.Tag("json")
	sentinel.Tag("conform")
}

// Struct derives a record validator from T's struct definition. Field names
// come from `json` tags (falling back to the Go name; `json:"-"` skips the
// field), constraints from `conform` tags. Pointer fields and fields marked
// omitempty or `conform:"optional"` become Optional.
//
// Supported conform tag entries: optional, trim, min=<n>, max=<n>,
// minlen=<n>, maxlen=<n>, pattern=<re>. Patterns containing a comma cannot
// be expressed in a tag; build those validators by hand. An unknown entry,
// a malformed value, or a field type outside the value model is a usage
// error.
//
// The derived validator checks untyped data shaped like T, e.g. a decoded
// payload before it is bound to T.
func Struct[T any]() *Validator {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		panic(newUsageError(ErrNotStruct, "Struct requires a struct type, got %s", rt))
	}
	meta := sentinel.Scan[T]()
	fields := make(map[string]*Validator, len(meta.Fields))
	for _, fm := range meta.Fields {
		name, v, ok := structField(fm.ReflectType, fm.Tags["json"], fm.Tags["conform"], fm.Name)
		if !ok {
			continue
		}
		fields[name] = v
	}
	return Record(fields)
}

// structField resolves one struct field into its wire name and validator.
// The bool result is false when the field is excluded via `json:"-"`.
func structField(rt reflect.Type, jsonTag, conformTag, goName string) (string, *Validator, bool) {
	name := goName
	optional := false
	if jsonTag != "" {
		parts := strings.Split(jsonTag, ",")
		if parts[0] == "-" && len(parts) == 1 {
			return "", nil, false
		}
		if parts[0] != "" {
			name = parts[0]
		}
		for _, p := range parts[1:] {
			if p == "omitempty" {
				optional = true
			}
		}
	}

	opts, tagOptional := parseConformTag(conformTag, goName)
	v := typeValidator(rt, opts)
	if (optional || tagOptional) && v.kind != KindOptional {
		v = Optional(v)
	}
	return name, v, true
}

// parseConformTag converts a conform tag into constructor options. Options
// that do not fit the field's type surface as usage errors when the field's
// validator is constructed.
func parseConformTag(tag, field string) ([]Option, bool) {
	if tag == "" {
		return nil, false
	}
	var opts []Option
	optional := false
	for _, entry := range strings.Split(tag, ",") {
		if entry == "" {
			continue
		}
		key, value, hasValue := strings.Cut(entry, "=")
		switch {
		case key == "optional" && !hasValue:
			optional = true
		case key == "trim" && !hasValue:
			opts = append(opts, Trim())
		case key == "min" && hasValue:
			opts = append(opts, Min(parseTagFloat(value, field, entry)))
		case key == "max" && hasValue:
			opts = append(opts, Max(parseTagFloat(value, field, entry)))
		case key == "minlen" && hasValue:
			opts = append(opts, MinLen(parseTagInt(value, field, entry)))
		case key == "maxlen" && hasValue:
			opts = append(opts, MaxLen(parseTagInt(value, field, entry)))
		case key == "pattern" && hasValue:
			re, err := regexp.Compile(value)
			if err != nil {
				panic(newUsageError(ErrBadTag, "field %s: invalid pattern %q: %v", field, value, err))
			}
			opts = append(opts, Match(re))
		default:
			panic(newUsageError(ErrBadTag, "field %s: unknown conform tag entry %q", field, entry))
		}
	}
	return opts, optional
}

func parseTagFloat(value, field, entry string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		panic(newUsageError(ErrBadTag, "field %s: invalid number in %q", field, entry))
	}
	return f
}

func parseTagInt(value, field, entry string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(newUsageError(ErrBadTag, "field %s: invalid length in %q", field, entry))
	}
	return n
}

// typeValidator maps a Go type onto its value-model validator. Tag options
// apply to the outermost non-pointer type of the field.
func typeValidator(rt reflect.Type, opts []Option) *Validator {
	switch rt.Kind() {
	case reflect.Pointer:
		return Optional(typeValidator(rt.Elem(), opts))
	case reflect.String:
		return String(opts...)
	case reflect.Bool:
		return Boolean()
	case reflect.Float32, reflect.Float64:
		return Number(opts...)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer(opts...)
	case reflect.Struct:
		return nestedStruct(rt)
	case reflect.Slice, reflect.Array:
		if rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8 {
			// []byte marshals as a base64 string.
			return String(opts...)
		}
		return Array(typeValidator(rt.Elem(), nil), opts...)
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			panic(newUsageError(ErrBadField, "map key type %s is not a string", rt.Key()))
		}
		return Map(String(), typeValidator(rt.Elem(), nil))
	case reflect.Interface:
		if rt.NumMethod() == 0 {
			return Any()
		}
	}
	panic(newUsageError(ErrBadField, "type %s cannot be expressed in the value model", rt))
}

// nestedStruct derives a record validator for a nested struct type,
// reading tags directly off the reflected fields.
func nestedStruct(rt reflect.Type) *Validator {
	fields := make(map[string]*Validator, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		jsonTag := sf.Tag.Get("json")
		conformTag := sf.Tag.Get("conform")
		name, v, ok := structField(sf.Type, jsonTag, conformTag, sf.Name)
		if !ok {
			continue
		}
		fields[name] = v
	}
	return Record(fields)
}
