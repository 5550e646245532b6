package conform

import (
	"fmt"
	"strings"
)

// Schema renders the declared shape as compact text, e.g.
// `{id: string, tags?: string[]}`. The rendering is deterministic: record
// fields appear in sorted order and union alternatives in declaration
// order. It is meant for diagnostics and documentation, not for parsing.
func (v *Validator) Schema() string {
	switch v.kind {
	case KindAny, KindNull, KindBoolean, KindNumber, KindInteger, KindString:
		return v.kind.String()
	case KindLiteral:
		return formatLiteral(v.literal)
	case KindEnum:
		parts := make([]string, len(v.memberList))
		for i, m := range v.memberList {
			parts[i] = formatLiteral(m)
		}
		return strings.Join(parts, " | ")
	case KindOptional:
		return v.item.Schema() + "?"
	case KindNullable:
		return v.item.Schema() + " | null"
	case KindArray:
		return groupSchema(v.item) + "[]"
	case KindTuple:
		parts := make([]string, len(v.elems))
		for i, el := range v.elems {
			parts[i] = el.Schema()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindRecord:
		parts := make([]string, 0, len(v.fieldOrder))
		for _, name := range v.fieldOrder {
			f := v.fields[name]
			if f.kind == KindOptional {
				parts = append(parts, fmt.Sprintf("%s?: %s", name, f.item.Schema()))
			} else {
				parts = append(parts, fmt.Sprintf("%s: %s", name, f.Schema()))
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindMap:
		return fmt.Sprintf("{[%s]: %s}", v.keyV.Schema(), v.elemV.Schema())
	case KindUnion, KindTaggedUnion:
		parts := make([]string, len(v.elems))
		for i, alt := range v.elems {
			parts[i] = alt.Schema()
		}
		return strings.Join(parts, " | ")
	case KindIntersection:
		return groupSchema(v.elems[0]) + " & " + groupSchema(v.elems[1])
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

// groupSchema parenthesizes multi-part schemas when they are embedded in a
// larger one.
func groupSchema(v *Validator) string {
	s := v.Schema()
	switch v.kind {
	case KindUnion, KindTaggedUnion, KindNullable, KindEnum, KindIntersection:
		return "(" + s + ")"
	}
	return s
}
