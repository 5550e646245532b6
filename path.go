package conform

import (
	"fmt"
	"strings"
	"unicode"
)

// Path locates an element inside a nested value. Elements are string keys
// for object fields and int indices for array and tuple positions, ordered
// root to leaf.
type Path []any

// String renders the path in selector form, e.g. `.users[3].email`.
// Keys that are not plain identifiers are rendered in quoted index form.
func (p Path) String() string {
	var b strings.Builder
	for _, k := range p {
		switch x := k.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", x)
		case string:
			if isIdentifier(x) {
				b.WriteByte('.')
				b.WriteString(x)
			} else {
				fmt.Fprintf(&b, "[%q]", x)
			}
		default:
			fmt.Fprintf(&b, "[%v]", x)
		}
	}
	return b.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// typeName describes a value in terms of the value model for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case int, int64:
		return "integer"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// truncate renders a value for display, capped at max runes. Error messages
// embed the whole top-level input, which may be arbitrarily large.
func truncate(v any, max int) string {
	s := fmt.Sprint(v)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// formatLiteral renders a literal value for error messages and schemas.
func formatLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(x)
	}
}
