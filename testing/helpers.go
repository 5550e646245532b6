// Package testing provides shared fixtures for conform tests.
package testing

import (
	"github.com/zoobzio/conform"
)

// User mirrors the wire shape checked by UserValidator, for derivation tests.
type User struct {
	ID   string   `json:"id" conform:"minlen=1"`
	Name string   `json:"name" conform:"trim"`
	Age  *int     `json:"age" conform:"min=0"`
	Tags []string `json:"tags"`
}

// UserValidator returns the record validator shared by integration tests.
// It mixes pure fields with transforming ones (trim, integer normalization)
// so tests exercise the copying path.
func UserValidator() *conform.Validator {
	return conform.Record(map[string]*conform.Validator{
		"id":   conform.String(conform.MinLen(1)),
		"name": conform.String(conform.Trim()),
		"age":  conform.Optional(conform.Integer(conform.Min(0))),
		"tags": conform.Array(conform.String()),
	})
}

// PureUserValidator returns a validator over the same shape with no
// transforming checks, so validation returns its input by reference.
func PureUserValidator() *conform.Validator {
	return conform.Record(map[string]*conform.Validator{
		"id":   conform.String(conform.MinLen(1)),
		"name": conform.String(),
		"age":  conform.Optional(conform.Number(conform.Min(0))),
		"tags": conform.Array(conform.String()),
	})
}

// EventValidator returns a tagged-union validator dispatching on "type".
func EventValidator() *conform.Validator {
	return conform.TaggedUnion("type",
		conform.Record(map[string]*conform.Validator{
			"type": conform.Literal("created"),
			"id":   conform.String(conform.MinLen(1)),
		}),
		conform.Record(map[string]*conform.Validator{
			"type": conform.Literal("deleted"),
			"id":   conform.String(conform.MinLen(1)),
			"hard": conform.Boolean(),
		}),
	)
}

// ValidUser returns a payload accepted by UserValidator.
func ValidUser() map[string]any {
	return map[string]any{
		"id":   "u-1",
		"name": "  Ada  ",
		"age":  36.0,
		"tags": []any{"a", "b"},
	}
}

// ValidatedUser returns the value UserValidator produces for ValidUser.
func ValidatedUser() map[string]any {
	return map[string]any{
		"id":   "u-1",
		"name": "Ada",
		"age":  int64(36),
		"tags": []any{"a", "b"},
	}
}

// InvalidUser returns a payload UserValidator rejects at .age.
func InvalidUser() map[string]any {
	return map[string]any{
		"id":   "u-1",
		"name": "Ada",
		"age":  -1.0,
		"tags": []any{},
	}
}

// ValidUserJSON returns the JSON encoding of ValidUser.
func ValidUserJSON() []byte {
	return []byte(`{"id":"u-1","name":"  Ada  ","age":36,"tags":["a","b"]}`)
}
