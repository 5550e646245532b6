// Package bson provides a BSON source implementation.
package bson

import (
	"time"

	"github.com/zoobzio/conform"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bsonSource implements conform.Source for BSON.
type bsonSource struct{}

// New returns a BSON source.
func New() conform.Source {
	return &bsonSource{}
}

// ContentType returns the MIME type for BSON.
func (s *bsonSource) ContentType() string {
	return "application/bson"
}

// Decode parses a BSON document into the value model. Driver-specific types
// are flattened: documents become map[string]any, arrays []any, ObjectIDs
// hex strings, and timestamps RFC 3339 strings, matching how the same data
// would look after a JSON round trip.
func (s *bsonSource) Decode(data []byte) (any, error) {
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return normalize(doc), nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case bson.M:
		out := make(map[string]any, len(x))
		for k, el := range x {
			out[k] = normalize(el)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(x))
		for _, el := range x {
			out[el.Key] = normalize(el.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = normalize(el)
		}
		return out
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC().Format(time.RFC3339Nano)
	case primitive.Decimal128:
		return x.String()
	default:
		return conform.Normalize(v)
	}
}
