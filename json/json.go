// Package json provides a JSON source implementation.
package json

import (
	"github.com/goccy/go-json"

	"github.com/zoobzio/conform"
)

// jsonSource implements conform.Source for JSON.
type jsonSource struct{}

// New returns a JSON source.
func New() conform.Source {
	return &jsonSource{}
}

// ContentType returns the MIME type for JSON.
func (s *jsonSource) ContentType() string {
	return "application/json"
}

// Decode parses JSON data. The decoder already produces the value model
// (float64, []any, map[string]any), so no normalization pass is needed.
func (s *jsonSource) Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
