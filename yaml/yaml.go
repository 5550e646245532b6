// Package yaml provides a YAML source implementation.
package yaml

import (
	"github.com/zoobzio/conform"
	"gopkg.in/yaml.v3"
)

// yamlSource implements conform.Source for YAML.
type yamlSource struct{}

// New returns a YAML source.
func New() conform.Source {
	return &yamlSource{}
}

// ContentType returns the MIME type for YAML.
func (s *yamlSource) ContentType() string {
	return "application/yaml"
}

// Decode parses YAML data into the value model. The decoder produces int
// for whole numbers and map[string]any for mappings; Normalize brings the
// integers into line.
func (s *yamlSource) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return conform.Normalize(v), nil
}
