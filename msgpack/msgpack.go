// Package msgpack provides a MessagePack source implementation.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/conform"
)

// msgpackSource implements conform.Source for MessagePack.
type msgpackSource struct{}

// New returns a MessagePack source.
func New() conform.Source {
	return &msgpackSource{}
}

// ContentType returns the MIME type for MessagePack.
func (s *msgpackSource) ContentType() string {
	return "application/msgpack"
}

// Decode parses MessagePack data into the value model. The decoder produces
// sized integer types and float32 for small floats; Normalize converts them
// to float64. Integers beyond the safe range lose precision, the same as
// they would in JSON.
func (s *msgpackSource) Decode(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return conform.Normalize(v), nil
}
