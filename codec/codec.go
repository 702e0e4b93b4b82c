// Package codec centralizes metadata encoding for the HTY trailer.
//
// The trailer block is UTF-8 JSON by contract, so every codec here must
// produce bytes that a plain JSON parser can read back. Codec selection is a
// compatibility boundary: files written with one codec must stay readable by
// the others.
package codec

import "fmt"

// Codec encodes/decodes trailer metadata.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
