package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It is the most portable option and the reference behavior for the trailer
// contract: whatever GoJSON writes, JSON must be able to read, and vice versa.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
//
// The trailer does not record which codec wrote it; both built-in codecs emit
// interchangeable JSON, so the default may change without a format break.
var Default Codec = GoJSON{}
