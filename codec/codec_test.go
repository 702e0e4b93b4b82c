package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, c)
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestCodecInterop(t *testing.T) {
	type record struct {
		NumRows   int    `json:"num_rows"`
		NumGroups int    `json:"num_groups"`
		Note      string `json:"note"`
	}

	in := record{NumRows: 42, NumGroups: 2, Note: "trailer"}

	// Bytes written by one codec must decode with the other.
	for _, writer := range []Codec{JSON{}, GoJSON{}} {
		for _, reader := range []Codec{JSON{}, GoJSON{}} {
			b, err := writer.Marshal(in)
			require.NoError(t, err)

			var out record
			require.NoError(t, reader.Unmarshal(b, &out))
			assert.Equal(t, in, out, "%s -> %s", writer.Name(), reader.Name())
		}
	}
}

func TestMustMarshalNilCodec(t *testing.T) {
	b := MustMarshal(nil, map[string]int{"num_rows": 1})
	assert.JSONEq(t, `{"num_rows":1}`, string(b))
}
