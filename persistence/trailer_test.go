package persistence

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/htygo/codec"
	"github.com/hupe1980/htygo/metadata"
)

func sampleMeta() *metadata.Metadata {
	return &metadata.Metadata{
		NumRows:   3,
		NumGroups: 2,
		Groups: []metadata.Group{
			{
				Offset:     0,
				NumColumns: 2,
				Columns: []metadata.Column{
					{Name: "a", Type: metadata.ColumnTypeFloat},
					{Name: "b", Type: metadata.ColumnTypeFloat},
				},
			},
			{
				Offset:     24,
				NumColumns: 1,
				Columns: []metadata.Column{
					{Name: "c", Type: metadata.ColumnTypeFloat},
				},
			},
		},
	}
}

func TestTrailerRoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			in := sampleMeta()

			var buf bytes.Buffer
			require.NoError(t, WriteTrailer(&buf, in, c))

			out, err := ReadTrailer(bytes.NewReader(buf.Bytes()), int64(buf.Len()), c)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestTrailerRoundTripEmpty(t *testing.T) {
	in := &metadata.Metadata{NumRows: 0, NumGroups: 0, Groups: []metadata.Group{}}

	var buf bytes.Buffer
	require.NoError(t, WriteTrailer(&buf, in, nil))

	out, err := ReadTrailer(bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil)
	require.NoError(t, err)
	assert.Equal(t, in.NumRows, out.NumRows)
	assert.Equal(t, in.NumGroups, out.NumGroups)
	assert.Empty(t, out.Groups)
}

func TestTrailerAfterData(t *testing.T) {
	// Trailer parsing must ignore whatever precedes the metadata block.
	var buf bytes.Buffer
	buf.Write(make([]byte, 24)) // group block
	require.NoError(t, WriteTrailer(&buf, sampleMeta(), nil))

	out, err := ReadTrailer(bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil)
	require.NoError(t, err)
	assert.Equal(t, sampleMeta(), out)
}

func TestReadTrailerCorrupt(t *testing.T) {
	valid := func() []byte {
		var buf bytes.Buffer
		require.NoError(t, WriteTrailer(&buf, sampleMeta(), nil))
		return buf.Bytes()
	}()

	// Well-framed trailer whose metadata content is inconsistent. Content
	// defects must surface as ErrCorruptTrailer, never as a downstream
	// panic in offset arithmetic.
	mutated := func(mutate func(*metadata.Metadata)) []byte {
		var buf bytes.Buffer
		m := sampleMeta()
		mutate(m)
		require.NoError(t, WriteTrailer(&buf, m, nil))
		return buf.Bytes()
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"file smaller than length field", []byte{1, 2}},
		{"negative length", []byte{0, 0, 0, 0x80}},
		{"length beyond file size", []byte{0xff, 0x00, 0x00, 0x00}},
		{"metadata not valid JSON", append([]byte("{{{{"), 4, 0, 0, 0)},
		{"group count mismatch", mutated(func(m *metadata.Metadata) { m.NumGroups = 5 })},
		{"negative num_rows", mutated(func(m *metadata.Metadata) { m.NumRows = -1 })},
		{"negative group offset", mutated(func(m *metadata.Metadata) { m.Groups[1].Offset = -24 })},
		{"negative num_columns", mutated(func(m *metadata.Metadata) {
			m.Groups[0].NumColumns = -2
			m.Groups[0].Columns = nil
		})},
		{"column count mismatch", mutated(func(m *metadata.Metadata) { m.Groups[0].NumColumns = 7 })},
		{"truncated metadata block", valid[len(valid)-10:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTrailer(bytes.NewReader(tt.data), int64(len(tt.data)), nil)
			require.Error(t, err)
		})
	}
}

func TestReadTrailerZeroLength(t *testing.T) {
	// A zero-length metadata block is in bounds but cannot parse as JSON.
	_, err := ReadTrailer(bytes.NewReader([]byte{0, 0, 0, 0}), 4, nil)
	assert.ErrorIs(t, err, ErrCorruptTrailer)
}
