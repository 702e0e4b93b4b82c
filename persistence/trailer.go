package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/htygo/codec"
	"github.com/hupe1980/htygo/metadata"
)

// TrailerLenSize is the width of the trailing length field.
const TrailerLenSize = 4

// ErrCorruptTrailer is returned when the trailing length field or the
// metadata block it frames cannot be trusted.
var ErrCorruptTrailer = errors.New("corrupt trailer")

// byteOrder fixes the wire order for the length field and all cell data.
var byteOrder = binary.LittleEndian // native on x86/ARM

// ReadTrailer parses the metadata record from the tail of an HTY file.
// size is the total file size in bytes. If c is nil, codec.Default is used.
func ReadTrailer(r io.ReaderAt, size int64, c codec.Codec) (*metadata.Metadata, error) {
	if c == nil {
		c = codec.Default
	}

	if size < TrailerLenSize {
		return nil, fmt.Errorf("%w: file too small (%d bytes)", ErrCorruptTrailer, size)
	}

	var lenBuf [TrailerLenSize]byte
	if _, err := r.ReadAt(lenBuf[:], size-TrailerLenSize); err != nil {
		return nil, fmt.Errorf("read trailer length: %w", err)
	}

	n := int32(byteOrder.Uint32(lenBuf[:]))
	if n < 0 || int64(n) > size-TrailerLenSize {
		return nil, fmt.Errorf("%w: metadata length %d out of bounds for file size %d", ErrCorruptTrailer, n, size)
	}

	buf := make([]byte, n)
	if _, err := r.ReadAt(buf, size-TrailerLenSize-int64(n)); err != nil {
		return nil, fmt.Errorf("read metadata block: %w", err)
	}

	var m metadata.Metadata
	if err := c.Unmarshal(buf, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTrailer, err)
	}
	if m.NumGroups != len(m.Groups) {
		return nil, fmt.Errorf("%w: num_groups %d but %d group descriptors", ErrCorruptTrailer, m.NumGroups, len(m.Groups))
	}
	if m.NumRows < 0 {
		return nil, fmt.Errorf("%w: negative num_rows %d", ErrCorruptTrailer, m.NumRows)
	}
	for gi, g := range m.Groups {
		if g.Offset < 0 {
			return nil, fmt.Errorf("%w: group %d has negative offset %d", ErrCorruptTrailer, gi, g.Offset)
		}
		if g.NumColumns < 0 {
			return nil, fmt.Errorf("%w: group %d has negative num_columns %d", ErrCorruptTrailer, gi, g.NumColumns)
		}
		if g.NumColumns != len(g.Columns) {
			return nil, fmt.Errorf("%w: group %d num_columns %d but %d column descriptors", ErrCorruptTrailer, gi, g.NumColumns, len(g.Columns))
		}
	}

	return &m, nil
}

// WriteTrailer serializes the metadata block followed by its 4-byte length.
// The length field frames exactly the bytes this call produced, so
// ReadTrailer(WriteTrailer(m)) reproduces m structurally.
func WriteTrailer(w io.Writer, m *metadata.Metadata, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	buf, err := c.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if _, err := w.Write(buf); err != nil {
		return err
	}

	var lenBuf [TrailerLenSize]byte
	byteOrder.PutUint32(lenBuf[:], uint32(int32(len(buf))))
	_, err = w.Write(lenBuf[:])
	return err
}
