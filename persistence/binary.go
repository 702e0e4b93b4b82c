package persistence

import (
	"io"
	"math"
	"unsafe"

	"github.com/hupe1980/htygo/metadata"
)

// GroupReader performs cell and block reads over one group's row-major data.
//
// ReadCell does no bounds checking against the row count; callers must keep
// row < numRows.
type GroupReader struct {
	r       io.ReaderAt
	group   metadata.Group
	numRows int
}

// NewGroupReader creates a reader for the given group. numRows is the file's
// logical row count, identical across all groups.
func NewGroupReader(r io.ReaderAt, g metadata.Group, numRows int) *GroupReader {
	return &GroupReader{r: r, group: g, numRows: numRows}
}

// ReadCell reads the float32 at (row, col), col indexed within the group.
func (gr *GroupReader) ReadCell(row, col int) (float32, error) {
	var buf [metadata.CellSize]byte
	if _, err := gr.r.ReadAt(buf[:], gr.group.CellOffset(row, col)); err != nil {
		return 0, err
	}
	return math.Float32frombits(byteOrder.Uint32(buf[:])), nil
}

// ReadBlock reads the group's entire contiguous data block in one pass.
// Mutations use this to copy existing data forward verbatim.
func (gr *GroupReader) ReadBlock() ([]byte, error) {
	buf := make([]byte, gr.group.BlockSize(gr.numRows))
	if len(buf) == 0 {
		return buf, nil
	}
	if _, err := gr.r.ReadAt(buf, gr.group.Offset); err != nil {
		return nil, err
	}
	return buf, nil
}

// BlockWriter writes packed float32 cell data.
type BlockWriter struct {
	w io.Writer
}

// NewBlockWriter creates a writer for group block data.
func NewBlockWriter(w io.Writer) *BlockWriter {
	return &BlockWriter{w: w}
}

// WriteFloat32s writes vals as raw little-endian bytes without copying.
func (bw *BlockWriter) WriteFloat32s(vals []float32) error {
	if len(vals) == 0 {
		return nil
	}
	if err := validateFloat32Alignment(vals); err != nil {
		return err
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*metadata.CellSize)
	_, err := bw.w.Write(buf)
	return err
}

// WriteRaw writes an already-packed block, e.g. one copied forward by
// GroupReader.ReadBlock.
func (bw *BlockWriter) WriteRaw(block []byte) error {
	if len(block) == 0 {
		return nil
	}
	_, err := bw.w.Write(block)
	return err
}
