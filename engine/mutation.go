package engine

import (
	"io"

	"github.com/hupe1980/htygo/persistence"
)

// AddRows appends rows to every group by writing a complete new file at
// dest. The source file is never modified: every group's block grows, so all
// subsequent offsets shift and the file must be rewritten as a whole.
//
// Each row carries values for all columns of all groups, in group-then-column
// order; its length must equal the total column count. Validation runs before
// the first destination byte is written, and the destination goes through a
// temp-file rename, so dest is either fully absent or fully written.
//
// AddRows must not race a concurrent reader or writer of the same paths; the
// format defines no locking discipline.
func (e *Engine) AddRows(dest string, rows [][]float32) error {
	if len(rows) == 0 {
		return ErrNoRowsProvided
	}

	f, m, _, err := e.open()
	if err != nil {
		return err
	}
	defer f.Close()

	expected := m.TotalColumns()
	for i, row := range rows {
		if len(row) != expected {
			return &ErrRowShapeMismatch{Row: i, Expected: expected, Actual: len(row)}
		}
	}

	newMeta := m.Clone()
	newMeta.NumRows = m.NumRows + len(rows)

	err = persistence.SaveToFile(dest, func(w io.Writer) error {
		bw := persistence.NewBlockWriter(w)

		var current int64
		colStart := 0
		var wantOld int64
		for gi, g := range m.Groups {
			// Source offsets are recomputed, never trusted.
			if g.Offset != wantOld {
				e.logger.Warn("source group not contiguous", "path", e.path, "group", gi, "offset", g.Offset, "expected", wantOld)
			}
			wantOld += g.BlockSize(m.NumRows)

			newMeta.Groups[gi].Offset = current

			block, err := persistence.NewGroupReader(f, g, m.NumRows).ReadBlock()
			if err != nil {
				return err
			}
			if err := bw.WriteRaw(block); err != nil {
				return err
			}

			for _, row := range rows {
				if err := bw.WriteFloat32s(row[colStart : colStart+g.NumColumns]); err != nil {
					return err
				}
			}

			current += g.BlockSize(newMeta.NumRows)
			colStart += g.NumColumns
		}

		return persistence.WriteTrailer(w, newMeta, e.codec)
	})
	if err != nil {
		return err
	}

	e.logger.Info("rows appended", "source", e.path, "dest", dest, "appended", len(rows), "rows", newMeta.NumRows)
	return nil
}
