package metadata

const (
	// ColumnTypeFloat is the only column type the format currently supports.
	ColumnTypeFloat = "float"

	// CellSize is the byte width of one stored value (IEEE-754 float32).
	CellSize = 4
)

// Column describes a single column inside a group.
type Column struct {
	Name string `json:"column_name"`
	Type string `json:"column_type"`
}

// Group describes one physically contiguous block of row-major data.
//
// The value for row r, column c (0-indexed within the group) lives at byte
// Offset + (r*NumColumns + c) * CellSize.
type Group struct {
	Offset     int64    `json:"offset"`
	NumColumns int      `json:"num_columns"`
	Columns    []Column `json:"columns"`
}

// BlockSize returns the byte size of the group's data block for numRows rows.
func (g Group) BlockSize(numRows int) int64 {
	return int64(numRows) * int64(g.NumColumns) * CellSize
}

// CellOffset returns the absolute byte position of the cell at (row, col).
// col is the column index within the group. No bounds checking is performed;
// callers must keep row < NumRows.
func (g Group) CellOffset(row, col int) int64 {
	return g.Offset + (int64(row)*int64(g.NumColumns)+int64(col))*CellSize
}

// Metadata is the trailer record. It is the single source of truth for the
// file layout.
type Metadata struct {
	NumRows   int     `json:"num_rows"`
	NumGroups int     `json:"num_groups"`
	Groups    []Group `json:"groups"`
}

// TotalColumns returns the column count summed across all groups. This is the
// width every appended row must have.
func (m *Metadata) TotalColumns() int {
	total := 0
	for _, g := range m.Groups {
		total += g.NumColumns
	}
	return total
}

// Clone returns a deep copy. Mutations derive their new trailer from a clone
// so the source metadata stays untouched.
func (m *Metadata) Clone() *Metadata {
	out := &Metadata{
		NumRows:   m.NumRows,
		NumGroups: m.NumGroups,
		Groups:    make([]Group, len(m.Groups)),
	}
	for i, g := range m.Groups {
		cols := make([]Column, len(g.Columns))
		copy(cols, g.Columns)
		out.Groups[i] = Group{
			Offset:     g.Offset,
			NumColumns: g.NumColumns,
			Columns:    cols,
		}
	}
	return out
}
