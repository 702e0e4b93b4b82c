package engine

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/htygo/metadata"
	"github.com/hupe1980/htygo/persistence"
)

type testGroup struct {
	names []string
	rows  [][]float32 // numRows x len(names), row-major
}

// writeHTY builds a conformant HTY file: group blocks back to back followed
// by the trailer.
func writeHTY(t *testing.T, path string, numRows int, groups ...testGroup) {
	t.Helper()

	m := &metadata.Metadata{
		NumRows:   numRows,
		NumGroups: len(groups),
		Groups:    make([]metadata.Group, len(groups)),
	}

	var offset int64
	for gi, g := range groups {
		cols := make([]metadata.Column, len(g.names))
		for ci, name := range g.names {
			cols[ci] = metadata.Column{Name: name, Type: metadata.ColumnTypeFloat}
		}
		m.Groups[gi] = metadata.Group{
			Offset:     offset,
			NumColumns: len(g.names),
			Columns:    cols,
		}
		offset += m.Groups[gi].BlockSize(numRows)
	}

	err := persistence.SaveToFile(path, func(w io.Writer) error {
		bw := persistence.NewBlockWriter(w)
		for _, g := range groups {
			require.Len(t, g.rows, numRows)
			for _, row := range g.rows {
				if err := bw.WriteFloat32s(row); err != nil {
					return err
				}
			}
		}
		return persistence.WriteTrailer(w, m, nil)
	})
	require.NoError(t, err)
}

// scenarioFile is the canonical fixture: one group, columns a and b, rows
// [[1,2],[3,4],[5,6]].
func scenarioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.hty")
	writeHTY(t, path, 3, testGroup{
		names: []string{"a", "b"},
		rows:  [][]float32{{1, 2}, {3, 4}, {5, 6}},
	})
	return path
}

// twoGroupFile has columns a,b in group 0 and c in group 1.
func twoGroupFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twogroup.hty")
	writeHTY(t, path, 3,
		testGroup{names: []string{"a", "b"}, rows: [][]float32{{1, 2}, {3, 4}, {5, 6}}},
		testGroup{names: []string{"c"}, rows: [][]float32{{10}, {20}, {30}}},
	)
	return path
}

func TestProjectSingleColumn(t *testing.T) {
	e := New(scenarioFile(t))

	out, err := e.Project("a")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []float32{1, 3, 5}, out[0])
}

func TestProjectMultiColumnOrder(t *testing.T) {
	e := New(scenarioFile(t))

	out, err := e.Project("b", "a")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []float32{2, 4, 6}, out[0])
	assert.Equal(t, []float32{1, 3, 5}, out[1])
}

func TestProjectSecondGroup(t *testing.T) {
	e := New(twoGroupFile(t))

	out, err := e.Project("c")
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 20, 30}, out[0])
}

func TestProjectCrossGroupFails(t *testing.T) {
	e := New(twoGroupFile(t))

	out, err := e.Project("a", "c")
	var cg *metadata.ErrCrossGroupQuery
	require.ErrorAs(t, err, &cg)
	assert.Nil(t, out)
}

func TestProjectUnknownColumn(t *testing.T) {
	e := New(scenarioFile(t))

	_, err := e.Project("zz")
	var nf *metadata.ErrColumnNotFound
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "zz", nf.Column)
}

func TestProjectNoColumns(t *testing.T) {
	e := New(scenarioFile(t))

	_, err := e.Project()
	assert.ErrorIs(t, err, metadata.ErrEmptyColumnSet)
}

func TestFilter(t *testing.T) {
	e := New(scenarioFile(t))

	tests := []struct {
		name      string
		op        metadata.Operator
		threshold float32
		want      []float32
	}{
		{"greater than", metadata.OpGreaterThan, 3, []float32{4, 6}},
		{"greater equal", metadata.OpGreaterEqual, 4, []float32{4, 6}},
		{"less than", metadata.OpLessThan, 4, []float32{2}},
		{"less equal", metadata.OpLessEqual, 4, []float32{2, 4}},
		{"equal", metadata.OpEqual, 4, []float32{4}},
		{"not equal", metadata.OpNotEqual, 4, []float32{2, 6}},
		{"none match", metadata.OpGreaterThan, 100, []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.Filter("b", tt.op, tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFilterInvalidOperator(t *testing.T) {
	e := New(scenarioFile(t))

	_, err := e.Filter("b", metadata.Operator("between"), 1)
	var inv *metadata.ErrInvalidOperator
	assert.ErrorAs(t, err, &inv)
}

func TestProjectFiltered(t *testing.T) {
	e := New(scenarioFile(t))

	out, err := e.ProjectFiltered([]string{"a"}, "b", metadata.OpGreaterThan, 3)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []float32{3, 5}, out[0])
}

func TestProjectFilteredFilterColumnCountsForLocality(t *testing.T) {
	e := New(twoGroupFile(t))

	// "a" alone is fine, but the filter column lives in another group.
	_, err := e.ProjectFiltered([]string{"a"}, "c", metadata.OpGreaterThan, 0)
	var cg *metadata.ErrCrossGroupQuery
	assert.ErrorAs(t, err, &cg)
}

func TestProjectFilteredNoMatches(t *testing.T) {
	e := New(scenarioFile(t))

	out, err := e.ProjectFiltered([]string{"a", "b"}, "b", metadata.OpLessThan, 0)
	require.NoError(t, err)
	assert.Equal(t, []float32{}, out[0])
	assert.Equal(t, []float32{}, out[1])
}

func TestOpenMissingFile(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "absent.hty"))

	_, err := e.Project("a")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCorruptTrailerSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hty")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0644))

	_, err := New(path).Metadata()
	assert.ErrorIs(t, err, persistence.ErrCorruptTrailer)
}

func TestMetadataFreshPerCall(t *testing.T) {
	e := New(scenarioFile(t))

	m1, err := e.Metadata()
	require.NoError(t, err)
	m2, err := e.Metadata()
	require.NoError(t, err)

	require.Equal(t, m1, m2)
	m1.NumRows = 99
	assert.Equal(t, 3, m2.NumRows)
}
