package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoGroupMeta() *Metadata {
	return &Metadata{
		NumRows:   3,
		NumGroups: 2,
		Groups: []Group{
			{
				Offset:     0,
				NumColumns: 2,
				Columns: []Column{
					{Name: "a", Type: ColumnTypeFloat},
					{Name: "b", Type: ColumnTypeFloat},
				},
			},
			{
				Offset:     24,
				NumColumns: 1,
				Columns: []Column{
					{Name: "c", Type: ColumnTypeFloat},
				},
			},
		},
	}
}

func TestLocate(t *testing.T) {
	loc := NewLocator(twoGroupMeta())

	tests := []struct {
		name   string
		column string
		want   Location
	}{
		{"first group first column", "a", Location{Group: 0, Column: 0}},
		{"first group second column", "b", Location{Group: 0, Column: 1}},
		{"second group", "c", Location{Group: 1, Column: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loc.Locate(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateNotFound(t *testing.T) {
	loc := NewLocator(twoGroupMeta())

	for _, column := range []string{"missing", ""} {
		_, err := loc.Locate(column)
		var nf *ErrColumnNotFound
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, column, nf.Column)
	}
}

func TestLocateFirstMatchWins(t *testing.T) {
	m := twoGroupMeta()
	// Shadow "c" with a duplicate in group 0.
	m.Groups[0].Columns[1].Name = "c"

	loc := NewLocator(m)
	got, err := loc.Locate("c")
	require.NoError(t, err)
	assert.Equal(t, Location{Group: 0, Column: 1}, got)
}

func TestSameGroup(t *testing.T) {
	loc := NewLocator(twoGroupMeta())

	t.Run("single group succeeds regardless of order", func(t *testing.T) {
		for _, names := range [][]string{{"a", "b"}, {"b", "a"}, {"a"}, {"b", "b"}} {
			g, err := loc.SameGroup(names)
			require.NoError(t, err)
			assert.Equal(t, 0, g)
		}
	})

	t.Run("cross group fails", func(t *testing.T) {
		_, err := loc.SameGroup([]string{"a", "c"})
		var cg *ErrCrossGroupQuery
		require.ErrorAs(t, err, &cg)
		assert.Equal(t, []string{"a", "c"}, cg.Columns)
		assert.Equal(t, []int{0, 1}, cg.Groups)
	})

	t.Run("empty set fails", func(t *testing.T) {
		_, err := loc.SameGroup(nil)
		assert.True(t, errors.Is(err, ErrEmptyColumnSet))
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := loc.SameGroup([]string{"a", "zz"})
		var nf *ErrColumnNotFound
		assert.ErrorAs(t, err, &nf)
	})
}

func TestGroupGeometry(t *testing.T) {
	g := Group{Offset: 24, NumColumns: 3}

	assert.Equal(t, int64(60), g.BlockSize(5))
	assert.Equal(t, int64(24), g.CellOffset(0, 0))
	assert.Equal(t, int64(24+(2*3+1)*4), g.CellOffset(2, 1))
}

func TestMetadataClone(t *testing.T) {
	m := twoGroupMeta()
	c := m.Clone()

	require.Equal(t, m, c)

	c.NumRows = 99
	c.Groups[0].Offset = 1000
	c.Groups[0].Columns[0].Name = "renamed"

	assert.Equal(t, 3, m.NumRows)
	assert.Equal(t, int64(0), m.Groups[0].Offset)
	assert.Equal(t, "a", m.Groups[0].Columns[0].Name)
}

func TestTotalColumns(t *testing.T) {
	assert.Equal(t, 3, twoGroupMeta().TotalColumns())
	assert.Equal(t, 0, (&Metadata{}).TotalColumns())
}
