package engine

import (
	"github.com/hupe1980/htygo/metadata"
	"github.com/hupe1980/htygo/persistence"
)

// Project reads the named columns for every row. All names must resolve to
// one group. The result holds one sequence per requested column, in request
// order, each of length NumRows.
func (e *Engine) Project(columns ...string) ([][]float32, error) {
	f, m, loc, err := e.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gi, err := loc.SameGroup(columns)
	if err != nil {
		return nil, err
	}

	colIdx, err := columnIndexes(loc, columns)
	if err != nil {
		return nil, err
	}

	gr := persistence.NewGroupReader(f, m.Groups[gi], m.NumRows)
	out := make([][]float32, len(columns))
	for i := range out {
		out[i] = make([]float32, 0, m.NumRows)
	}

	for row := 0; row < m.NumRows; row++ {
		for i, ci := range colIdx {
			v, err := gr.ReadCell(row, ci)
			if err != nil {
				return nil, err
			}
			out[i] = append(out[i], v)
		}
	}

	e.logger.Debug("projection completed", "path", e.path, "columns", len(columns), "rows", m.NumRows)
	return out, nil
}

// Filter projects one column and retains the values satisfying the
// predicate. The output is the filtered value sequence alone, in original
// row order.
func (e *Engine) Filter(column string, op metadata.Operator, threshold float32) ([]float32, error) {
	if _, err := metadata.ParseOperator(string(op)); err != nil {
		return nil, err
	}

	f, m, loc, err := e.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cl, err := loc.Locate(column)
	if err != nil {
		return nil, err
	}

	gr := persistence.NewGroupReader(f, m.Groups[cl.Group], m.NumRows)
	out := make([]float32, 0, m.NumRows)

	for row := 0; row < m.NumRows; row++ {
		v, err := gr.ReadCell(row, cl.Column)
		if err != nil {
			return nil, err
		}
		if op.Matches(v, threshold) {
			out = append(out, v)
		}
	}

	e.logger.Debug("filter completed", "path", e.path, "column", column, "op", string(op), "matched", len(out), "rows", m.NumRows)
	return out, nil
}

// ProjectFiltered reads the projected columns for each row whose filter
// column satisfies the predicate, in a single pass. The filter column counts
// toward the same-group constraint even when it is not projected. Output
// sequences are parallel, aligned by original row order.
//
// The result equals Project restricted to the row indexes that Filter would
// keep.
func (e *Engine) ProjectFiltered(columns []string, filterColumn string, op metadata.Operator, threshold float32) ([][]float32, error) {
	if len(columns) == 0 {
		return nil, metadata.ErrEmptyColumnSet
	}
	if _, err := metadata.ParseOperator(string(op)); err != nil {
		return nil, err
	}

	f, m, loc, err := e.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := make([]string, 0, len(columns)+1)
	names = append(names, columns...)
	names = append(names, filterColumn)

	gi, err := loc.SameGroup(names)
	if err != nil {
		return nil, err
	}

	colIdx, err := columnIndexes(loc, columns)
	if err != nil {
		return nil, err
	}
	fl, err := loc.Locate(filterColumn)
	if err != nil {
		return nil, err
	}

	gr := persistence.NewGroupReader(f, m.Groups[gi], m.NumRows)
	out := make([][]float32, len(columns))
	for i := range out {
		out[i] = []float32{}
	}

	matched := 0
	for row := 0; row < m.NumRows; row++ {
		fv, err := gr.ReadCell(row, fl.Column)
		if err != nil {
			return nil, err
		}
		if !op.Matches(fv, threshold) {
			continue
		}
		matched++
		for i, ci := range colIdx {
			v, err := gr.ReadCell(row, ci)
			if err != nil {
				return nil, err
			}
			out[i] = append(out[i], v)
		}
	}

	e.logger.Debug("filtered projection completed", "path", e.path, "columns", len(columns), "filter_column", filterColumn, "matched", matched, "rows", m.NumRows)
	return out, nil
}

func columnIndexes(loc *metadata.Locator, columns []string) ([]int, error) {
	idx := make([]int, len(columns))
	for i, name := range columns {
		cl, err := loc.Locate(name)
		if err != nil {
			return nil, err
		}
		idx[i] = cl.Column
	}
	return idx, nil
}
