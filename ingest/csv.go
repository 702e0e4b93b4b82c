// Package ingest implements the CSV producer side of the HTY format.
//
// A converted file always has exactly one group at offset 0 holding every
// column, all typed "float". Values are parsed at float64 precision and
// narrowed to float32 for storage; cells that do not parse as numbers are
// stored as 0.0.
package ingest

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/hupe1980/htygo/codec"
	"github.com/hupe1980/htygo/metadata"
	"github.com/hupe1980/htygo/persistence"
)

// numberPattern accepts signed decimals with an optional fraction and
// exponent. Parses stricter than strconv.ParseFloat on purpose: "NaN",
// "Inf" and hex floats are header material, not data.
var numberPattern = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

func isNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// FromCSV converts the CSV file at csvPath into an HTY file at htyPath and
// returns the written metadata.
//
// The first line is treated as a header if at least one of its fields fails
// to parse as a number; otherwise synthetic names column_1..column_n are
// generated and the line counts as data.
func FromCSV(csvPath, htyPath string, c codec.Codec) (*metadata.Metadata, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FromReader(f, htyPath, c)
}

// FromReader is FromCSV over an arbitrary CSV stream.
func FromReader(r io.Reader, htyPath string, c codec.Codec) (*metadata.Metadata, error) {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are padded/truncated against the header

	first, err := cr.Read()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	header, firstDataRow := splitHeader(first)

	m := &metadata.Metadata{
		NumGroups: 1,
		Groups: []metadata.Group{
			{
				Offset:     0,
				NumColumns: len(header),
				Columns:    make([]metadata.Column, len(header)),
			},
		},
	}
	for i, name := range header {
		m.Groups[0].Columns[i] = metadata.Column{Name: name, Type: metadata.ColumnTypeFloat}
	}

	err = persistence.SaveToFile(htyPath, func(w io.Writer) error {
		bw := persistence.NewBlockWriter(w)

		if firstDataRow != nil {
			if err := bw.WriteFloat32s(toCells(firstDataRow, len(header))); err != nil {
				return err
			}
			m.NumRows++
		}

		for {
			record, err := cr.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("read csv: %w", err)
			}
			if err := bw.WriteFloat32s(toCells(record, len(header))); err != nil {
				return err
			}
			m.NumRows++
		}

		return persistence.WriteTrailer(w, m, c)
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// splitHeader decides whether the first record is a header. When it is data,
// synthetic names are generated and the record is returned for storage.
func splitHeader(first []string) (header []string, firstDataRow []string) {
	if first == nil {
		return nil, nil
	}
	for _, field := range first {
		if !isNumber(field) {
			return first, nil
		}
	}
	header = make([]string, len(first))
	for i := range first {
		header[i] = "column_" + strconv.Itoa(i+1)
	}
	return header, first
}

// toCells converts one CSV record into a fixed-width row: non-numeric cells
// and missing trailing fields become 0.0, extra fields are dropped.
func toCells(record []string, width int) []float32 {
	row := make([]float32, width)
	for i := 0; i < width; i++ {
		if i >= len(record) || !isNumber(record[i]) {
			continue // stays 0.0
		}
		v, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			continue
		}
		row[i] = float32(v)
	}
	return row
}
